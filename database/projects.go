package database

import (
	"context"
	"log"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cardbox/models"
	"cardbox/storage"
)

// nameCollator orders project names the way a user expects them listed,
// not by raw byte value.
var nameCollator = collate.New(language.English)

func sortProjects(projects []models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return nameCollator.CompareString(projects[i].Name, projects[j].Name) < 0
	})
}

func findProjectIndex(doc *storage.Document, id string) int {
	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

func findProjectByName(doc *storage.Document, name string) *models.Project {
	for i := range doc.Projects {
		if doc.Projects[i].Name == name {
			return &doc.Projects[i]
		}
	}
	return nil
}

// ListProjects returns all projects sorted by name.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}
	sortProjects(doc.Projects)
	return doc.Projects, nil
}

// CreateProject adds a new project. Names are unique: creating a name
// that already exists returns the existing project untouched instead of
// erroring, so the operation is idempotent for callers that type a name
// twice.
func (db *DB) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	var project models.Project

	err := db.store.Update(func(doc *storage.Document) error {
		if existing := findProjectByName(doc, req.Name); existing != nil {
			project = *existing
			return nil
		}
		project = models.Project{
			ID:           newID(),
			Name:         req.Name,
			SystemPrompt: req.SystemPrompt,
			CreatedAt:    now(),
		}
		doc.Projects = append(doc.Projects, project)
		sortProjects(doc.Projects)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Created project: %s (ID: %s)", project.Name, project.ID)
	return &project, nil
}

// UpdateProject merges the non-nil fields of req over the project with
// the given id. Renaming onto a name held by another project fails with
// ErrNameTaken.
func (db *DB) UpdateProject(ctx context.Context, id string, req models.UpdateProjectRequest) (*models.Project, error) {
	var project models.Project

	err := db.store.Update(func(doc *storage.Document) error {
		idx := findProjectIndex(doc, id)
		if idx == -1 {
			return ErrNotFound
		}
		if req.Name != nil && *req.Name != doc.Projects[idx].Name {
			if other := findProjectByName(doc, *req.Name); other != nil {
				return ErrNameTaken
			}
			doc.Projects[idx].Name = *req.Name
		}
		if req.SystemPrompt != nil {
			doc.Projects[idx].SystemPrompt = *req.SystemPrompt
		}
		project = doc.Projects[idx]
		sortProjects(doc.Projects)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// DeleteProject removes the project and, in the same write, clears the
// project field of every card that referenced it. The removed record is
// returned so callers can surface what was deleted.
func (db *DB) DeleteProject(ctx context.Context, id string) (*models.Project, error) {
	var removed models.Project
	var cleared int

	err := db.store.Update(func(doc *storage.Document) error {
		idx := findProjectIndex(doc, id)
		if idx == -1 {
			return ErrNotFound
		}
		removed = doc.Projects[idx]
		doc.Projects = append(doc.Projects[:idx], doc.Projects[idx+1:]...)
		cleared = clearProjectFromCards(doc, id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Deleted project: %s (cleared %d card references)", id, cleared)
	return &removed, nil
}

// FindProjectByID looks up a single project.
func (db *DB) FindProjectByID(ctx context.Context, id string) (*models.Project, error) {
	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}
	idx := findProjectIndex(doc, id)
	if idx == -1 {
		return nil, ErrNotFound
	}
	project := doc.Projects[idx]
	return &project, nil
}

// FindProjectByName looks up a project by exact (case-sensitive) name.
func (db *DB) FindProjectByName(ctx context.Context, name string) (*models.Project, error) {
	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}
	project := findProjectByName(doc, name)
	if project == nil {
		return nil, ErrNotFound
	}
	found := *project
	return &found, nil
}
