package database

import (
	"cardbox/models"
	"cardbox/storage"
)

// clearProjectFromCards blanks the project field of every card that
// references projectID and reports how many cards changed. It mutates
// the in-memory document only; the caller's Update persists the batch in
// one write, so there is no window where cards point at a deleted
// project on disk.
func clearProjectFromCards(doc *storage.Document, projectID string) int {
	cleared := 0
	for i := range doc.Cards {
		if doc.Cards[i].Project == projectID {
			doc.Cards[i].Project = ""
			cleared++
		}
	}
	return cleared
}

// resolveProjectRef turns the project value supplied on a card into a
// project id. Users may type either an existing name, an existing id,
// or a brand new name, resolved in that order; a new name creates the
// project inline. An empty ref clears the card's assignment.
func resolveProjectRef(doc *storage.Document, ref string) string {
	if ref == "" {
		return ""
	}
	if existing := findProjectByName(doc, ref); existing != nil {
		return existing.ID
	}
	if idx := findProjectIndex(doc, ref); idx != -1 {
		return doc.Projects[idx].ID
	}
	created := models.Project{
		ID:        newID(),
		Name:      ref,
		CreatedAt: now(),
	}
	doc.Projects = append(doc.Projects, created)
	sortProjects(doc.Projects)
	return created.ID
}

// deleteNotesForCard removes every note attached to cardID and reports
// how many were dropped. Persisted by the caller's single write.
func deleteNotesForCard(doc *storage.Document, cardID string) int {
	kept := doc.Notes[:0]
	removed := 0
	for _, note := range doc.Notes {
		if note.CardID == cardID {
			removed++
			continue
		}
		kept = append(kept, note)
	}
	doc.Notes = kept
	return removed
}
