package database

import (
	"context"
	"log"

	"cardbox/models"
	"cardbox/storage"
)

func findNoteIndex(doc *storage.Document, id string) int {
	for i := range doc.Notes {
		if doc.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

// ListNotes returns notes in insertion order. A non-empty cardID
// restricts the result to that card's notes.
func (db *DB) ListNotes(ctx context.Context, cardID string) ([]models.Note, error) {
	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}

	if cardID == "" {
		return doc.Notes, nil
	}

	notes := []models.Note{}
	for _, note := range doc.Notes {
		if note.CardID == cardID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

// CreateNote attaches a new note to an existing card. The card must
// exist; notes never reference deleted cards.
func (db *DB) CreateNote(ctx context.Context, req models.CreateNoteRequest) (*models.Note, error) {
	var note models.Note

	err := db.store.Update(func(doc *storage.Document) error {
		if findCardIndex(doc, req.CardID) == -1 {
			return ErrNotFound
		}
		tags := req.Tags
		if tags == nil {
			tags = []string{}
		}
		note = models.Note{
			ID:        newID(),
			CardID:    req.CardID,
			Title:     req.Title,
			Content:   req.Content,
			Tags:      tags,
			CreatedAt: now(),
		}
		doc.Notes = append(doc.Notes, note)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Created note: %s (card: %s)", note.ID, note.CardID)
	return &note, nil
}

// UpdateNote merges the non-nil fields of req over the note with the
// given id and stamps UpdatedAt.
func (db *DB) UpdateNote(ctx context.Context, id string, req models.UpdateNoteRequest) (*models.Note, error) {
	var note models.Note

	err := db.store.Update(func(doc *storage.Document) error {
		idx := findNoteIndex(doc, id)
		if idx == -1 {
			return ErrNotFound
		}
		if req.Title != nil {
			doc.Notes[idx].Title = *req.Title
		}
		if req.Content != nil {
			doc.Notes[idx].Content = *req.Content
		}
		if req.Tags != nil {
			doc.Notes[idx].Tags = *req.Tags
		}
		updated := now()
		doc.Notes[idx].UpdatedAt = &updated
		note = doc.Notes[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// DeleteNote removes the note with the given id and returns it.
func (db *DB) DeleteNote(ctx context.Context, id string) (*models.Note, error) {
	var removed models.Note

	err := db.store.Update(func(doc *storage.Document) error {
		idx := findNoteIndex(doc, id)
		if idx == -1 {
			return ErrNotFound
		}
		removed = doc.Notes[idx]
		doc.Notes = append(doc.Notes[:idx], doc.Notes[idx+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &removed, nil
}
