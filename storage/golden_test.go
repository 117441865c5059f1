package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"cardbox/models"
)

// TestDocumentFormat pins the on-disk byte layout. The UI process and
// cmd/restore both depend on this exact shape, so a diff here means the
// stored format changed.
func TestDocumentFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	store, err := Open(path)
	require.NoError(t, err)

	err = store.Update(func(doc *Document) error {
		doc.Cards = []models.Card{{
			ID:        "card-1",
			Title:     "Learn Go",
			Prompt:    "Explain interfaces",
			Topic:     "go",
			Project:   "proj-1",
			Status:    models.StatusActive,
			CreatedAt: time.Date(2024, 11, 22, 10, 30, 0, 0, time.UTC),
		}}
		doc.Projects = []models.Project{{
			ID:           "proj-1",
			Name:         "Go Study",
			SystemPrompt: "You are a Go tutor.",
			CreatedAt:    time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC),
		}}
		doc.Notes = []models.Note{{
			ID:        "note-1",
			CardID:    "card-1",
			Title:     "Interfaces",
			Content:   "Accept interfaces, return structs.",
			Tags:      []string{"go", "types"},
			CreatedAt: time.Date(2024, 11, 22, 11, 0, 0, 0, time.UTC),
		}}
		return nil
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "document", append(raw, '\n'))
}
