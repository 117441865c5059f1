package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardbox/models"
)

func noteFixtures(t *testing.T) (*DB, *models.Card) {
	t.Helper()
	db := NewTestDB(t)

	card, err := db.AddCard(context.Background(), models.AddCardRequest{
		Title: "Learn Go", Prompt: "explain",
	})
	require.NoError(t, err)
	return db, card
}

func TestCreateNote(t *testing.T) {
	db, card := noteFixtures(t)
	ctx := context.Background()

	note, err := db.CreateNote(ctx, models.CreateNoteRequest{
		CardID:  card.ID,
		Title:   "Interfaces",
		Content: "Accept interfaces, return structs.",
		Tags:    []string{"go", "types"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, card.ID, note.CardID)
	assert.Equal(t, []string{"go", "types"}, note.Tags)
	assert.False(t, note.CreatedAt.IsZero())
	assert.Nil(t, note.UpdatedAt)
}

func TestCreateNote_UnknownCard(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.CreateNote(context.Background(), models.CreateNoteRequest{
		CardID: "missing", Title: "n",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNotes_ByCard(t *testing.T) {
	db, card := noteFixtures(t)
	ctx := context.Background()

	other, err := db.AddCard(ctx, models.AddCardRequest{Title: "Other", Prompt: "p"})
	require.NoError(t, err)

	first, err := db.CreateNote(ctx, models.CreateNoteRequest{CardID: card.ID, Title: "one"})
	require.NoError(t, err)
	second, err := db.CreateNote(ctx, models.CreateNoteRequest{CardID: card.ID, Title: "two"})
	require.NoError(t, err)
	_, err = db.CreateNote(ctx, models.CreateNoteRequest{CardID: other.ID, Title: "elsewhere"})
	require.NoError(t, err)

	notes, err := db.ListNotes(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	// Insertion order is preserved.
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)

	all, err := db.ListNotes(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateNote(t *testing.T) {
	db, card := noteFixtures(t)
	ctx := context.Background()

	note, err := db.CreateNote(ctx, models.CreateNoteRequest{
		CardID: card.ID, Title: "draft", Content: "old", Tags: []string{"a"},
	})
	require.NoError(t, err)

	content := "new content"
	updated, err := db.UpdateNote(ctx, note.ID, models.UpdateNoteRequest{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, "draft", updated.Title, "absent fields are preserved")
	assert.Equal(t, "new content", updated.Content)
	assert.Equal(t, []string{"a"}, updated.Tags)
	require.NotNil(t, updated.UpdatedAt)
	assert.False(t, updated.UpdatedAt.Before(note.CreatedAt))

	tags := []string{}
	cleared, err := db.UpdateNote(ctx, note.ID, models.UpdateNoteRequest{Tags: &tags})
	require.NoError(t, err)
	assert.Empty(t, cleared.Tags)
}

func TestUpdateNote_NotFound(t *testing.T) {
	db := NewTestDB(t)

	title := "x"
	_, err := db.UpdateNote(context.Background(), "missing", models.UpdateNoteRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNote(t *testing.T) {
	db, card := noteFixtures(t)
	ctx := context.Background()

	note, err := db.CreateNote(ctx, models.CreateNoteRequest{CardID: card.ID, Title: "n"})
	require.NoError(t, err)

	removed, err := db.DeleteNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, removed.ID)

	_, err = db.DeleteNote(ctx, note.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The card itself is untouched.
	cards, err := db.ListCards(ctx, models.CardQueryParams{})
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}
