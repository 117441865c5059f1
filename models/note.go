package models

import "time"

// Note is a markdown annotation attached to exactly one card.
// UpdatedAt is set on the first update and refreshed on every one after.
type Note struct {
	ID        string     `json:"id"`
	CardID    string     `json:"cardId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CreateNoteRequest is the payload for attaching a note to a card.
type CreateNoteRequest struct {
	CardID  string   `json:"cardId" binding:"required"`
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest carries a partial note update. Nil fields are left
// untouched; an empty non-nil Tags slice clears the tags.
type UpdateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// NotesResponse is the standard response format for note listings.
type NotesResponse struct {
	Notes []Note `json:"notes"`
	Total int    `json:"total"`
}
