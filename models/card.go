package models

import "time"

// Status is the lifecycle state of a card.
type Status string

const (
	StatusActive Status = "active"
	StatusDone   Status = "done"
)

// Valid reports whether s is one of the known card statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusDone
}

// Card is a learning card: a prompt with a title, optionally grouped
// under a project and tagged with a topic.
// Project holds a project id, or "" when the card is unassigned.
type Card struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Topic     string    `json:"topic,omitempty"`
	Project   string    `json:"project,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddCardRequest is the payload for creating a new card.
// Project may be a project id or a project name; unknown names are
// created on the fly.
type AddCardRequest struct {
	Title   string `json:"title" binding:"required"`
	Prompt  string `json:"prompt" binding:"required"`
	Topic   string `json:"topic"`
	Project string `json:"project"`
}

// UpdateCardRequest carries a partial card update. Nil fields are left
// untouched; empty strings overwrite.
type UpdateCardRequest struct {
	Title   *string `json:"title"`
	Prompt  *string `json:"prompt"`
	Topic   *string `json:"topic"`
	Project *string `json:"project"`
	Status  *Status `json:"status"`
}

// ToggleCardRequest sets a card's status.
type ToggleCardRequest struct {
	Status Status `json:"status" binding:"required"`
}

// CardQueryParams are the optional filters for card listings.
type CardQueryParams struct {
	Status  string `form:"status"`
	Project string `form:"project"`
	Search  string `form:"q"`
}

// CardsResponse is the standard response format for card listings.
type CardsResponse struct {
	Cards []Card `json:"cards"`
	Total int    `json:"total"`
}
