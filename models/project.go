package models

import "time"

// Project is a named grouping of cards. SystemPrompt, when set, is
// prepended to card prompts launched from this project. Names are unique
// (case-sensitive).
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SystemPrompt string    `json:"systemPrompt,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateProjectRequest is the payload for creating a new project.
// Creating a name that already exists returns the existing project.
type CreateProjectRequest struct {
	Name         string `json:"name" binding:"required"`
	SystemPrompt string `json:"systemPrompt"`
}

// UpdateProjectRequest carries a partial project update. Nil fields are
// left untouched.
type UpdateProjectRequest struct {
	Name         *string `json:"name"`
	SystemPrompt *string `json:"systemPrompt"`
}

// ProjectsResponse is the standard response format for project listings.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
