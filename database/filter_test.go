package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardbox/models"
)

func TestNewCardFilter_InvalidStatus(t *testing.T) {
	_, err := NewCardFilter(models.CardQueryParams{Status: "archived"})
	assert.Error(t, err)
}

func TestCardFilter_Matches(t *testing.T) {
	card := models.Card{
		ID:      "c1",
		Title:   "Goroutines Deep Dive",
		Prompt:  "Explain channel select",
		Topic:   "concurrency",
		Project: "p1",
		Status:  models.StatusActive,
	}

	tests := []struct {
		name     string
		params   models.CardQueryParams
		expected bool
	}{
		{
			name:     "empty filter matches",
			params:   models.CardQueryParams{},
			expected: true,
		},
		{
			name:     "status match",
			params:   models.CardQueryParams{Status: "active"},
			expected: true,
		},
		{
			name:     "status mismatch",
			params:   models.CardQueryParams{Status: "done"},
			expected: false,
		},
		{
			name:     "project match",
			params:   models.CardQueryParams{Project: "p1"},
			expected: true,
		},
		{
			name:     "project mismatch",
			params:   models.CardQueryParams{Project: "p2"},
			expected: false,
		},
		{
			name:     "search hits title case-insensitively",
			params:   models.CardQueryParams{Search: "goroutines"},
			expected: true,
		},
		{
			name:     "search hits prompt",
			params:   models.CardQueryParams{Search: "channel"},
			expected: true,
		},
		{
			name:     "search hits topic",
			params:   models.CardQueryParams{Search: "concurrency"},
			expected: true,
		},
		{
			name:     "all terms must match",
			params:   models.CardQueryParams{Search: "goroutines missing"},
			expected: false,
		},
		{
			name:     "terms may span fields",
			params:   models.CardQueryParams{Search: "goroutines channel"},
			expected: true,
		},
		{
			name:     "whitespace-only search matches",
			params:   models.CardQueryParams{Search: "   "},
			expected: true,
		},
		{
			name:     "combined filters",
			params:   models.CardQueryParams{Status: "active", Project: "p1", Search: "deep"},
			expected: true,
		},
		{
			name:     "combined filters fail on one mismatch",
			params:   models.CardQueryParams{Status: "done", Project: "p1", Search: "deep"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewCardFilter(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filter.Matches(card))
		})
	}
}
