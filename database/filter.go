package database

import (
	"fmt"
	"strings"

	"cardbox/models"
)

// CardFilter matches cards against the optional listing filters. An
// empty filter matches everything.
type CardFilter struct {
	status  models.Status
	project string
	terms   []string
}

// NewCardFilter validates the query params and builds a filter. The
// free-text query is lowercased and split into words; every word must
// appear in the card's title, prompt or topic for a match.
func NewCardFilter(params models.CardQueryParams) (*CardFilter, error) {
	f := &CardFilter{project: params.Project}

	if params.Status != "" {
		status := models.Status(params.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status filter %q", params.Status)
		}
		f.status = status
	}

	if q := strings.TrimSpace(params.Search); q != "" {
		f.terms = strings.Fields(strings.ToLower(q))
	}

	return f, nil
}

// Matches reports whether the card passes every configured filter.
func (f *CardFilter) Matches(card models.Card) bool {
	if f.status != "" && card.Status != f.status {
		return false
	}
	if f.project != "" && card.Project != f.project {
		return false
	}
	if len(f.terms) > 0 {
		haystack := strings.ToLower(card.Title + " " + card.Prompt + " " + card.Topic)
		for _, term := range f.terms {
			if !strings.Contains(haystack, term) {
				return false
			}
		}
	}
	return true
}
