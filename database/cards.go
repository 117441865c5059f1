package database

import (
	"context"
	"log"

	"cardbox/models"
	"cardbox/storage"
)

func findCardIndex(doc *storage.Document, id string) int {
	for i := range doc.Cards {
		if doc.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// ListCards returns cards in storage order (newest first) after applying
// the optional status, project and free-text filters.
func (db *DB) ListCards(ctx context.Context, params models.CardQueryParams) ([]models.Card, error) {
	doc, err := db.store.Load()
	if err != nil {
		return nil, err
	}

	filter, err := NewCardFilter(params)
	if err != nil {
		return nil, err
	}

	cards := []models.Card{}
	for _, card := range doc.Cards {
		if filter.Matches(card) {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// AddCard stores a new card with a fresh id and creation timestamp,
// prepending it so storage order stays newest-first. A project reference
// given by name is resolved (or created) in the same write.
func (db *DB) AddCard(ctx context.Context, req models.AddCardRequest) (*models.Card, error) {
	var card models.Card

	err := db.store.Update(func(doc *storage.Document) error {
		card = models.Card{
			ID:        newID(),
			Title:     req.Title,
			Prompt:    req.Prompt,
			Topic:     req.Topic,
			Project:   resolveProjectRef(doc, req.Project),
			Status:    models.StatusActive,
			CreatedAt: now(),
		}
		doc.Cards = append([]models.Card{card}, doc.Cards...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Added card: %s (ID: %s)", card.Title, card.ID)
	return &card, nil
}

// UpdateCard merges the non-nil fields of req over the card with the
// given id. Fields left nil are preserved; a project value is resolved
// like in AddCard.
func (db *DB) UpdateCard(ctx context.Context, id string, req models.UpdateCardRequest) (*models.Card, error) {
	var card models.Card

	err := db.store.Update(func(doc *storage.Document) error {
		idx := findCardIndex(doc, id)
		if idx == -1 {
			return ErrNotFound
		}
		if req.Title != nil {
			doc.Cards[idx].Title = *req.Title
		}
		if req.Prompt != nil {
			doc.Cards[idx].Prompt = *req.Prompt
		}
		if req.Topic != nil {
			doc.Cards[idx].Topic = *req.Topic
		}
		if req.Project != nil {
			doc.Cards[idx].Project = resolveProjectRef(doc, *req.Project)
		}
		if req.Status != nil {
			doc.Cards[idx].Status = *req.Status
		}
		card = doc.Cards[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &card, nil
}

// ToggleCard sets the card's status.
func (db *DB) ToggleCard(ctx context.Context, id string, status models.Status) (*models.Card, error) {
	var card models.Card

	err := db.store.Update(func(doc *storage.Document) error {
		idx := findCardIndex(doc, id)
		if idx == -1 {
			return ErrNotFound
		}
		doc.Cards[idx].Status = status
		card = doc.Cards[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &card, nil
}

// DeleteCard removes the card and, in the same write, every note
// attached to it. The removed record is returned for the caller.
func (db *DB) DeleteCard(ctx context.Context, id string) (*models.Card, error) {
	var removed models.Card
	var notes int

	err := db.store.Update(func(doc *storage.Document) error {
		idx := findCardIndex(doc, id)
		if idx == -1 {
			return ErrNotFound
		}
		removed = doc.Cards[idx]
		doc.Cards = append(doc.Cards[:idx], doc.Cards[idx+1:]...)
		notes = deleteNotesForCard(doc, id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Deleted card: %s (removed %d notes)", id, notes)
	return &removed, nil
}
