package commands

import (
	"context"
	"fmt"

	"dragdeck/internal/application"
	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// RemoveCardResult contains the result of removing a card
type RemoveCardResult struct {
	Card    domain.Card
	Message string
}

// RemoveCardCommand deletes a card from the board
type RemoveCardCommand struct {
	repo   ports.BoardRepository
	CardID string
}

// NewRemoveCardCommand creates a new RemoveCardCommand
func NewRemoveCardCommand(repo ports.BoardRepository, cardID string) *RemoveCardCommand {
	return &RemoveCardCommand{repo: repo, CardID: cardID}
}

// Validate checks if the remove operation is valid
func (c *RemoveCardCommand) Validate() error {
	return application.ValidateRequired("cardID", c.CardID)
}

// Execute runs the remove card command
func (c *RemoveCardCommand) Execute(ctx context.Context) (*RemoveCardResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	board, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	card, pos, ok := board.FindCard(domain.ItemID(c.CardID))
	if !ok {
		return nil, fmt.Errorf("card %s: %w", c.CardID, application.ErrNotFound)
	}

	updated := board.Clone()
	for i := range updated.Lists {
		if updated.Lists[i].ID == pos.List {
			cards := updated.Lists[i].Cards
			updated.Lists[i].Cards = append(cards[:pos.Index], cards[pos.Index+1:]...)
			break
		}
	}

	if err := c.repo.Save(updated); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &RemoveCardResult{
		Card:    card,
		Message: fmt.Sprintf("Removed %s", card.Title),
	}, nil
}
