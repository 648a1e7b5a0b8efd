package commands

import (
	"context"
	"fmt"

	"dragdeck/internal/application"
	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// MoveCardResult contains the result of moving a card
type MoveCardResult struct {
	Card    domain.Card
	From    domain.Position
	To      domain.Position
	Message string
}

// MoveCardCommand moves a card to a slot in a (possibly different) list
type MoveCardCommand struct {
	repo       ports.BoardRepository
	CardID     string
	DestListID string
	DestIndex  int
}

// NewMoveCardCommand creates a new MoveCardCommand
func NewMoveCardCommand(repo ports.BoardRepository, cardID, destListID string, destIndex int) *MoveCardCommand {
	return &MoveCardCommand{
		repo:       repo,
		CardID:     cardID,
		DestListID: destListID,
		DestIndex:  destIndex,
	}
}

// Validate checks if the move operation is valid
func (c *MoveCardCommand) Validate() error {
	if err := application.ValidateRequired("cardID", c.CardID); err != nil {
		return err
	}
	if err := application.ValidateRequired("listID", c.DestListID); err != nil {
		return err
	}
	if c.DestIndex < 0 {
		return &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must be non-negative, got %d", c.DestIndex),
		}
	}
	return nil
}

// Execute runs the move card command
func (c *MoveCardCommand) Execute(ctx context.Context) (*MoveCardResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	board, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	card, from, ok := board.FindCard(domain.ItemID(c.CardID))
	if !ok {
		return nil, &application.MoveError{
			CardID: c.CardID,
			ListID: c.DestListID,
			Reason: "card not found",
		}
	}
	if _, ok := board.List(domain.ListID(c.DestListID)); !ok {
		return nil, &application.MoveError{
			CardID: c.CardID,
			ListID: c.DestListID,
			Reason: "destination list not found",
		}
	}

	ev := domain.Committed{
		Item:      card.ID,
		FromList:  from.List,
		FromIndex: from.Index,
		List:      domain.ListID(c.DestListID),
		Index:     c.DestIndex,
	}
	if err := c.repo.ApplyMove(ev); err != nil {
		return nil, fmt.Errorf("failed to move card: %w", err)
	}

	updated, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to reload board: %w", err)
	}
	_, to, _ := updated.FindCard(card.ID)

	return &MoveCardResult{
		Card:    card,
		From:    from,
		To:      to,
		Message: fmt.Sprintf("Moved %s to %s[%d]", card.Title, to.List, to.Index),
	}, nil
}
