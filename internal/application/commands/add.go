package commands

import (
	"context"
	"fmt"
	"strings"

	"dragdeck/internal/application"
	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// AddCardResult contains the result of adding a card
type AddCardResult struct {
	Card    domain.Card
	Message string
}

// AddCardCommand appends a card to the end of a list
type AddCardCommand struct {
	repo   ports.BoardRepository
	ListID string
	CardID string // optional; derived from the title when empty
	Title  string
	Note   string
}

// NewAddCardCommand creates a new AddCardCommand
func NewAddCardCommand(repo ports.BoardRepository, listID, title string) *AddCardCommand {
	return &AddCardCommand{
		repo:   repo,
		ListID: listID,
		Title:  title,
	}
}

// Validate checks if the add operation is valid
func (c *AddCardCommand) Validate() error {
	if err := application.ValidateRequired("listID", c.ListID); err != nil {
		return err
	}
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return nil
}

// Execute runs the add card command
func (c *AddCardCommand) Execute(ctx context.Context) (*AddCardResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	board, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	if _, ok := board.List(domain.ListID(c.ListID)); !ok {
		return nil, fmt.Errorf("list %s: %w", c.ListID, application.ErrNotFound)
	}

	id := domain.ItemID(c.CardID)
	if id == "" {
		id = uniqueCardID(board, c.Title)
	} else if _, _, exists := board.FindCard(id); exists {
		return nil, fmt.Errorf("card %s: %w", id, application.ErrDuplicateCard)
	}

	card := domain.Card{ID: id, Title: strings.TrimSpace(c.Title), Note: c.Note}
	updated := board.Clone()
	for i := range updated.Lists {
		if updated.Lists[i].ID == domain.ListID(c.ListID) {
			updated.Lists[i].Cards = append(updated.Lists[i].Cards, card)
			break
		}
	}

	if err := c.repo.Save(updated); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &AddCardResult{
		Card:    card,
		Message: fmt.Sprintf("Added %s to %s", card.Title, c.ListID),
	}, nil
}

// uniqueCardID slugs the title and suffixes a counter until the ID is
// free across the whole board. Item identity must be board-global, not
// per-list, or cross-list dragging breaks.
func uniqueCardID(board domain.Board, title string) domain.ItemID {
	slug := slugify(title)
	if slug == "" {
		slug = "card"
	}
	id := domain.ItemID(slug)
	for n := 2; ; n++ {
		if _, _, exists := board.FindCard(id); !exists {
			return id
		}
		id = domain.ItemID(fmt.Sprintf("%s-%d", slug, n))
	}
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
