package commands

import (
	"context"
	"fmt"

	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// ShowBoardCommand loads the current board state
type ShowBoardCommand struct {
	repo ports.BoardRepository
}

// NewShowBoardCommand creates a new ShowBoardCommand
func NewShowBoardCommand(repo ports.BoardRepository) *ShowBoardCommand {
	return &ShowBoardCommand{repo: repo}
}

// Execute runs the show board command
func (c *ShowBoardCommand) Execute(ctx context.Context) (domain.Board, error) {
	board, err := c.repo.Load()
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to load board: %w", err)
	}
	return board, nil
}
