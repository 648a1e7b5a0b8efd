package memory

import (
	"sync"

	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// Repository implements ports.BoardRepository in memory. Used by tests
// and as the backing store when no board file is configured.
type Repository struct {
	mu    sync.Mutex
	board domain.Board
}

// Ensure Repository implements BoardRepository
var _ ports.BoardRepository = (*Repository)(nil)

// NewRepository creates a repository seeded with the given board.
func NewRepository(board domain.Board) *Repository {
	return &Repository{board: board.Clone()}
}

// Load returns a copy of the stored board.
func (r *Repository) Load() (domain.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board.Clone(), nil
}

// Save replaces the stored board.
func (r *Repository) Save(board domain.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.board = board.Clone()
	return nil
}

// ApplyMove applies a committed drag to the stored board.
func (r *Repository) ApplyMove(ev domain.Committed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.board = r.board.ApplyMove(ev)
	return nil
}
