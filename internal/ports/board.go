package ports

import "dragdeck/internal/domain"

// BoardRepository is the host-side store of authoritative board state.
// The drag engine itself never touches it; adapters apply Committed
// events here once a drag completes.
type BoardRepository interface {
	Load() (domain.Board, error)
	Save(board domain.Board) error

	// ApplyMove applies a committed drag atomically: the card leaves its
	// source list, joins the target list at the committed index, and both
	// lists end up contiguously numbered.
	ApplyMove(ev domain.Committed) error
}
