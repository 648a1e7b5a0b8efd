package application

import "dragdeck/internal/domain"

// Re-export core types for use by adapters
type (
	Board     = domain.Board
	BoardList = domain.BoardList
	Card      = domain.Card
	ItemID    = domain.ItemID
	ListID    = domain.ListID
	Position  = domain.Position
	Moved     = domain.Moved
	Committed = domain.Committed
)

// CardIdentity is the identify function handed to the reconciler for
// boards of cards.
func CardIdentity(c domain.Card) domain.ItemID {
	return c.ID
}
