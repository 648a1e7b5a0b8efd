package ports

import "dragdeck/internal/domain"

// BoundsReader is the layout collaborator injected into the drag
// controller. ItemBounds returns the current screen-space bounding box of
// the element rendering the given item, reflecting live layout at call
// time, or false when the element is not mounted. Lookup failure is an
// expected steady-state outcome, never an error.
type BoundsReader interface {
	ItemBounds(id domain.ItemID) (domain.Rect, bool)
}

// BoundsFunc adapts a plain function to BoundsReader.
type BoundsFunc func(id domain.ItemID) (domain.Rect, bool)

// ItemBounds implements BoundsReader.
func (f BoundsFunc) ItemBounds(id domain.ItemID) (domain.Rect, bool) {
	return f(id)
}
