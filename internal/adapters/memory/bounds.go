package memory

import (
	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// Bounds is a map-backed ports.BoundsReader. Tests use it in place of a
// live layout; Remove simulates an element unmounting mid-drag.
type Bounds struct {
	rects map[domain.ItemID]domain.Rect
}

// Ensure Bounds implements BoundsReader
var _ ports.BoundsReader = (*Bounds)(nil)

// NewBounds creates an empty bounds table.
func NewBounds() *Bounds {
	return &Bounds{rects: make(map[domain.ItemID]domain.Rect)}
}

// Set records the bounding box for an item.
func (b *Bounds) Set(id domain.ItemID, rect domain.Rect) {
	b.rects[id] = rect
}

// Remove forgets an item, as if its element left the rendered tree.
func (b *Bounds) Remove(id domain.ItemID) {
	delete(b.rects, id)
}

// ItemBounds implements ports.BoundsReader.
func (b *Bounds) ItemBounds(id domain.ItemID) (domain.Rect, bool) {
	rect, ok := b.rects[id]
	return rect, ok
}
