package application

import (
	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// Controller is the orchestrating façade of the drag engine. It owns no
// state of its own: callers thread the current (DragState, PositionCache)
// pair through each notification and get a fresh pair back, plus an
// optional outbound event. The only injected collaborator is the bounds
// reader; the controller performs no I/O itself.
//
// Events arriving in a state with no matching transition (a hover while
// idle, a second pointer-down mid-drag) are identity transitions, never
// errors. The same goes for bounds lookups that fail: the element is gone
// from the live tree, so the triggering event is simply dropped.
type Controller struct {
	bounds ports.BoundsReader
}

// NewController creates a controller over the given bounds collaborator.
func NewController(bounds ports.BoundsReader) *Controller {
	return &Controller{bounds: bounds}
}

// PointerDown starts a drag on the given item. While a drag is already
// active it is ignored: the host's primary-button pointer model
// guarantees at most one grab, so a second press is not queued. When the
// item's bounds cannot be read the drag silently does not start.
func (c *Controller) PointerDown(state domain.DragState, cache domain.PositionCache, id domain.ItemID, list domain.ListID, index int, pointer domain.Point) (domain.DragState, domain.PositionCache) {
	if state.IsDragging() {
		return state, cache
	}
	bounds, ok := c.bounds.ItemBounds(id)
	if !ok {
		return state, cache
	}
	return domain.StartDrag(id, list, index, pointer, bounds, cache), cache
}

// PointerMove records a pointer sample while dragging; idle moves are
// ignored.
func (c *Controller) PointerMove(state domain.DragState, cache domain.PositionCache, p domain.Point) (domain.DragState, domain.PositionCache) {
	return state.MovePointer(p), cache
}

// HoverItem handles the pointer hovering a sibling card. The hover
// becomes a move only once the pointer has actually travelled since drag
// start and has crossed past the target's midpoint in the direction of
// travel; anything less leaves the order untouched.
func (c *Controller) HoverItem(state domain.DragState, cache domain.PositionCache, targetList domain.ListID, target domain.ItemID, targetIndex int) (domain.DragState, domain.PositionCache, *domain.Moved) {
	item, ok := state.Item()
	if !ok || !item.HasMoved || target == item.ID {
		return state, cache, nil
	}
	bounds, ok := c.bounds.ItemBounds(target)
	if !ok {
		return state, cache, nil
	}
	if !domain.DetectSideIntersect(item.Previous, item.Current, bounds) {
		return state, cache, nil
	}
	return c.moveTo(state, cache, domain.Position{List: targetList, Index: targetIndex})
}

// HoverEmptyList handles the pointer hovering a list with no cards in
// it; the dragged item becomes its first entry.
func (c *Controller) HoverEmptyList(state domain.DragState, cache domain.PositionCache, list domain.ListID) (domain.DragState, domain.PositionCache, *domain.Moved) {
	item, ok := state.Item()
	if !ok || !item.HasMoved {
		return state, cache, nil
	}
	return c.moveTo(state, cache, domain.Position{List: list, Index: 0})
}

func (c *Controller) moveTo(state domain.DragState, cache domain.PositionCache, to domain.Position) (domain.DragState, domain.PositionCache, *domain.Moved) {
	item, _ := state.Item()
	next := cache.MoveItem(item.ID, to)
	if next[item.ID] == cache[item.ID] {
		// Already in the requested slot; suppress the duplicate event.
		return state, cache, nil
	}
	pos := next[item.ID]
	return state, next, &domain.Moved{Item: item.ID, List: pos.List, Index: pos.Index}
}

// PointerUp ends the drag and commits wherever the item currently is.
// A press-and-release with no travel commits an identity move (from and
// to fields equal); hosts treat that as no real change.
func (c *Controller) PointerUp(state domain.DragState, cache domain.PositionCache) (domain.DragState, domain.PositionCache, *domain.Committed) {
	item, ok := state.Item()
	if !ok {
		return state, cache, nil
	}
	pos, known := cache[item.ID]
	if !known {
		pos = domain.Position{List: item.FromList, Index: item.FromIndex}
	}
	ev := &domain.Committed{
		Item:      item.ID,
		FromList:  item.FromList,
		FromIndex: item.FromIndex,
		List:      pos.List,
		Index:     pos.Index,
	}
	return domain.Idle(), cache, ev
}

// Cancel abandons the drag without committing: the state returns to idle
// and the cache reverts to its drag-start snapshot, so any intermediate
// hover moves are undone. No event is emitted. While idle it is an
// identity transition.
func (c *Controller) Cancel(state domain.DragState, cache domain.PositionCache) (domain.DragState, domain.PositionCache) {
	snapshot, ok := state.SnapshotAtStart()
	if !ok {
		return state, cache
	}
	return domain.Idle(), snapshot
}

// IsDragging reports whether a drag is in progress. Hosts subscribe to
// pointer move/up streams exactly while this is true.
func (c *Controller) IsDragging(state domain.DragState) bool {
	return state.IsDragging()
}

// ClonePlacement returns the absolute box for the floating drag clone,
// or false while idle.
func (c *Controller) ClonePlacement(state domain.DragState) (domain.Rect, bool) {
	return state.ClonePlacement()
}

// RenderOrder reconciles freshly declared lists against the cache and
// returns the view-ready order plus the rebuilt cache. Hosts call it on
// every render; it is a fixed point when nothing moved.
func RenderOrder[T any](lists []domain.DeclaredList[T], cache domain.PositionCache, identify func(T) domain.ItemID) ([]domain.DeclaredList[T], domain.PositionCache) {
	return domain.Reconcile(lists, cache, identify)
}
