package domain

// DraggingItem holds everything the engine tracks about the item under
// the pointer while a drag is active.
type DraggingItem struct {
	ID        ItemID
	FromList  ListID
	FromIndex int

	// OriginBounds is the element's bounding box captured at drag start,
	// translated so the pointer-down point is the local origin. The
	// floating clone's absolute placement is OriginBounds translated by
	// the live pointer.
	OriginBounds Rect

	Current  Point
	Previous Point

	// HasMoved flips the first time the pointer actually travels after
	// drag start. Until then hover intersections are not evaluated, so a
	// plain click with sub-pixel jitter never reorders anything.
	HasMoved bool
}

// DragState is either idle or dragging. The zero value is idle. States
// are value snapshots: every transition returns a fresh DragState and
// never mutates the receiver.
type DragState struct {
	dragging bool
	item     DraggingItem
	snapshot PositionCache
}

// Idle returns the idle state.
func Idle() DragState {
	return DragState{}
}

// StartDrag enters the dragging state. bounds is the dragged element's
// box as reported by the bounds collaborator at pointer-down; cache is
// the position cache at that instant, retained so the drag can be
// cancelled with a revert.
func StartDrag(id ItemID, from ListID, index int, pointer Point, bounds Rect, cache PositionCache) DragState {
	origin := bounds.Translate(Point{X: -pointer.X, Y: -pointer.Y})
	return DragState{
		dragging: true,
		item: DraggingItem{
			ID:           id,
			FromList:     from,
			FromIndex:    index,
			OriginBounds: origin,
			Current:      pointer,
			Previous:     pointer,
		},
		snapshot: cache,
	}
}

// IsDragging reports whether a drag is in progress.
func (s DragState) IsDragging() bool {
	return s.dragging
}

// Item returns the in-flight item, or false while idle.
func (s DragState) Item() (DraggingItem, bool) {
	return s.item, s.dragging
}

// MovePointer records a pointer sample. While idle it is an identity
// transition.
func (s DragState) MovePointer(p Point) DragState {
	if !s.dragging {
		return s
	}
	next := s
	next.item.Previous = s.item.Current
	next.item.Current = p
	if next.item.Previous != p {
		next.item.HasMoved = true
	}
	return next
}

// ClonePlacement returns the absolute box of the floating drag clone, or
// false while idle.
func (s DragState) ClonePlacement() (Rect, bool) {
	if !s.dragging {
		return Rect{}, false
	}
	return s.item.OriginBounds.Translate(s.item.Current), true
}

// SnapshotAtStart returns the position cache captured at drag start, or
// false while idle.
func (s DragState) SnapshotAtStart() (PositionCache, bool) {
	if !s.dragging {
		return nil, false
	}
	return s.snapshot, true
}
