package domain

import "testing"

func TestDragStateZeroValueIsIdle(t *testing.T) {
	var s DragState
	if s.IsDragging() {
		t.Error("zero-value DragState should be idle")
	}
	if _, ok := s.Item(); ok {
		t.Error("idle state should not expose an item")
	}
	if _, ok := s.ClonePlacement(); ok {
		t.Error("idle state should not expose a clone placement")
	}
	if _, ok := s.SnapshotAtStart(); ok {
		t.Error("idle state should not expose a snapshot")
	}
}

func TestStartDragCapturesPointerRelativeBounds(t *testing.T) {
	bounds := Rect{X: 100, Y: 50, Width: 40, Height: 20}
	pointer := Point{X: 110, Y: 55}

	s := StartDrag("x", "a", 2, pointer, bounds, PositionCache{})

	if !s.IsDragging() {
		t.Fatal("expected dragging state")
	}
	item, _ := s.Item()
	if item.ID != "x" || item.FromList != "a" || item.FromIndex != 2 {
		t.Errorf("origin fields wrong: %+v", item)
	}
	// Origin bounds are translated so the pointer-down point is (0, 0).
	want := Rect{X: -10, Y: -5, Width: 40, Height: 20}
	if item.OriginBounds != want {
		t.Errorf("OriginBounds = %+v, want %+v", item.OriginBounds, want)
	}
	if item.HasMoved {
		t.Error("HasMoved should start false")
	}

	// The clone starts exactly where the element was.
	clone, ok := s.ClonePlacement()
	if !ok || clone != bounds {
		t.Errorf("ClonePlacement = %+v, want %+v", clone, bounds)
	}
}

func TestMovePointerTracksSamplesAndHasMoved(t *testing.T) {
	s := StartDrag("x", "a", 0, Point{10, 10}, Rect{X: 0, Y: 0, Width: 4, Height: 4}, PositionCache{})

	// A move to the same point is not travel.
	s = s.MovePointer(Point{10, 10})
	item, _ := s.Item()
	if item.HasMoved {
		t.Error("HasMoved should stay false for a stationary sample")
	}

	s = s.MovePointer(Point{12, 10})
	item, _ = s.Item()
	if !item.HasMoved {
		t.Error("HasMoved should flip once the pointer travels")
	}
	if item.Previous != (Point{10, 10}) || item.Current != (Point{12, 10}) {
		t.Errorf("pointer samples wrong: previous %+v current %+v", item.Previous, item.Current)
	}

	// HasMoved is sticky.
	s = s.MovePointer(Point{12, 10})
	item, _ = s.Item()
	if !item.HasMoved {
		t.Error("HasMoved should stay true")
	}

	// The clone follows the pointer.
	clone, _ := s.ClonePlacement()
	want := Rect{X: 2, Y: 0, Width: 4, Height: 4}
	if clone != want {
		t.Errorf("ClonePlacement = %+v, want %+v", clone, want)
	}
}

func TestMovePointerWhileIdleIsIdentity(t *testing.T) {
	s := Idle().MovePointer(Point{5, 5})
	if s.IsDragging() {
		t.Error("MovePointer must not start a drag")
	}
}

func TestSnapshotAtStartIsRetained(t *testing.T) {
	cache := cacheOf(map[ItemID]Position{"x": {List: "a", Index: 0}})
	s := StartDrag("x", "a", 0, Point{0, 0}, Rect{}, cache)

	snap, ok := s.SnapshotAtStart()
	if !ok {
		t.Fatal("expected a snapshot while dragging")
	}
	assertPos(t, snap, "x", Position{List: "a", Index: 0})
}
