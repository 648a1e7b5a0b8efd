package application

import (
	"testing"

	"dragdeck/internal/adapters/memory"
	"dragdeck/internal/domain"
)

// boardFixture is lists a=[x, y, z], b=[] with every card 10 cells wide
// and 2 tall, stacked vertically in column a.
func boardFixture() (domain.Board, *memory.Bounds) {
	board := domain.Board{
		Lists: []domain.BoardList{
			{ID: "a", Title: "A", Cards: []domain.Card{
				{ID: "x", Title: "X"},
				{ID: "y", Title: "Y"},
				{ID: "z", Title: "Z"},
			}},
			{ID: "b", Title: "B"},
		},
	}
	bounds := memory.NewBounds()
	bounds.Set("x", domain.Rect{X: 0, Y: 0, Width: 10, Height: 2})
	bounds.Set("y", domain.Rect{X: 0, Y: 2, Width: 10, Height: 2})
	bounds.Set("z", domain.Rect{X: 0, Y: 4, Width: 10, Height: 2})
	return board, bounds
}

func reconciled(t *testing.T, board domain.Board) ([]domain.DeclaredList[domain.Card], domain.PositionCache) {
	t.Helper()
	return RenderOrder(board.DeclaredLists(), domain.PositionCache{}, CardIdentity)
}

func TestCrossListDragCommit(t *testing.T) {
	board, bounds := boardFixture()
	ctrl := NewController(bounds)
	_, cache := reconciled(t, board)

	state := domain.Idle()
	state, cache = ctrl.PointerDown(state, cache, "x", "a", 0, domain.Point{X: 5, Y: 1})
	if !ctrl.IsDragging(state) {
		t.Fatal("expected drag to start")
	}

	state, cache = ctrl.PointerMove(state, cache, domain.Point{X: 30, Y: 1})

	var moved *domain.Moved
	state, cache, moved = ctrl.HoverEmptyList(state, cache, "b")
	if moved == nil {
		t.Fatal("expected a Moved event for the empty list hover")
	}
	if moved.Item != "x" || moved.List != "b" || moved.Index != 0 {
		t.Errorf("Moved = %+v", moved)
	}

	var ev *domain.Committed
	state, cache, ev = ctrl.PointerUp(state, cache)
	if ctrl.IsDragging(state) {
		t.Error("expected idle after pointer-up")
	}
	if ev == nil {
		t.Fatal("expected a Committed event")
	}
	want := domain.Committed{Item: "x", FromList: "a", FromIndex: 0, List: "b", Index: 0}
	if *ev != want {
		t.Errorf("Committed = %+v, want %+v", *ev, want)
	}

	// Applying the commit and re-declaring yields a=[y, z], b=[x].
	after := board.ApplyMove(*ev)
	ordered, _ := RenderOrder(after.DeclaredLists(), cache, CardIdentity)
	if ordered[0].ID != "a" || len(ordered[0].Items) != 2 || ordered[0].Items[0].ID != "y" || ordered[0].Items[1].ID != "z" {
		t.Errorf("list a after commit: %+v", ordered[0].Items)
	}
	if ordered[1].ID != "b" || len(ordered[1].Items) != 1 || ordered[1].Items[0].ID != "x" {
		t.Errorf("list b after commit: %+v", ordered[1].Items)
	}
}

func TestSiblingHoverRequiresMidpointCrossing(t *testing.T) {
	board, bounds := boardFixture()
	ctrl := NewController(bounds)
	_, cache := reconciled(t, board)

	state := domain.Idle()
	state, cache = ctrl.PointerDown(state, cache, "x", "a", 0, domain.Point{X: 5, Y: 1})

	// Moving down but still above y's vertical center (y spans 2..4).
	state, cache = ctrl.PointerMove(state, cache, domain.Point{X: 5, Y: 2.5})
	state, cache, moved := ctrl.HoverItem(state, cache, "a", "y", 1)
	if moved != nil {
		t.Fatalf("expected no move before crossing the midpoint, got %+v", moved)
	}

	// Past the midpoint.
	state, cache = ctrl.PointerMove(state, cache, domain.Point{X: 5, Y: 3.5})
	_, cache, moved = ctrl.HoverItem(state, cache, "a", "y", 1)
	if moved == nil {
		t.Fatal("expected a move after crossing the midpoint")
	}
	if moved.List != "a" || moved.Index != 1 {
		t.Errorf("Moved = %+v", moved)
	}
	if cache["y"] != (domain.Position{List: "a", Index: 0}) {
		t.Errorf("y should move up to slot 0, got %+v", cache["y"])
	}
}

func TestHoverBeforeTravelIsIgnored(t *testing.T) {
	board, bounds := boardFixture()
	ctrl := NewController(bounds)
	_, cache := reconciled(t, board)

	state := domain.Idle()
	state, cache = ctrl.PointerDown(state, cache, "x", "a", 0, domain.Point{X: 5, Y: 1})

	// No PointerMove yet: HasMoved is false, hovers must not reorder.
	_, _, moved := ctrl.HoverItem(state, cache, "a", "y", 1)
	if moved != nil {
		t.Error("sibling hover before travel should be ignored")
	}
	_, _, moved = ctrl.HoverEmptyList(state, cache, "b")
	if moved != nil {
		t.Error("empty-list hover before travel should be ignored")
	}
}

func TestNoOpDragCommitsIdentityMove(t *testing.T) {
	board, bounds := boardFixture()
	ctrl := NewController(bounds)
	_, cache := reconciled(t, board)

	state := domain.Idle()
	state, cache = ctrl.PointerDown(state, cache, "x", "a", 0, domain.Point{X: 5, Y: 1})
	_, _, ev := ctrl.PointerUp(state, cache)

	if ev == nil {
		t.Fatal("expected a Committed event")
	}
	if ev.FromList != ev.List || ev.FromIndex != ev.Index {
		t.Errorf("expected identity commit, got %+v", ev)
	}
}

func TestUnmountedTargetTolerance(t *testing.T) {
	board, bounds := boardFixture()
	ctrl := NewController(bounds)
	_, cache := reconciled(t, board)

	state := domain.Idle()
	state, cache = ctrl.PointerDown(state, cache, "x", "a", 0, domain.Point{X: 5, Y: 1})
	state, cache = ctrl.PointerMove(state, cache, domain.Point{X: 5, Y: 3.5})

	bounds.Remove("y")
	next, nextCache, moved := ctrl.HoverItem(state, cache, "a", "y", 1)
	if moved != nil {
		t.Error("hover over an unmounted target must not reorder")
	}
	if !ctrl.IsDragging(next) {
		t.Error("state must be unchanged")
	}
	if nextCache["x"] != cache["x"] {
		t.Error("cache must be unchanged")
	}
}

func TestPointerDownGuards(t *testing.T) {
	board, bounds := boardFixture()
	ctrl := NewController(bounds)
	_, cache := reconciled(t, board)

	t.Run("bounds unavailable", func(t *testing.T) {
		bounds.Remove("z")
		state, _ := ctrl.PointerDown(domain.Idle(), cache, "z", "a", 2, domain.Point{X: 5, Y: 5})
		if ctrl.IsDragging(state) {
			t.Error("drag must not start without bounds")
		}
		bounds.Set("z", domain.Rect{X: 0, Y: 4, Width: 10, Height: 2})
	})

	t.Run("second press while dragging is ignored", func(t *testing.T) {
		state, cache := ctrl.PointerDown(domain.Idle(), cache, "x", "a", 0, domain.Point{X: 5, Y: 1})
		state2, _ := ctrl.PointerDown(state, cache, "y", "a", 1, domain.Point{X: 5, Y: 3})
		item, _ := state2.Item()
		if item.ID != "x" {
			t.Errorf("second press replaced the drag: now %s", item.ID)
		}
	})

	t.Run("hover while idle is ignored", func(t *testing.T) {
		_, _, moved := ctrl.HoverItem(domain.Idle(), cache, "a", "y", 1)
		if moved != nil {
			t.Error("hover while idle must be a no-op")
		}
		_, _, moved = ctrl.HoverEmptyList(domain.Idle(), cache, "b")
		if moved != nil {
			t.Error("empty-list hover while idle must be a no-op")
		}
	})

	t.Run("pointer-up while idle emits nothing", func(t *testing.T) {
		_, _, ev := ctrl.PointerUp(domain.Idle(), cache)
		if ev != nil {
			t.Errorf("unexpected commit: %+v", ev)
		}
	})
}

func TestCancelRevertsToDragStartOrder(t *testing.T) {
	board, bounds := boardFixture()
	ctrl := NewController(bounds)
	_, cache := reconciled(t, board)

	state := domain.Idle()
	state, cache = ctrl.PointerDown(state, cache, "x", "a", 0, domain.Point{X: 5, Y: 1})
	state, cache = ctrl.PointerMove(state, cache, domain.Point{X: 30, Y: 1})
	state, cache, _ = ctrl.HoverEmptyList(state, cache, "b")

	if cache["x"] != (domain.Position{List: "b", Index: 0}) {
		t.Fatalf("setup: x should be in b, got %+v", cache["x"])
	}

	state, cache = ctrl.Cancel(state, cache)
	if ctrl.IsDragging(state) {
		t.Error("expected idle after cancel")
	}
	if cache["x"] != (domain.Position{List: "a", Index: 0}) {
		t.Errorf("cache should revert to the drag-start order, got %+v", cache["x"])
	}
}

func TestClonePlacementFollowsPointer(t *testing.T) {
	board, bounds := boardFixture()
	ctrl := NewController(bounds)
	_, cache := reconciled(t, board)

	if _, ok := ctrl.ClonePlacement(domain.Idle()); ok {
		t.Error("no clone while idle")
	}

	state := domain.Idle()
	state, cache = ctrl.PointerDown(state, cache, "x", "a", 0, domain.Point{X: 5, Y: 1})
	state, _ = ctrl.PointerMove(state, cache, domain.Point{X: 25, Y: 11})

	clone, ok := ctrl.ClonePlacement(state)
	if !ok {
		t.Fatal("expected a clone placement while dragging")
	}
	want := domain.Rect{X: 20, Y: 10, Width: 10, Height: 2}
	if clone != want {
		t.Errorf("ClonePlacement = %+v, want %+v", clone, want)
	}
}
