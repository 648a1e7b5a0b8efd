package domain

import "testing"

func cacheOf(entries map[ItemID]Position) PositionCache {
	c := make(PositionCache, len(entries))
	for id, pos := range entries {
		c[id] = pos
	}
	return c
}

func assertPos(t *testing.T, c PositionCache, id ItemID, want Position) {
	t.Helper()
	got, ok := c[id]
	if !ok {
		t.Fatalf("expected %s in cache", id)
	}
	if got != want {
		t.Errorf("%s at %+v, want %+v", id, got, want)
	}
}

func TestPositionCacheMoveItem(t *testing.T) {
	base := func() PositionCache {
		return cacheOf(map[ItemID]Position{
			"x": {List: "a", Index: 0},
			"y": {List: "a", Index: 1},
			"z": {List: "a", Index: 2},
			"w": {List: "b", Index: 0},
		})
	}

	t.Run("move down within a list", func(t *testing.T) {
		c := base().MoveItem("x", Position{List: "a", Index: 1})
		assertPos(t, c, "y", Position{List: "a", Index: 0})
		assertPos(t, c, "x", Position{List: "a", Index: 1})
		assertPos(t, c, "z", Position{List: "a", Index: 2})
	})

	t.Run("move up within a list", func(t *testing.T) {
		c := base().MoveItem("z", Position{List: "a", Index: 0})
		assertPos(t, c, "z", Position{List: "a", Index: 0})
		assertPos(t, c, "x", Position{List: "a", Index: 1})
		assertPos(t, c, "y", Position{List: "a", Index: 2})
	})

	t.Run("move across lists", func(t *testing.T) {
		c := base().MoveItem("y", Position{List: "b", Index: 0})
		assertPos(t, c, "y", Position{List: "b", Index: 0})
		assertPos(t, c, "w", Position{List: "b", Index: 1})
		// Source list closed the gap.
		assertPos(t, c, "x", Position{List: "a", Index: 0})
		assertPos(t, c, "z", Position{List: "a", Index: 1})
	})

	t.Run("index is clamped to the target length", func(t *testing.T) {
		c := base().MoveItem("x", Position{List: "b", Index: 99})
		assertPos(t, c, "w", Position{List: "b", Index: 0})
		assertPos(t, c, "x", Position{List: "b", Index: 1})
	})

	t.Run("negative index clamps to zero", func(t *testing.T) {
		c := base().MoveItem("x", Position{List: "b", Index: -3})
		assertPos(t, c, "x", Position{List: "b", Index: 0})
		assertPos(t, c, "w", Position{List: "b", Index: 1})
	})

	t.Run("unknown item is inserted", func(t *testing.T) {
		c := base().MoveItem("new", Position{List: "b", Index: 0})
		assertPos(t, c, "new", Position{List: "b", Index: 0})
		assertPos(t, c, "w", Position{List: "b", Index: 1})
	})

	t.Run("original cache is untouched", func(t *testing.T) {
		orig := base()
		orig.MoveItem("x", Position{List: "b", Index: 0})
		assertPos(t, orig, "x", Position{List: "a", Index: 0})
		assertPos(t, orig, "w", Position{List: "b", Index: 0})
	})
}

func TestPositionCacheListSequence(t *testing.T) {
	c := cacheOf(map[ItemID]Position{
		"x": {List: "a", Index: 2},
		"y": {List: "a", Index: 0},
		"z": {List: "b", Index: 0},
		"w": {List: "a", Index: 1},
	})

	got := c.ListSequence("a")
	want := []ItemID{"y", "w", "x"}
	if len(got) != len(want) {
		t.Fatalf("ListSequence returned %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListSequence[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if seq := c.ListSequence("missing"); len(seq) != 0 {
		t.Errorf("expected empty sequence for unknown list, got %v", seq)
	}
}
