package domain

import "sort"

// ItemID identifies a draggable item. Callers must keep it unique across
// every list handed to the engine at once, not just within one list;
// cross-list dragging relies on that.
type ItemID string

// ListID identifies a list / drop zone.
type ListID string

// Position is the logical slot of an item: the list it belongs to and its
// zero-based rank within that list.
type Position struct {
	List  ListID
	Index int
}

// PositionCache maps items to their last-known positions. It is how
// committed order survives re-declaration: callers re-declare lists from
// their own unmutated source data on every render, and the cache is what
// keeps a dragged item from snapping back before the host applies the
// move. Updates are copy-on-write; a cache value is never mutated in
// place.
//
// Stale entries for items no longer declared are harmless. Reconcile
// ignores them and rebuilds the cache from scratch each cycle.
type PositionCache map[ItemID]Position

// Clone returns an independent copy of the cache.
func (c PositionCache) Clone() PositionCache {
	out := make(PositionCache, len(c))
	for id, pos := range c {
		out[id] = pos
	}
	return out
}

// With returns a copy of the cache with a single entry replaced.
func (c PositionCache) With(id ItemID, pos Position) PositionCache {
	out := c.Clone()
	out[id] = pos
	return out
}

// ListSequence returns the items the cache assigns to one list, ordered by
// index.
func (c PositionCache) ListSequence(list ListID) []ItemID {
	var ids []ItemID
	for id, pos := range c {
		if pos.List == list {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := c[ids[i]], c[ids[j]]
		if pi.Index != pj.Index {
			return pi.Index < pj.Index
		}
		return ids[i] < ids[j]
	})
	return ids
}

// MoveItem returns a copy of the cache with id relocated to the given
// list and index. The source list closes the gap and the target list
// shifts to make room; both end up renumbered 0..n-1. The target index is
// clamped into the valid range. Works on the cache alone, which is what
// an in-flight drag needs: between reconciliations the cache is the only
// complete picture of the current order.
func (c PositionCache) MoveItem(id ItemID, to Position) PositionCache {
	out := c.Clone()

	from, known := out[id]
	if known {
		seq := out.ListSequence(from.List)
		kept := seq[:0]
		for _, other := range seq {
			if other != id {
				kept = append(kept, other)
			}
		}
		for i, other := range kept {
			out[other] = Position{List: from.List, Index: i}
		}
	}
	delete(out, id)

	target := out.ListSequence(to.List)
	idx := to.Index
	if idx < 0 {
		idx = 0
	}
	if idx > len(target) {
		idx = len(target)
	}

	for i, other := range target {
		if i >= idx {
			out[other] = Position{List: to.List, Index: i + 1}
		}
	}
	out[id] = Position{List: to.List, Index: idx}
	return out
}
