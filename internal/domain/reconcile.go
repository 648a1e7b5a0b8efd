package domain

import "sort"

// DeclaredList is one ordered list as declared by the caller. Declaration
// order of the slice handed to Reconcile is significant: it fixes the
// output list order and breaks ties among items the cache knows nothing
// about.
type DeclaredList[T any] struct {
	ID    ListID
	Items []T
}

// unknownRank sorts cache-unknown items after every known item in their
// declaring list while keeping their declaration order among themselves.
const unknownRank = int(^uint(0) >> 1)

type rankedItem[T any] struct {
	item T
	id   ItemID
	rank int
	decl int
}

// Reconcile merges freshly declared lists with a previously observed
// position cache and produces a stable order:
//
//   - items the cache places in a currently-declared list keep that list
//     and sort by their cached index;
//   - items the cache does not know (or whose cached list is no longer
//     declared) stay in their declaring list, after all known items,
//     in declaration order;
//   - every list is renumbered 0..n-1 and the returned cache covers
//     exactly the items declared in this call.
//
// Calling Reconcile again on its own output is a fixed point: same order,
// same cache.
//
// An ItemID declared in two lists at once violates the identity
// invariant; the first declaration wins and later occurrences are
// dropped, deterministically.
func Reconcile[T any](lists []DeclaredList[T], cache PositionCache, identify func(T) ItemID) ([]DeclaredList[T], PositionCache) {
	declared := make(map[ListID]bool, len(lists))
	for _, l := range lists {
		declared[l.ID] = true
	}

	groups := make(map[ListID][]rankedItem[T], len(lists))
	seen := make(map[ItemID]bool)
	decl := 0

	for _, l := range lists {
		for _, item := range l.Items {
			id := identify(item)
			if seen[id] {
				continue
			}
			seen[id] = true

			effective := l.ID
			rank := unknownRank
			if pos, ok := cache[id]; ok && declared[pos.List] {
				effective = pos.List
				rank = pos.Index
			}
			groups[effective] = append(groups[effective], rankedItem[T]{item: item, id: id, rank: rank, decl: decl})
			decl++
		}
	}

	ordered := make([]DeclaredList[T], 0, len(lists))
	next := make(PositionCache, decl)

	for _, l := range lists {
		group := groups[l.ID]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].rank != group[j].rank {
				return group[i].rank < group[j].rank
			}
			return group[i].decl < group[j].decl
		})

		items := make([]T, len(group))
		for i, ri := range group {
			items[i] = ri.item
			next[ri.id] = Position{List: l.ID, Index: i}
		}
		ordered = append(ordered, DeclaredList[T]{ID: l.ID, Items: items})
	}

	return ordered, next
}
