// SPDX-License-Identifier: MIT

package rating

import (
	"fmt"
	"sort"
)

// RankOrder returns the permutation that stable-sorts ranks ascending:
// ranks[order[0]] is the best result. Equal ranks keep their input order.
func RankOrder(ranks []int) []int {
	order := make([]int, len(ranks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ranks[order[a]] < ranks[order[b]]
	})

	return order
}

// SortByRank returns copies of items and ranks stable-sorted by rank
// (lower is better). Inputs are not modified.
//
// Errors:
//   - ErrLengthMismatch when len(items) != len(ranks).
func SortByRank[T any](items []T, ranks []int) ([]T, []int, error) {
	if len(items) != len(ranks) {
		return nil, nil, fmt.Errorf("%d items, %d ranks: %w", len(items), len(ranks), ErrLengthMismatch)
	}
	order := RankOrder(ranks)
	sortedItems := make([]T, len(items))
	sortedRanks := make([]int, len(ranks))
	for dst, src := range order {
		sortedItems[dst] = items[src]
		sortedRanks[dst] = ranks[src]
	}

	return sortedItems, sortedRanks, nil
}
