package knapsack

import (
	"math/bits"

	"github.com/calorico/maxcalorie/internal/food"
)

// maxExhaustiveItems bounds the exhaustive solver; the subset mask must fit
// in a uint64.
const maxExhaustiveItems = 64

// Filter returns a new list with, in source order, the first totalSize
// items whose calories are strictly positive and within
// [minCalories, maxCalories] (both inclusive). Zero- and negative-calorie
// items are always excluded: they cannot improve a maximization and would
// only inflate exhaustive-search inputs.
func Filter(items []food.Item, minCalories, maxCalories float64, totalSize int) ([]food.Item, error) {
	if totalSize <= 0 {
		return nil, ErrInvalidTotalSize
	}

	limit := totalSize
	if len(items) < limit {
		limit = len(items)
	}

	out := make([]food.Item, 0, limit)
	for _, it := range items {
		if len(out) == totalSize {
			break
		}
		if it.Calories > 0 && it.Calories >= minCalories && it.Calories <= maxCalories {
			out = append(out, it)
		}
	}
	return out, nil
}

// ExhaustiveMaxCalories enumerates every subset of items and returns the
// one with the greatest total calories whose total weight does not exceed
// maxWeightOunces. Subsets are visited in ascending bitmask order and a
// candidate only replaces the best on strictly greater calories, so the
// first optimal subset in enumeration order wins ties. The chosen items
// keep their original relative order. O(2^n * n); len(items) must be
// below 64 or ErrTooManyItems is returned.
func ExhaustiveMaxCalories(items []food.Item, maxWeightOunces float64) ([]food.Item, error) {
	n := len(items)
	if n >= maxExhaustiveItems {
		return nil, ErrTooManyItems
	}

	// The empty subset weighs nothing, so it is always a feasible start.
	best := []food.Item{}
	bestTotals := food.Totals{}

	for mask := uint64(0); mask < uint64(1)<<n; mask++ {
		candidate := make([]food.Item, 0, bits.OnesCount64(mask))
		for j := 0; j < n; j++ {
			if mask>>uint(j)&1 == 1 {
				candidate = append(candidate, items[j])
			}
		}

		totals := food.Sum(candidate)
		if totals.WeightOunces <= maxWeightOunces && (len(best) == 0 || totals.Calories > bestTotals.Calories) {
			best = candidate
			bestTotals = totals
		}
	}

	return best, nil
}

// DynamicMaxCalories solves the same problem with bottom-up tabulation
// over an integer weight capacity. Item weights are truncated to whole
// ounces before indexing the table, a deliberate precision limitation:
// fractional weights are handled with integer semantics, not exactly.
// Ties between including and excluding an item resolve to exclusion.
// Backtracking walks from the last item to the first, so the chosen items
// come back in descending original-index order, the reverse of the
// exhaustive solver's. O(n*W) time and space; a negative capacity yields
// ErrNegativeCapacity, a zero capacity or empty list an empty result.
func DynamicMaxCalories(items []food.Item, capacity int) ([]food.Item, error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	n := len(items)

	// table[i][w] is the best calorie total using only the first i items
	// within capacity w; row and column zero stay at the zero value.
	table := make([][]float64, n+1)
	for i := range table {
		table[i] = make([]float64, capacity+1)
	}

	for i := 1; i <= n; i++ {
		wt := int(items[i-1].WeightOunces)
		for w := 1; w <= capacity; w++ {
			table[i][w] = table[i-1][w]
			if wt <= w {
				if include := items[i-1].Calories + table[i-1][w-wt]; include > table[i][w] {
					table[i][w] = include
				}
			}
		}
	}

	best := []food.Item{}
	w := capacity
	for i := n; i > 0; i-- {
		// Equal to the cell above means item i-1 was excluded.
		if table[i][w] == table[i-1][w] {
			continue
		}
		best = append(best, items[i-1])
		w -= int(items[i-1].WeightOunces)
	}

	return best, nil
}
