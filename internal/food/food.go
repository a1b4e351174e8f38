package food

import (
	"fmt"
	"strings"
)

// Item is one food available for selection. Description must be non-empty
// and WeightOunces positive; the catalog loader enforces both, solvers do
// not re-check them.
type Item struct {
	Description  string
	WeightOunces float64
	Calories     float64
}

// Totals holds the aggregate weight and calories of a list of items.
type Totals struct {
	WeightOunces float64
	Calories     float64
}

// Sum returns the pairwise totals over items. An empty list sums to zero.
func Sum(items []Item) Totals {
	var t Totals
	for _, it := range items {
		t.WeightOunces += it.WeightOunces
		t.Calories += it.Calories
	}
	return t
}

// Describe renders a food list and its totals as human-readable text,
// one item per line followed by the grand totals.
func Describe(items []Item) string {
	if len(items) == 0 {
		return "[empty food list]"
	}

	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s ==> weight %g oz; calories %g\n", it.Description, it.WeightOunces, it.Calories)
	}
	t := Sum(items)
	fmt.Fprintf(&b, "total weight: %g oz\ntotal calories: %g", t.WeightOunces, t.Calories)
	return b.String()
}
