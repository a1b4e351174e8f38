// Package knapsack solves the 0/1 knapsack problem over food items: pick
// the subset maximizing total calories without exceeding a weight budget.
// It offers an exact exhaustive solver for small inputs, a
// pseudo-polynomial dynamic-programming solver for large ones, and a
// calorie-range filter that bounds the input fed to the exhaustive solver.
package knapsack
