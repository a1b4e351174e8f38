// Package food defines the food item value type shared by the catalog and
// the solvers, plus small aggregation and rendering helpers.
package food
