package main

import (
	"fmt"
	"math"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/calorico/maxcalorie/internal/catalog"
	"github.com/calorico/maxcalorie/internal/food"
	"github.com/calorico/maxcalorie/internal/knapsack"
)

func main() {
	kingpinApp := kingpin.New("maxcalorie", "Pick the calorie-maximizing food subset within a weight budget")
	catalogPath := kingpinApp.Flag("catalog", "Path to the caret-delimited food database").Required().String()
	algorithm := kingpinApp.Flag("algorithm", "Solving strategy").Default("dynamic").Enum("dynamic", "exhaustive")
	maxWeight := kingpinApp.Flag("max-weight", "Maximum total weight in ounces").Required().Float64()
	minCalories := kingpinApp.Flag("min-calories", "Filter: minimum calories per item").Default("0").Float64()
	maxCalories := kingpinApp.Flag("max-calories", "Filter: maximum calories per item (0 means no upper bound)").Default("0").Float64()
	limit := kingpinApp.Flag("limit", "Filter: keep only the first N matching items (0 disables filtering)").Default("0").Int()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	out, err := solve(*catalogPath, *algorithm, *maxWeight, *minCalories, *maxCalories, *limit)
	if err != nil {
		kingpinApp.Fatalf("%v", err)
	}
	fmt.Println(out)
}

// solve loads the catalog, optionally filters it, runs the chosen solver,
// and renders the winning subset.
func solve(catalogPath, algorithm string, maxWeight, minCalories, maxCalories float64, limit int) (string, error) {
	items, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return "", err
	}

	if limit > 0 {
		if maxCalories <= 0 {
			maxCalories = math.MaxFloat64
		}
		items, err = knapsack.Filter(items, minCalories, maxCalories, limit)
		if err != nil {
			return "", err
		}
	}

	var solution []food.Item
	switch algorithm {
	case "exhaustive":
		solution, err = knapsack.ExhaustiveMaxCalories(items, maxWeight)
	default:
		solution, err = knapsack.DynamicMaxCalories(items, int(maxWeight))
	}
	if err != nil {
		return "", err
	}

	return food.Describe(solution), nil
}
