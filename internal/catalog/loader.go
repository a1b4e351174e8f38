package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/calorico/maxcalorie/internal/food"
)

// fieldsPerRecord is the exact number of caret-separated fields a catalog
// row must carry: description, weight in ounces, calories.
const fieldsPerRecord = 3

// LoadFile reads the food database at path. An unreadable file or a
// malformed record fails the whole load; it never returns a partial
// catalog.
func LoadFile(path string) ([]food.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open food database: %w", err)
	}
	defer f.Close()

	items, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load food database %s: %w", path, err)
	}
	return items, nil
}

// Parse reads caret-delimited records from r, one per line, skipping the
// header line. A row with the wrong field count aborts the load. A row
// whose weight or calories fail numeric parsing, or whose item would be
// invalid (empty description, non-positive weight), is dropped and the
// load continues.
func Parse(r io.Reader) ([]food.Item, error) {
	items := make([]food.Item, 0)

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		// First line is a header row.
		if lineNumber == 1 {
			continue
		}

		fields := strings.Split(scanner.Text(), "^")
		if len(fields) != fieldsPerRecord {
			return nil, fmt.Errorf("invalid field count at line %d: want %d but got %d", lineNumber, fieldsPerRecord, len(fields))
		}

		description := fields[0]
		weight, weightErr := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		calories, caloriesErr := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if weightErr != nil || caloriesErr != nil {
			continue
		}
		if description == "" || weight <= 0 {
			continue
		}

		items = append(items, food.Item{
			Description:  description,
			WeightOunces: weight,
			Calories:     calories,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read food database: %w", err)
	}

	return items, nil
}
