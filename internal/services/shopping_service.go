package services

import (
	"log"
	"sort"
	"time"

	"github.com/ggrange/cuistot/internal/db"
)

// ShoppingItem is one line of the aggregated shopping list: an ingredient in
// one unit of use, summed over every planned menu that needs it.
type ShoppingItem struct {
	IngredientID uint     `json:"ingredient_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Bucket       string   `json:"bucket"`
	Unit         string   `json:"unit"`
	Quantity     float64  `json:"quantity"`
	Dates        []string `json:"dates"`
}

type ShoppingRowSource interface {
	ShoppingRowsByPeriod(start time.Time, end time.Time) ([]db.ShoppingRow, error)
}

type ShoppingListService struct {
	menus    ShoppingRowSource
	location *time.Location
}

func NewShoppingListService(menus ShoppingRowSource, location *time.Location) *ShoppingListService {
	if location == nil {
		location = time.UTC
	}
	return &ShoppingListService{
		menus:    menus,
		location: location,
	}
}

// ComputeForPeriod aggregates ingredient needs across every planned menu in
// [start, end]. Quantities are scaled by planned diners over the recipe's base
// serving count and summed per (ingredient, unit-of-use) pair; the same
// ingredient measured in grams and in pieces stays two separate lines. Rows
// whose recipe has a zero base serving count are skipped and reported rather
// than poisoning the sum.
func (service *ShoppingListService) ComputeForPeriod(start time.Time, end time.Time) ([]ShoppingItem, error) {
	rows, err := service.menus.ShoppingRowsByPeriod(
		DateAtLocation(start, service.location),
		DateAtLocation(end, service.location),
	)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		ingredientID uint
		unit         string
	}
	groups := make(map[groupKey]*ShoppingItem, len(rows))
	seenDates := make(map[groupKey]map[string]struct{}, len(rows))

	for _, row := range rows {
		if row.BaseServings <= 0 {
			log.Printf("shopping list: skipping %q for %s: recipe has base servings %d",
				row.IngredientName, row.Date.Format("2006-01-02"), row.BaseServings)
			continue
		}

		key := groupKey{ingredientID: row.IngredientID, unit: row.Unit}
		item, ok := groups[key]
		if !ok {
			item = &ShoppingItem{
				IngredientID: row.IngredientID,
				Name:         row.IngredientName,
				Category:     row.CategoryName,
				Bucket:       BucketFor(row.IngredientName, row.CategoryName),
				Unit:         row.Unit,
				Dates:        make([]string, 0, 1),
			}
			groups[key] = item
			seenDates[key] = make(map[string]struct{}, 1)
		}

		item.Quantity += row.Quantity * float64(row.Diners) / float64(row.BaseServings)

		// Rows arrive ordered by date, so appending on first sight keeps the
		// provenance list chronological.
		formatted := FormatDayMonth(row.Date)
		if _, dup := seenDates[key][formatted]; !dup {
			seenDates[key][formatted] = struct{}{}
			item.Dates = append(item.Dates, formatted)
		}
	}

	items := make([]ShoppingItem, 0, len(groups))
	for _, item := range groups {
		item.Quantity = roundQuantity(item.Quantity)
		items = append(items, *item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].Unit < items[j].Unit
	})

	return items, nil
}
