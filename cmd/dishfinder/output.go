package main

import (
	"fmt"
	"strings"

	"github.com/culinate/dishfinder/core"
	"github.com/culinate/dishfinder/menu"
)

// FormatResults renders search results as plain text.
func FormatResults(query string, results []core.MatchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No dishes found for %q.\n", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d dishes for %q:\n\n", len(results), query)
	for i, result := range results {
		record := result.Record

		fmt.Fprintf(&b, "%d. %s", i+1, record.Name)
		if record.HasPrice() {
			fmt.Fprintf(&b, " - %.2f€", record.Price)
		}
		fmt.Fprintf(&b, "\n   %s (%s)", record.Restaurant, record.Cuisine)
		if record.Category != "" {
			fmt.Fprintf(&b, " · %s", record.Category)
		}
		b.WriteString("\n")
		if record.Description != "" {
			fmt.Fprintf(&b, "   %s\n", record.Description)
		}
		if record.Address != "" {
			fmt.Fprintf(&b, "   %s\n", record.Address)
		}
		fmt.Fprintf(&b, "   %s match, %.0f%%\n\n", result.Kind, result.Score*100)
	}
	return b.String()
}

// FormatCatalog renders the full catalog grouped by restaurant.
func FormatCatalog(restaurants []*menu.Restaurant) string {
	if len(restaurants) == 0 {
		return "The catalog is empty.\n"
	}

	var b strings.Builder
	for _, restaurant := range restaurants {
		fmt.Fprintf(&b, "%s (%s", restaurant.Name, restaurant.Cuisine)
		if restaurant.PriceRange != "" {
			fmt.Fprintf(&b, ", %s", restaurant.PriceRange)
		}
		b.WriteString(")")
		if restaurant.Rating > 0 {
			fmt.Fprintf(&b, " %s", strings.Repeat("⭐", restaurant.Rating))
		}
		b.WriteString("\n")
		if restaurant.Address != "" {
			fmt.Fprintf(&b, "  %s\n", restaurant.Address)
		}

		category := ""
		for _, dish := range restaurant.Dishes {
			if dish.Category != category {
				category = dish.Category
				if category != "" {
					fmt.Fprintf(&b, "  [%s]\n", category)
				}
			}
			fmt.Fprintf(&b, "  - %s", dish.Name)
			if dish.Description != "" {
				fmt.Fprintf(&b, " (%s)", dish.Description)
			}
			if dish.Price > 0 {
				fmt.Fprintf(&b, " - %.2f€", dish.Price)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
