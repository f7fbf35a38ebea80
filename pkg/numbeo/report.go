package numbeo

import (
	"fmt"
	"io"
	"strings"
)

const lineWidth = 80

// DefaultCategory is where items without a category name are grouped.
const DefaultCategory = "Other"

// GroupByCategory splits items by category in a single pass, preserving
// first-seen category order and input order within each category.
func GroupByCategory(items []PriceItem) ([]string, map[string][]PriceItem) {
	var order []string
	groups := make(map[string][]PriceItem)
	for _, item := range items {
		category := item.CategoryName
		if category == "" {
			category = DefaultCategory
		}
		if _, ok := groups[category]; !ok {
			order = append(order, category)
		}
		groups[category] = append(groups[category], item)
	}
	return order, groups
}

// FormatPrice renders a price value for display. USD amounts get a dollar
// sign prefix; any other currency is rendered with its code as a suffix.
func FormatPrice(value float64, currency string) string {
	if currency == "USD" {
		return fmt.Sprintf("$%.2f", value)
	}
	return fmt.Sprintf("%.2f %s", value, currency)
}

// WriteReport prints the city prices as a grouped terminal report.
func WriteReport(w io.Writer, data *CityPrices) {
	if data.IsZero() {
		fmt.Fprintln(w, "No data received from the API.")
		return
	}

	city := data.Name
	if city == "" {
		city = "Unknown"
	}
	country := data.Country
	if country == "" {
		country = "Unknown"
	}
	currency := data.Currency
	if currency == "" {
		currency = "USD"
	}

	banner := strings.Repeat("=", lineWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "COST OF LIVING DATA: %s, %s\n", city, country)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Currency: %s\n\n", currency)

	if len(data.Prices) == 0 {
		fmt.Fprintln(w, "No price data available.")
		return
	}

	order, groups := GroupByCategory(data.Prices)
	rule := strings.Repeat("-", lineWidth)
	for _, category := range order {
		fmt.Fprintf(w, "\n%s:\n", category)
		fmt.Fprintln(w, rule)

		for _, item := range groups[category] {
			name := item.ItemName
			if name == "" {
				name = "Unknown Item"
			}
			fmt.Fprintf(w, "\n  %s\n", name)

			if item.AveragePrice != nil {
				fmt.Fprintf(w, "    Average: %s\n", FormatPrice(*item.AveragePrice, currency))
			}
			if item.LowestPrice != nil && item.HighestPrice != nil {
				fmt.Fprintf(w, "    Range: %s - %s\n",
					FormatPrice(*item.LowestPrice, currency),
					FormatPrice(*item.HighestPrice, currency))
			}
			if item.DataPoints > 0 {
				fmt.Fprintf(w, "    Data points: %d\n", item.DataPoints)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", banner)
}
