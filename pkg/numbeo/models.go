package numbeo

// CityPrices is the decoded body of a city_prices API response.
type CityPrices struct {
	Name     string      `json:"name"`
	Country  string      `json:"country"`
	Currency string      `json:"currency"`
	Prices   []PriceItem `json:"prices"`
}

// PriceItem is a single cost-of-living line item. The price fields are
// pointers because the API omits or nulls them when no data exists.
type PriceItem struct {
	ItemName     string   `json:"item_name"`
	CategoryName string   `json:"category_name"`
	AveragePrice *float64 `json:"average_price"`
	LowestPrice  *float64 `json:"lowest_price"`
	HighestPrice *float64 `json:"highest_price"`
	DataPoints   int      `json:"data_points"`
}

// IsZero reports whether the document carries no data at all, which is how
// an empty API response body ({}) decodes.
func (c *CityPrices) IsZero() bool {
	if c == nil {
		return true
	}
	return c.Name == "" && c.Country == "" && c.Currency == "" && len(c.Prices) == 0
}
