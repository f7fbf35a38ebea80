package numbeo

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// DefaultBaseURL is the public Numbeo API endpoint.
const DefaultBaseURL = "https://www.numbeo.com/api"

const requestTimeout = 30 * time.Second

// Client calls the Numbeo API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *log.Logger
}

// NewClient returns a client for the public Numbeo API.
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

// NewClientWithBaseURL returns a client pointed at a specific base URL.
// Tests use this to target a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log.New(os.Stderr, "numbeo: ", log.LstdFlags),
	}
}

// GetCityPrices fetches cost of living data for a city. The request is made
// exactly once; there are no retries. The response body is returned decoded
// but not validated beyond being well-formed JSON.
func (c *Client) GetCityPrices(ctx context.Context, city, country string) (*CityPrices, error) {
	endpoint := c.baseURL + "/city_prices"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	q := url.Values{}
	q.Set("city", city)
	q.Set("country", country)
	q.Set("api_key", c.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Printf("request to %s returned %s", endpoint, resp.Status)
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	var data CityPrices
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &data, nil
}
