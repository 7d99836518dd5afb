// Package geo wraps the map provider's search and reverse-geocode
// endpoints. The provider's responses are treated as opaque beyond the
// display fields the console needs; nothing here interprets them.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Place is the only part of a provider result the console displays.
type Place struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Client calls the map provider's HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a map-provider client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Results []struct {
		Address   string  `json:"placeAddress"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"suggestedLocations"`
}

// Search runs a free-text location search.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	endpoint := fmt.Sprintf("%s/advancedmaps/v1/%s/autosuggest?query=%s",
		c.baseURL, c.apiKey, url.QueryEscape(query))

	var resp searchResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("map search failed: %w", err)
	}

	places := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, Place{
			Address:   r.Address,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}
	return places, nil
}

type reverseResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

// ReverseGeocode resolves coordinates to a display address.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*Place, error) {
	endpoint := fmt.Sprintf("%s/advancedmaps/v1/%s/rev_geocode?lat=%s&lng=%s",
		c.baseURL, c.apiKey,
		strconv.FormatFloat(lat, 'f', 6, 64),
		strconv.FormatFloat(lng, 'f', 6, 64))

	var resp reverseResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("reverse geocode failed: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("no address for %f,%f", lat, lng)
	}

	return &Place{
		Address:   resp.Results[0].FormattedAddress,
		Latitude:  lat,
		Longitude: lng,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
