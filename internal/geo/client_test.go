package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/advancedmaps/v1/test-key/autosuggest")
		assert.Equal(t, "kondapur", r.URL.Query().Get("query"))
		w.Write([]byte(`{"suggestedLocations":[
			{"placeAddress":"Kondapur, Hyderabad","latitude":17.4622,"longitude":78.3568},
			{"placeAddress":"Kondapur Village","latitude":17.5,"longitude":78.4}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	places, err := client.Search(context.Background(), "kondapur")
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Kondapur, Hyderabad", places[0].Address)
	assert.Equal(t, 17.4622, places[0].Latitude)
}

func TestClient_Search_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")
	_, err := client.Search(context.Background(), "kondapur")
	assert.Error(t, err)
}

func TestClient_ReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "rev_geocode")
		w.Write([]byte(`{"results":[{"formatted_address":"Plot 12, Kondapur, Hyderabad"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	place, err := client.ReverseGeocode(context.Background(), 17.4622, 78.3568)
	require.NoError(t, err)
	assert.Equal(t, "Plot 12, Kondapur, Hyderabad", place.Address)
	assert.Equal(t, 17.4622, place.Latitude)
	assert.Equal(t, 78.3568, place.Longitude)
}

func TestClient_ReverseGeocode_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.ReverseGeocode(context.Background(), 0, 0)
	assert.Error(t, err)
}
