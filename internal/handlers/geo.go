package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aquadrill/fieldops/internal/geo"
	log "github.com/sirupsen/logrus"
)

// GeoHandler proxies location search and reverse geocoding to the map
// provider for the console's location picker.
type GeoHandler struct {
	client *geo.Client
}

// NewGeoHandler creates a new geo handler
func NewGeoHandler(client *geo.Client) *GeoHandler {
	return &GeoHandler{client: client}
}

// Search handles GET /api/geo/search?q=
func (h *GeoHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Query parameter q is required", http.StatusBadRequest)
		return
	}

	places, err := h.client.Search(r.Context(), query)
	if err != nil {
		log.WithError(err).Error("location search failed")
		http.Error(w, "Location search failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(places)
}

// Reverse handles GET /api/geo/reverse?lat=&lng=
func (h *GeoHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		http.Error(w, "Valid lat and lng parameters are required", http.StatusBadRequest)
		return
	}

	place, err := h.client.ReverseGeocode(r.Context(), lat, lng)
	if err != nil {
		log.WithError(err).Error("reverse geocode failed")
		http.Error(w, "Reverse geocode failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(place)
}
