package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aquadrill/fieldops/internal/db"
	"github.com/aquadrill/fieldops/internal/middleware"
	"github.com/aquadrill/fieldops/internal/models"
	"github.com/aquadrill/fieldops/internal/notify"
	"github.com/aquadrill/fieldops/internal/requests"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// RequestHandler handles service-request endpoints. It orchestrates the
// pure engines in the requests package against the store and surfaces
// outcomes on the toast channel.
type RequestHandler struct {
	collection db.RequestCollection
	notifier   notify.Notifier
}

// NewRequestHandler creates a new service-request handler
func NewRequestHandler(collection db.RequestCollection, notifier notify.Notifier) *RequestHandler {
	return &RequestHandler{
		collection: collection,
		notifier:   notifier,
	}
}

// criteriaFromQuery builds filter criteria from the listing query
// parameters. Missing parameters fall back to their "All"/empty
// defaults inside the engine.
func criteriaFromQuery(r *http.Request) requests.Criteria {
	q := r.URL.Query()
	return requests.Criteria{
		SearchTerm: q.Get("searchTerm"),
		Status:     q.Get("status"),
		Vehicle:    q.Get("vehicle"),
		Employee:   q.Get("employee"),
		StartDate:  q.Get("startDate"),
		EndDate:    q.Get("endDate"),
	}
}

// listView returns the caller's filtered, sorted view of the request
// collection. Staff callers are scoped to their own requests no matter
// what the employee parameter says.
func (h *RequestHandler) listView(r *http.Request) ([]models.ServiceRequest, error) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		return nil, fmt.Errorf("user context not found")
	}

	all, err := h.collection.ListRequests(r.Context())
	if err != nil {
		return nil, err
	}

	criteria := requests.Restrict(criteriaFromQuery(r), middleware.ActingUser(claims))
	return requests.Sort(requests.Filter(all, criteria)), nil
}

// List handles GET /api/requests
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.listView(r)
	if err != nil {
		log.WithError(err).Error("failed to list requests")
		http.Error(w, "Failed to list requests", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// Get handles GET /api/requests/{id}
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, err := h.collection.FindRequestByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Request not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(req)
}

// Create handles POST /api/requests. The acting user is recorded as the
// creator and the total is derived from the line items; a client-sent
// total is ignored.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	var req models.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.CustomerName == "" {
		http.Error(w, "Customer name is required", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		req.Status = models.StatusPending
	}
	if !models.IsValidStatus(req.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	req.CreatedBy = claims.Name
	req.LastEditedBy = ""
	req.LastEditedAt = nil
	req.TotalCost = requests.TotalCost(req)

	id, err := h.collection.InsertRequest(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("failed to insert request")
		h.notifier.Toast("Failed to create service request", notify.KindError)
		http.Error(w, "Failed to create request", http.StatusInternalServerError)
		return
	}

	h.notifier.Toast("Service request created", notify.KindSuccess)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "request": req})
}

// Update handles PUT /api/requests/{id}. The patch is merged onto the
// stored record, the audit stamp applied and the total re-derived.
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	original, err := h.collection.FindRequestByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Request not found", http.StatusNotFound)
		return
	}

	var patch requests.RequestPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if patch.Status != nil && !models.IsValidStatus(*patch.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	updated := requests.StampEdit(*original, patch, middleware.ActingUser(claims), time.Now())

	if err := h.collection.UpdateRequest(r.Context(), id, updated); err != nil {
		log.WithError(err).Error("failed to update request")
		h.notifier.Toast("Failed to update service request", notify.KindError)
		http.Error(w, "Failed to update request", http.StatusInternalServerError)
		return
	}

	h.notifier.Toast("Service request updated", notify.KindSuccess)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

// Delete handles DELETE /api/requests/{id}
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.collection.DeleteRequest(r.Context(), id); err != nil {
		h.notifier.Toast("Failed to delete service request", notify.KindError)
		http.Error(w, "Request not found", http.StatusNotFound)
		return
	}

	h.notifier.Toast("Service request deleted", notify.KindSuccess)
	w.WriteHeader(http.StatusNoContent)
}
