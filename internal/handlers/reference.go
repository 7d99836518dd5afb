package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aquadrill/fieldops/internal/db"
	"github.com/aquadrill/fieldops/internal/models"
	log "github.com/sirupsen/logrus"
)

// ReferenceHandler serves the reference collections the console feeds
// into the filter controls: vehicles, products and employees.
type ReferenceHandler struct {
	vehicles  db.VehicleCollection
	products  db.ProductCollection
	employees db.EmployeeCollection
}

// NewReferenceHandler creates a new reference-data handler
func NewReferenceHandler(vehicles db.VehicleCollection, products db.ProductCollection, employees db.EmployeeCollection) *ReferenceHandler {
	return &ReferenceHandler{
		vehicles:  vehicles,
		products:  products,
		employees: employees,
	}
}

// ListVehicles handles GET /api/vehicles
func (h *ReferenceHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListVehicles(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list vehicles")
		http.Error(w, "Failed to list vehicles", http.StatusInternalServerError)
		return
	}
	writeJSON(w, vehicles)
}

// CreateVehicle handles POST /api/vehicles
func (h *ReferenceHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if vehicle.Name == "" {
		http.Error(w, "Vehicle name is required", http.StatusBadRequest)
		return
	}

	if err := h.vehicles.InsertVehicle(r.Context(), vehicle); err != nil {
		log.WithError(err).Error("failed to insert vehicle")
		http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(vehicle)
}

// ListProducts handles GET /api/products
func (h *ReferenceHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list products")
		http.Error(w, "Failed to list products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, products)
}

// CreateProduct handles POST /api/products
func (h *ReferenceHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if product.Name == "" {
		http.Error(w, "Product name is required", http.StatusBadRequest)
		return
	}

	if err := h.products.InsertProduct(r.Context(), product); err != nil {
		log.WithError(err).Error("failed to insert product")
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

// ListEmployees handles GET /api/employees
func (h *ReferenceHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.ListEmployees(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list employees")
		http.Error(w, "Failed to list employees", http.StatusInternalServerError)
		return
	}
	writeJSON(w, employees)
}

// CreateEmployee handles POST /api/employees
func (h *ReferenceHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if employee.Name == "" {
		http.Error(w, "Employee name is required", http.StatusBadRequest)
		return
	}

	if err := h.employees.InsertEmployee(r.Context(), employee); err != nil {
		log.WithError(err).Error("failed to insert employee")
		http.Error(w, "Failed to create employee", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(employee)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
