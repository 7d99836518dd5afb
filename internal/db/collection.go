package db

import (
	"context"

	"github.com/aquadrill/fieldops/internal/models"
)

// RequestCollection defines the interface for service-request storage.
// List returns the full collection; filtering and sorting happen in
// memory in the requests package.
type RequestCollection interface {
	InsertRequest(ctx context.Context, req models.ServiceRequest) (string, error)
	ListRequests(ctx context.Context) ([]models.ServiceRequest, error)
	FindRequestByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	UpdateRequest(ctx context.Context, id string, req models.ServiceRequest) error
	DeleteRequest(ctx context.Context, id string) error
}

// VehicleCollection defines the interface for vehicle reference data.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) error
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
}

// ProductCollection defines the interface for product reference data.
type ProductCollection interface {
	InsertProduct(ctx context.Context, product models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// EmployeeCollection defines the interface for employee reference data.
type EmployeeCollection interface {
	InsertEmployee(ctx context.Context, employee models.Employee) error
	ListEmployees(ctx context.Context) ([]models.Employee, error)
}
