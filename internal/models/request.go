package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceStatus represents the lifecycle state of a service request.
type ServiceStatus string

const (
	StatusPending    ServiceStatus = "PENDING"
	StatusInProgress ServiceStatus = "IN_PROGRESS"
	StatusCompleted  ServiceStatus = "COMPLETED"
	StatusCancelled  ServiceStatus = "CANCELLED"
)

// IsValidStatus checks if a status is one of the known lifecycle states.
func IsValidStatus(status ServiceStatus) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ServiceRequest represents a job performed or scheduled for a customer.
// Depth/rate pairs are billable line items; a zero depth or rate means the
// category is not billed. TotalCost is always derived from the line items,
// never entered directly.
type ServiceRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName  string             `bson:"customer_name" json:"customer_name"`
	Phone         string             `bson:"phone" json:"phone"`
	Location      string             `bson:"location" json:"location"`
	Latitude      *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude     *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Date          string             `bson:"date" json:"date"` // "2006-01-02", lexically sortable
	Type          string             `bson:"type" json:"type"` // job category, e.g. "New Borewell", "Flushing"
	Vehicle       string             `bson:"vehicle" json:"vehicle"` // rig name, weak reference to Vehicle.Name
	Status        ServiceStatus      `bson:"status" json:"status"`
	DrillingDepth float64            `bson:"drilling_depth" json:"drilling_depth"` // in feet
	DrillingRate  float64            `bson:"drilling_rate" json:"drilling_rate"`   // per foot
	CasingDepth   float64            `bson:"casing_depth" json:"casing_depth"`
	CasingRate    float64            `bson:"casing_rate" json:"casing_rate"`
	CasingType    string             `bson:"casing_type" json:"casing_type"`
	Casing10Depth float64            `bson:"casing10_depth" json:"casing10_depth"` // 10-inch casing tier
	Casing10Rate  float64            `bson:"casing10_rate" json:"casing10_rate"`
	TotalCost     float64            `bson:"total_cost" json:"total_cost"`
	CreatedBy     string             `bson:"created_by,omitempty" json:"created_by,omitempty"` // weak reference to User.Name
	LastEditedBy  string             `bson:"last_edited_by,omitempty" json:"last_edited_by,omitempty"`
	LastEditedAt  *time.Time         `bson:"last_edited_at,omitempty" json:"last_edited_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// Owner returns the name the request is attributed to for visibility
// scoping. Requests without an explicit creator fall back to the last
// editor; legacy records were backfilled through the edit path only.
func (r ServiceRequest) Owner() string {
	if r.CreatedBy != "" {
		return r.CreatedBy
	}
	return r.LastEditedBy
}
