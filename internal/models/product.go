package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a billable material or service item, e.g. a casing
// type with its per-foot rate.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category" json:"category"` // "drilling", "casing", "casing10"
	Unit      string             `bson:"unit" json:"unit"`         // "ft"
	Rate      float64            `bson:"rate" json:"rate"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
