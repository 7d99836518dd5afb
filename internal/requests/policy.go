package requests

import (
	"time"

	"github.com/aquadrill/fieldops/internal/models"
)

// DefaultEmployeeFilter returns the employee-filter value a user starts
// with. Staff are scoped to their own requests and cannot widen the
// view; any other role sees everything.
func DefaultEmployeeFilter(user models.User) string {
	if user.Role == models.RoleStaff {
		return user.Name
	}
	return AllEmployees
}

// DefaultCriteria returns the initial filter state for a user.
func DefaultCriteria(user models.User) Criteria {
	return Criteria{
		Status:   AllStatuses,
		Vehicle:  AllVehicles,
		Employee: DefaultEmployeeFilter(user),
	}
}

// Clear resets the criteria to its defaults for the given user. The
// employee scope for staff is a policy lock, not a preference, so it
// survives a clear.
func (c Criteria) Clear(user models.User) Criteria {
	return DefaultCriteria(user)
}

// Restrict re-applies the staff scope to criteria that may have been
// tampered with by the caller. For non-staff users the criteria pass
// through unchanged.
func Restrict(c Criteria, user models.User) Criteria {
	if user.Role == models.RoleStaff {
		c.Employee = user.Name
	}
	return c
}

// RequestPatch is a partial update to a service request. Nil fields are
// left untouched on merge. There is deliberately no TotalCost field:
// totals are derived, never patched.
type RequestPatch struct {
	CustomerName  *string               `json:"customer_name,omitempty"`
	Phone         *string               `json:"phone,omitempty"`
	Location      *string               `json:"location,omitempty"`
	Latitude      *float64              `json:"latitude,omitempty"`
	Longitude     *float64              `json:"longitude,omitempty"`
	Date          *string               `json:"date,omitempty"`
	Type          *string               `json:"type,omitempty"`
	Vehicle       *string               `json:"vehicle,omitempty"`
	Status        *models.ServiceStatus `json:"status,omitempty"`
	DrillingDepth *float64              `json:"drilling_depth,omitempty"`
	DrillingRate  *float64              `json:"drilling_rate,omitempty"`
	CasingDepth   *float64              `json:"casing_depth,omitempty"`
	CasingRate    *float64              `json:"casing_rate,omitempty"`
	CasingType    *string               `json:"casing_type,omitempty"`
	Casing10Depth *float64              `json:"casing10_depth,omitempty"`
	Casing10Rate  *float64              `json:"casing10_rate,omitempty"`
}

// StampEdit merges patch onto original and applies the audit stamp.
// Patch fields win field by field; the id and created_by are immutable.
// last_edited_by/at are always set to the acting user and now, even when
// the editor is the original creator, and the total is re-derived from
// the merged line items.
func StampEdit(original models.ServiceRequest, patch RequestPatch, actor models.User, now time.Time) models.ServiceRequest {
	updated := original

	if patch.CustomerName != nil {
		updated.CustomerName = *patch.CustomerName
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.Location != nil {
		updated.Location = *patch.Location
	}
	if patch.Latitude != nil {
		updated.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		updated.Longitude = patch.Longitude
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Vehicle != nil {
		updated.Vehicle = *patch.Vehicle
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.DrillingDepth != nil {
		updated.DrillingDepth = *patch.DrillingDepth
	}
	if patch.DrillingRate != nil {
		updated.DrillingRate = *patch.DrillingRate
	}
	if patch.CasingDepth != nil {
		updated.CasingDepth = *patch.CasingDepth
	}
	if patch.CasingRate != nil {
		updated.CasingRate = *patch.CasingRate
	}
	if patch.CasingType != nil {
		updated.CasingType = *patch.CasingType
	}
	if patch.Casing10Depth != nil {
		updated.Casing10Depth = *patch.Casing10Depth
	}
	if patch.Casing10Rate != nil {
		updated.Casing10Rate = *patch.Casing10Rate
	}

	updated.ID = original.ID
	updated.CreatedBy = original.CreatedBy
	updated.LastEditedBy = actor.Name
	updated.LastEditedAt = &now
	updated.TotalCost = TotalCost(updated)
	return updated
}
