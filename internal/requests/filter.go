// Package requests holds the filtering, sorting, cost-derivation and
// audit-policy logic for service requests. Everything here is a pure
// function over snapshots of data; persistence and rendering are the
// caller's problem.
package requests

import (
	"strings"

	"github.com/aquadrill/fieldops/internal/models"
)

// Sentinel filter values meaning "no restriction". These match the wire
// values the console sends.
const (
	AllStatuses  = "All"
	AllVehicles  = "All Vehicles"
	AllEmployees = "All"
)

// Criteria is the filter state for a request listing. Zero values behave
// like their "All"/empty counterparts.
type Criteria struct {
	SearchTerm string `json:"search_term"`
	Status     string `json:"status"`   // AllStatuses or a ServiceStatus value
	Vehicle    string `json:"vehicle"`  // AllVehicles or a vehicle name
	Employee   string `json:"employee"` // AllEmployees or an employee name
	StartDate  string `json:"start_date"` // inclusive, "2006-01-02"
	EndDate    string `json:"end_date"`   // inclusive
}

// Filter returns the subset of requests matching every predicate in c.
// Input order is preserved; ordering for display is Sort's job.
func Filter(reqs []models.ServiceRequest, c Criteria) []models.ServiceRequest {
	out := make([]models.ServiceRequest, 0, len(reqs))
	for _, r := range reqs {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single request passes every predicate.
func (c Criteria) Matches(r models.ServiceRequest) bool {
	return c.matchesSearch(r) &&
		c.matchesStatus(r) &&
		c.matchesVehicle(r) &&
		c.matchesEmployee(r) &&
		c.matchesDateRange(r)
}

func (c Criteria) matchesSearch(r models.ServiceRequest) bool {
	term := strings.TrimSpace(c.SearchTerm)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.CustomerName), term) ||
		strings.Contains(strings.ToLower(r.Location), term)
}

func (c Criteria) matchesStatus(r models.ServiceRequest) bool {
	if c.Status == "" || c.Status == AllStatuses {
		return true
	}
	return string(r.Status) == c.Status
}

func (c Criteria) matchesVehicle(r models.ServiceRequest) bool {
	if c.Vehicle == "" || c.Vehicle == AllVehicles {
		return true
	}
	return r.Vehicle == c.Vehicle
}

// matchesEmployee matches on the creator, falling back to the last editor
// when no creator was recorded. Legacy records created before audit
// stamping only carry last_edited_by.
func (c Criteria) matchesEmployee(r models.ServiceRequest) bool {
	if c.Employee == "" || c.Employee == AllEmployees {
		return true
	}
	if r.CreatedBy == c.Employee {
		return true
	}
	return r.CreatedBy == "" && r.LastEditedBy == c.Employee
}

func (c Criteria) matchesDateRange(r models.ServiceRequest) bool {
	if c.StartDate != "" && r.Date < c.StartDate {
		return false
	}
	if c.EndDate != "" && r.Date > c.EndDate {
		return false
	}
	return true
}
