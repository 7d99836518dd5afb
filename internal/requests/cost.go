package requests

import (
	"github.com/aquadrill/fieldops/internal/models"
)

// TotalCost derives a request's total from its billable line items:
// drilling, primary casing and 10-inch casing, each contributing
// depth times per-unit rate. Missing depths and rates count as zero, so
// a request with no line items legitimately costs nothing. The result
// is clamped at zero to keep bad imported data from producing a
// negative invoice.
func TotalCost(r models.ServiceRequest) float64 {
	total := r.DrillingDepth*r.DrillingRate +
		r.CasingDepth*r.CasingRate +
		r.Casing10Depth*r.Casing10Rate
	if total < 0 {
		return 0
	}
	return total
}
