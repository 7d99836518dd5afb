package requests

import (
	"sort"
	"time"

	"github.com/aquadrill/fieldops/internal/models"
)

// statusRank orders statuses for display: open work first, finished and
// cancelled work last. Statuses not in the table sort after everything
// known, so a new lifecycle state degrades gracefully instead of
// scrambling the list.
var statusRank = map[models.ServiceStatus]int{
	models.StatusPending:    1,
	models.StatusInProgress: 2,
	models.StatusCompleted:  3,
	models.StatusCancelled:  4,
}

const unknownStatusRank = 99

// RankOf returns the sort rank for a status.
func RankOf(status models.ServiceStatus) int {
	if rank, ok := statusRank[status]; ok {
		return rank
	}
	return unknownStatusRank
}

// Sort returns a new slice ordered by status rank, then by date within
// each rank. Pending requests sort oldest-first (the longest-waiting job
// is the most urgent to schedule); every other bucket sorts newest-first
// (recent activity is what operators triage). The sort is stable, so
// requests tied on both keys keep their input order.
func Sort(reqs []models.ServiceRequest) []models.ServiceRequest {
	out := make([]models.ServiceRequest, len(reqs))
	copy(out, reqs)

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := RankOf(out[i].Status), RankOf(out[j].Status)
		if ri != rj {
			return ri < rj
		}
		cmp := compareDates(out[i].Date, out[j].Date)
		if cmp == 0 {
			return false
		}
		if out[i].Status == models.StatusPending {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

// compareDates compares two calendar-date strings chronologically,
// falling back to lexical order when either fails to parse. Dates are
// stored as "2006-01-02" so the two orders agree for well-formed data.
func compareDates(a, b string) int {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)
	if errA == nil && errB == nil {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
