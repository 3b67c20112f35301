package domain

import (
	"fmt"
	"time"
)

// Defaults applied to optimization requests.
const (
	// DefaultTopN is the number of itineraries returned when unspecified.
	DefaultTopN = 10

	// DefaultFirstStayDays is the default minimum stay at the first stopover.
	DefaultFirstStayDays = 4

	// DefaultSecondStayDays is the default minimum stay at the second stopover.
	DefaultSecondStayDays = 10

	// DefaultCurrency is the display currency when the request leaves it empty.
	DefaultCurrency = "GBP"
)

// Constraints configures the stay rules applied between legs of a trip.
type Constraints struct {
	// MinStayDays is the minimum stay in whole days required at each
	// stopover, ordered to match the topology's stopovers. A stay of
	// exactly the minimum is valid.
	MinStayDays []int `json:"minStayDays"`
}

// Validate checks the constraints against a topology. Misconfiguration
// here is the only condition that aborts a run before any candidate is
// produced, so it wraps ErrInvalidConstraints.
func (c *Constraints) Validate(kind TopologyKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownTopology, string(kind))
	}
	if got, want := len(c.MinStayDays), kind.Stopovers(); got != want {
		return WrapInvalidConstraints("%s expects %d minimum stays, got %d", kind, want, got)
	}
	for i, days := range c.MinStayDays {
		if days < 0 {
			return WrapInvalidConstraints("minimum stay at stopover %d must be non-negative, got %d", i+1, days)
		}
	}
	return nil
}

// DefaultMinStayDays returns the default minimum stays for a stopover count.
func DefaultMinStayDays(stopovers int) []int {
	switch stopovers {
	case 1:
		return []int{DefaultFirstStayDays}
	case 2:
		return []int{DefaultFirstStayDays, DefaultSecondStayDays}
	default:
		return nil
	}
}

// CheckStays evaluates ordered leg-boundary dates against the
// constraints. Every adjacent pair must be strictly ascending (equal
// dates are invalid); each stopover gap must meet its minimum stay,
// inclusive. On success it returns the computed stay days per stopover.
// The check short-circuits on the first chronology violation.
func (c *Constraints) CheckStays(dates []time.Time, stopoverGaps []int) ([]int, bool) {
	if len(dates) < 2 {
		return nil, false
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, false
		}
	}

	stays := make([]int, 0, len(stopoverGaps))
	for i, gap := range stopoverGaps {
		if gap < 0 || gap+1 >= len(dates) {
			return nil, false
		}
		days := daysBetween(dates[gap], dates[gap+1])
		if i < len(c.MinStayDays) && days < c.MinStayDays[i] {
			return nil, false
		}
		stays = append(stays, days)
	}
	return stays, true
}

// TripDays returns the whole-day span of ordered boundary dates, from
// the first departure to the final segment's departure.
func TripDays(dates []time.Time) int {
	if len(dates) < 2 {
		return 0
	}
	return daysBetween(dates[0], dates[len(dates)-1])
}

// TripRequest defines the rules for one optimization run: the trip shape,
// the stay constraints, and how many itineraries to return. Offer pools
// are supplied separately, one per topology slot.
type TripRequest struct {
	// Topology is the trip shape to optimize
	Topology TopologyKind `json:"topology"`

	// Constraints holds the per-stopover minimum stays
	Constraints Constraints `json:"constraints"`

	// TopN is the number of cheapest valid itineraries to return (min 1)
	TopN int `json:"topN"`

	// Currency is the display currency code shared by all offers (e.g., "GBP")
	Currency string `json:"currency,omitempty"`
}

// Validate checks the request invariants.
// Returns a wrapped ErrUnknownTopology, ErrInvalidRequest, or
// ErrInvalidConstraints error if validation fails.
func (r *TripRequest) Validate() error {
	if !r.Topology.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownTopology, string(r.Topology))
	}
	if r.TopN < 1 {
		return WrapInvalidRequest("topN must be at least 1, got %d", r.TopN)
	}
	if r.Currency != "" && len(r.Currency) != 3 {
		return WrapInvalidRequest("currency must be a 3-letter code, got %q", r.Currency)
	}
	return r.Constraints.Validate(r.Topology)
}

// SetDefaults applies default values to empty optional fields. The
// topology must already be set for stay defaults to apply.
func (r *TripRequest) SetDefaults() {
	if r.TopN == 0 {
		r.TopN = DefaultTopN
	}
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	if r.Constraints.MinStayDays == nil && r.Topology.IsValid() {
		r.Constraints.MinStayDays = DefaultMinStayDays(r.Topology.Stopovers())
	}
}

// PlanRequest asks the system to gather offers itself before optimizing:
// a route over candidate airports, candidate dates per slot, and the
// optimization rules to apply to whatever the sources return.
type PlanRequest struct {
	// Trip holds the optimization rules
	Trip TripRequest `json:"trip"`

	// Route fixes the candidate airports per position
	Route Route `json:"route"`

	// Dates lists the candidate dates for each topology slot
	Dates []SlotDates `json:"dates"`
}

// Validate checks the whole plan request.
func (r *PlanRequest) Validate() error {
	if err := r.Trip.Validate(); err != nil {
		return err
	}
	// Query construction re-runs the route and date checks; doing it here
	// surfaces errors before any provider is touched.
	_, err := BuildLegQueries(r.Trip.Topology, r.Route, r.Dates)
	return err
}

// SetDefaults applies default values to the embedded trip rules.
func (r *PlanRequest) SetDefaults() {
	r.Trip.SetDefaults()
}
