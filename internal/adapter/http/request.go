// Package http provides the HTTP handler layer for the trip optimizer API.
// This file declares the request bodies and the field checks they pass
// through before anything reaches the domain.
package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/timeutil"
)

// TripRulesRequest carries the optimization rules shared by both request
// bodies: the trip shape, stay constraints, and result sizing.
type TripRulesRequest struct {
	// Topology is the trip shape to optimize (e.g., "single_stopover")
	Topology string `json:"topology"`

	// MinStayDays is the minimum stay in whole days at each stopover,
	// in stopover order (optional, defaults depend on the topology)
	MinStayDays []int `json:"minStayDays,omitempty"`

	// TopN is the number of itineraries to return (0 selects the default)
	TopN int `json:"topN,omitempty"`

	// Currency is the 3-letter display currency code (optional, default GBP)
	Currency string `json:"currency,omitempty"`
}

// OptimizeTripRequest represents the request body for trip optimization
// over caller-supplied offer pools.
type OptimizeTripRequest struct {
	TripRulesRequest

	// Legs supplies one offer pool per topology slot, in slot order
	Legs []LegDTO `json:"legs"`
}

// PlanTripRequest represents the request body for provider-backed trip
// planning. The server gathers offers from its registered sources before
// optimizing.
type PlanTripRequest struct {
	TripRulesRequest

	// Route fixes the candidate airports per route position
	Route RouteDTO `json:"route"`

	// Dates lists the candidate date specs for each topology slot
	Dates []SlotDatesDTO `json:"dates"`
}

// LegDTO is one slot's offer pool as supplied by the caller.
type LegDTO struct {
	// Label names the pool for logs and metadata (e.g., "LHR>HKG")
	Label string `json:"label,omitempty"`

	// Offers is the raw offer pool for this slot
	Offers []OfferDTO `json:"offers"`
}

// OfferDTO is one fare as supplied by the caller. Dates are YYYY-MM-DD
// strings and clock times are HH:MM. Offers that fail the domain checks
// are dropped during ingestion and counted in the response metadata.
type OfferDTO struct {
	// Origin is the IATA code of the departure airport (e.g., "LHR")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "HKG")
	Destination string `json:"destination"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Price is the fare amount in the request currency
	Price float64 `json:"price"`

	// PriceConfidence is "exact" or "approximate" (optional, default exact)
	PriceConfidence string `json:"priceConfidence,omitempty"`

	// Airline is the carrier display string (optional)
	Airline string `json:"airline,omitempty"`

	// DepartureTime is the departure clock time in HH:MM (optional)
	DepartureTime string `json:"departureTime,omitempty"`

	// ArrivalTime is the arrival clock time in HH:MM (optional)
	ArrivalTime string `json:"arrivalTime,omitempty"`

	// DurationMinutes is the segment duration in minutes (optional)
	DurationMinutes int `json:"durationMinutes,omitempty"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops,omitempty"`

	// Provider identifies which offer source this fare came from (optional)
	Provider string `json:"provider,omitempty"`

	// Return holds the return leg for round-trip fares (omit for one-way)
	Return *ReturnLegDTO `json:"return,omitempty"`
}

// ReturnLegDTO is the return half of a round-trip fare. Sources that only
// list a "starting from" price often leave the schedule fields empty.
type ReturnLegDTO struct {
	// Date is the return departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// Airline is the carrier of the return segment (optional)
	Airline string `json:"airline,omitempty"`

	// DepartureTime is the return departure clock time in HH:MM (optional)
	DepartureTime string `json:"departureTime,omitempty"`

	// ArrivalTime is the return arrival clock time in HH:MM (optional)
	ArrivalTime string `json:"arrivalTime,omitempty"`

	// DurationMinutes is the return segment duration in minutes (optional)
	DurationMinutes int `json:"durationMinutes,omitempty"`

	// Stops is the number of intermediate stops on the return segment
	Stops int `json:"stops,omitempty"`
}

// RouteDTO lists the candidate airports per route position. Each position
// may name alternates, e.g. LHR and LGW as interchangeable home airports.
type RouteDTO struct {
	// Origins lists candidate home airports (e.g., ["LHR", "LGW"])
	Origins []string `json:"origins"`

	// Stopover1 lists candidate first-stopover airports
	Stopover1 []string `json:"stopover1"`

	// Stopover2 lists candidate second-stopover airports
	// (two-stopover topologies only)
	Stopover2 []string `json:"stopover2,omitempty"`
}

// SlotDatesDTO carries the candidate date specs for one topology slot.
// A spec is either a plain date ("2026-02-05") or an inclusive range
// ("2026-02-05:2026-02-10").
type SlotDatesDTO struct {
	// DepartureDates lists candidate departure date specs
	DepartureDates []string `json:"departureDates"`

	// ReturnDates lists candidate return date specs (round-trip slots only)
	ReturnDates []string `json:"returnDates,omitempty"`
}

var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Trip shapes the service knows how to expand into leg slots.
var validTopologies = map[string]bool{
	"single_stopover":   true,
	"double_stopover":   true,
	"round_the_world":   true,
	"round_trip_single": true,
	"round_trip_nested": true,
}

// ValidationError ties one problem to the request field that caused it.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every problem found in a request body so the
// client sees the full list in a single round trip rather than one field
// per attempt.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error reports the first recorded message. The complete set travels in
// the details map of the error reply.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add records a problem with the named field.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors reports whether anything has been recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap flattens the list into field to message pairs for the error reply.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the rules and leg pools of an optimize request.
// Per-offer data problems are not request errors: offers that fail the
// domain checks are screened out during ingestion instead.
func (r *OptimizeTripRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateRules(errs)
	r.validateLegs(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate checks the rules, route and date specs of a plan request.
// Cross-field rules that depend on the topology shape (slot counts, which
// slots take return dates) are enforced by the domain layer.
func (r *PlanTripRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateRules(errs)
	r.validateRoute(errs)
	r.validateDates(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *TripRulesRequest) validateRules(errs *ValidationErrors) {
	r.validateTopology(errs)
	r.validateMinStayDays(errs)
	r.validateTopN(errs)
	r.validateCurrency(errs)
}

func (r *TripRulesRequest) validateTopology(errs *ValidationErrors) {
	if r.Topology == "" {
		errs.Add("topology", "topology is required")
		return
	}

	if !validTopologies[r.Topology] {
		errs.Add("topology", "topology must be one of: single_stopover, double_stopover, round_the_world, round_trip_single, round_trip_nested")
	}
}

func (r *TripRulesRequest) validateMinStayDays(errs *ValidationErrors) {
	for i, days := range r.MinStayDays {
		if days < 0 {
			errs.Add(fmt.Sprintf("minStayDays[%d]", i),
				"minimum stay must be a non-negative number of days")
		}
	}
}

func (r *TripRulesRequest) validateTopN(errs *ValidationErrors) {
	if r.TopN < 0 {
		errs.Add("topN", "topN must not be negative")
	}
}

func (r *TripRulesRequest) validateCurrency(errs *ValidationErrors) {
	if r.Currency == "" {
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if len(currency) != 3 {
		errs.Add("currency", "currency must be a 3-letter ISO code")
		return
	}
	r.Currency = currency // store the canonical form
}

func (r *OptimizeTripRequest) validateLegs(errs *ValidationErrors) {
	if len(r.Legs) == 0 {
		errs.Add("legs", "at least one leg offer pool is required")
	}
}

func (r *PlanTripRequest) validateRoute(errs *ValidationErrors) {
	if len(r.Route.Origins) == 0 {
		errs.Add("route.origins", "at least one origin airport is required")
	}
	if len(r.Route.Stopover1) == 0 {
		errs.Add("route.stopover1", "at least one stopover1 airport is required")
	}

	validateAirportCodes(errs, "route.origins", r.Route.Origins)
	validateAirportCodes(errs, "route.stopover1", r.Route.Stopover1)
	validateAirportCodes(errs, "route.stopover2", r.Route.Stopover2)
}

func (r *PlanTripRequest) validateDates(errs *ValidationErrors) {
	if len(r.Dates) == 0 {
		errs.Add("dates", "candidate dates are required for every slot")
		return
	}

	for i := range r.Dates {
		if len(r.Dates[i].DepartureDates) == 0 {
			errs.Add(fmt.Sprintf("dates[%d].departureDates", i),
				"at least one departure date is required")
		}
		validateDateSpecs(errs, fmt.Sprintf("dates[%d].departureDates", i), r.Dates[i].DepartureDates)
		validateDateSpecs(errs, fmt.Sprintf("dates[%d].returnDates", i), r.Dates[i].ReturnDates)
	}
}

// validateAirportCodes checks each code in a route position, normalizing
// valid codes to uppercase in place.
func validateAirportCodes(errs *ValidationErrors, field string, codes []string) {
	for i, code := range codes {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if !airportCodePattern.MatchString(normalized) {
			errs.Add(fmt.Sprintf("%s[%d]", field, i),
				"airport code must be a 3-letter IATA code")
			continue
		}
		codes[i] = normalized
	}
}

// validateDateSpecs checks that each spec is a parseable date or an
// ordered inclusive date range.
func validateDateSpecs(errs *ValidationErrors, field string, specs []string) {
	for i, spec := range specs {
		if _, err := timeutil.ExpandDateSpec(spec); err != nil {
			errs.Add(fmt.Sprintf("%s[%d]", field, i),
				"must be a date (YYYY-MM-DD) or an ordered date range (YYYY-MM-DD:YYYY-MM-DD)")
		}
	}
}
