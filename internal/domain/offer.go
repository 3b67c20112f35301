// Package domain contains the core business entities and rules for the trip deal optimizer.
// These entities are source-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// PriceConfidence describes how precise an offer's price is.
// Some sources only expose a "starting from" figure for round trips, and
// the optimizer carries that uncertainty through to its output instead of
// treating all prices as equally precise.
type PriceConfidence string

const (
	// PriceExact means the price is the full bookable fare.
	PriceExact PriceConfidence = "exact"

	// PriceApproximate means the price is a "starting from" figure and the
	// real fare may be higher.
	PriceApproximate PriceConfidence = "approximate"
)

// IsValid returns true if the confidence level is a known value.
func (p PriceConfidence) IsValid() bool {
	return p == PriceExact || p == PriceApproximate
}

// Worse returns the lower of two confidence levels. Any approximate
// component makes the whole itinerary approximate.
func (p PriceConfidence) Worse(other PriceConfidence) PriceConfidence {
	if p == PriceApproximate || other == PriceApproximate {
		return PriceApproximate
	}
	return PriceExact
}

// Offer represents a single bookable fare for one slot of an itinerary.
// Offers are immutable once ingested; the optimizer never mutates them.
type Offer struct {
	// Origin is the IATA code of the departure airport (e.g., "LHR")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "HKG")
	Destination string `json:"destination"`

	// DepartureDate is the calendar date of departure, normalized to
	// midnight UTC. Itinerary ordering compares these naive dates only.
	DepartureDate time.Time `json:"departureDate"`

	// Price is the fare amount. All offers in a run share one currency.
	Price float64 `json:"price"`

	// PriceConfidence marks whether Price is exact or a "starting from" figure
	PriceConfidence PriceConfidence `json:"priceConfidence,omitempty"`

	// Airline is the carrier display string ("" if extraction failed)
	Airline string `json:"airline,omitempty"`

	// DepartureTime is the clock time of departure in HH:MM ("" if unknown)
	DepartureTime string `json:"departureTime,omitempty"`

	// ArrivalTime is the clock time of arrival in HH:MM ("" if unknown)
	ArrivalTime string `json:"arrivalTime,omitempty"`

	// DurationMinutes is the segment duration in minutes (0 if unknown)
	DurationMinutes int `json:"durationMinutes,omitempty"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`

	// Provider identifies which offer source this fare came from
	Provider string `json:"provider,omitempty"`

	// Return holds the return leg for round-trip fares (nil = one-way)
	Return *ReturnLeg `json:"return,omitempty"`
}

// ReturnLeg holds the return half of a round-trip fare. Sources that only
// expose a "starting from" price often leave the schedule fields empty.
type ReturnLeg struct {
	// Date is the calendar date of the return departure, midnight UTC
	Date time.Time `json:"date"`

	// Airline is the carrier of the return segment ("" if unknown)
	Airline string `json:"airline,omitempty"`

	// DepartureTime is the return departure clock time in HH:MM ("" if unknown)
	DepartureTime string `json:"departureTime,omitempty"`

	// ArrivalTime is the return arrival clock time in HH:MM ("" if unknown)
	ArrivalTime string `json:"arrivalTime,omitempty"`

	// DurationMinutes is the return segment duration in minutes (0 if unknown)
	DurationMinutes int `json:"durationMinutes,omitempty"`

	// Stops is the number of intermediate stops on the return segment
	Stops int `json:"stops"`
}

// LegOfferSet is the pool of candidate offers for one slot of the trip
// topology. Insertion order is preserved so enumeration stays deterministic.
type LegOfferSet struct {
	// Label describes the slot for logs and metadata (e.g., "LHR>HKG")
	Label string `json:"label,omitempty"`

	// Offers is the candidate pool for this slot
	Offers []Offer `json:"offers"`
}

// iataCodeRegex matches valid IATA airport codes (3 uppercase letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// clockTimeRegex matches HH:MM clock times.
var clockTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsRoundTrip returns true if the offer carries a return leg.
func (o *Offer) IsRoundTrip() bool {
	return o.Return != nil
}

// Confidence returns the offer's price confidence, defaulting unset
// values to exact.
func (o *Offer) Confidence() PriceConfidence {
	if o.PriceConfidence == PriceApproximate {
		return PriceApproximate
	}
	return PriceExact
}

// Validate checks the offer's structural invariants. Offers failing
// validation are dropped at ingestion rather than failing the whole run,
// because partial data is expected from best-effort extraction.
func (o *Offer) Validate() error {
	if !iataCodeRegex.MatchString(o.Origin) {
		return fmt.Errorf("origin must be a 3-letter IATA code, got %q", o.Origin)
	}
	if !iataCodeRegex.MatchString(o.Destination) {
		return fmt.Errorf("destination must be a 3-letter IATA code, got %q", o.Destination)
	}
	if o.Origin == o.Destination {
		return fmt.Errorf("origin and destination must differ, both %q", o.Origin)
	}
	if o.DepartureDate.IsZero() {
		return fmt.Errorf("departure date is required")
	}
	if math.IsNaN(o.Price) || math.IsInf(o.Price, 0) {
		return fmt.Errorf("price is not a finite number")
	}
	if o.Price < 0 {
		return fmt.Errorf("price must be non-negative, got %.2f", o.Price)
	}
	if o.PriceConfidence != "" && !o.PriceConfidence.IsValid() {
		return fmt.Errorf("unknown price confidence %q", o.PriceConfidence)
	}
	if o.DepartureTime != "" && !clockTimeRegex.MatchString(o.DepartureTime) {
		return fmt.Errorf("departure time must be HH:MM, got %q", o.DepartureTime)
	}
	if o.ArrivalTime != "" && !clockTimeRegex.MatchString(o.ArrivalTime) {
		return fmt.Errorf("arrival time must be HH:MM, got %q", o.ArrivalTime)
	}
	if o.DurationMinutes < 0 {
		return fmt.Errorf("duration must be non-negative, got %d", o.DurationMinutes)
	}
	if o.Stops < 0 {
		return fmt.Errorf("stops must be non-negative, got %d", o.Stops)
	}
	if o.Return != nil {
		if o.Return.Date.IsZero() {
			return fmt.Errorf("return date is required on round-trip offers")
		}
		if !o.Return.Date.After(o.DepartureDate) {
			return fmt.Errorf("return date %s must be after outbound date %s",
				o.Return.Date.Format("2006-01-02"), o.DepartureDate.Format("2006-01-02"))
		}
		if o.Return.DurationMinutes < 0 {
			return fmt.Errorf("return duration must be non-negative, got %d", o.Return.DurationMinutes)
		}
		if o.Return.Stops < 0 {
			return fmt.Errorf("return stops must be non-negative, got %d", o.Return.Stops)
		}
	}
	return nil
}

// normalizeDate pins a time to midnight UTC of its calendar date.
// Kept local so the domain stays free of infrastructure imports.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Normalized returns a copy of the offer with all dates pinned to
// midnight UTC, so day arithmetic downstream is exact.
func (o Offer) Normalized() Offer {
	o.DepartureDate = normalizeDate(o.DepartureDate)
	if o.Return != nil {
		ret := *o.Return
		ret.Date = normalizeDate(ret.Date)
		o.Return = &ret
	}
	return o
}

// TotalDurationMinutes returns the known flying time across both halves
// of the offer. Unknown segment durations count as zero.
func (o *Offer) TotalDurationMinutes() int {
	total := o.DurationMinutes
	if o.Return != nil {
		total += o.Return.DurationMinutes
	}
	return total
}

// FormatDuration renders minutes as a compact "2h 30m" style string.
// Zero minutes means the duration is unknown.
func FormatDuration(totalMinutes int) string {
	if totalMinutes <= 0 {
		return ""
	}
	hours := totalMinutes / 60
	mins := totalMinutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
