package domain

import (
	"strings"
	"time"
)

// StayRecord describes the computed stay at one stopover.
type StayRecord struct {
	// Airport is the stopover airport code (e.g., "HKG")
	Airport string `json:"airport"`

	// Days is the stay length in whole days
	Days int `json:"days"`
}

// Itinerary is one fully specified candidate trip: one chosen offer per
// topology slot plus derived totals. Itineraries are created during
// ranking and never mutated afterwards.
type Itinerary struct {
	// Topology is the trip shape this itinerary satisfies
	Topology TopologyKind `json:"topology"`

	// Offers is the ordered list of chosen offers, one per slot
	Offers []Offer `json:"offers"`

	// TotalPrice is the sum of all component fares
	TotalPrice float64 `json:"totalPrice"`

	// PriceConfidence is exact only when every component fare is exact
	PriceConfidence PriceConfidence `json:"priceConfidence"`

	// Stays holds the computed stay at each minimum-stay stopover, in
	// stopover order
	Stays []StayRecord `json:"stays"`

	// TotalTripDays spans from the first departure date to the final
	// segment's departure date
	TotalTripDays int `json:"totalTripDays"`
}

// daysBetween counts whole days between two already-normalized dates.
// Ingestion pins every date to midnight UTC, so plain duration division
// is exact here.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// NewItinerary derives the totals for a chosen offer tuple. The stayDays
// slice must come from constraint validation of the same tuple. The
// offers are copied, so callers may reuse their slice.
func NewItinerary(kind TopologyKind, offers []Offer, stayDays []int) (Itinerary, error) {
	boundaries, err := kind.BoundaryDates(offers)
	if err != nil {
		return Itinerary{}, err
	}

	picks := make([]Offer, len(offers))
	copy(picks, offers)

	totalPrice := 0.0
	confidence := PriceExact
	for i := range picks {
		totalPrice += picks[i].Price
		confidence = confidence.Worse(picks[i].Confidence())
	}

	airports := kind.StopoverAirports(picks)
	stays := make([]StayRecord, len(stayDays))
	for i, days := range stayDays {
		stay := StayRecord{Days: days}
		if i < len(airports) {
			stay.Airport = airports[i]
		}
		stays[i] = stay
	}

	return Itinerary{
		Topology:        kind,
		Offers:          picks,
		TotalPrice:      totalPrice,
		PriceConfidence: confidence,
		Stays:           stays,
		TotalTripDays:   daysBetween(boundaries[0], boundaries[len(boundaries)-1]),
	}, nil
}

// Route renders the full airport chain in flight order, e.g.
// "LHR>HKG>SYD>HKG>LHR" for a nested round trip.
func (it *Itinerary) Route() string {
	if len(it.Offers) == 0 {
		return ""
	}

	chain := []string{it.Offers[0].Origin}
	switch it.Topology {
	case TopologyRoundTripSingle:
		chain = append(chain, it.Offers[0].Destination, it.Offers[0].Origin)
	case TopologyRoundTripNested:
		chain = append(chain,
			it.Offers[0].Destination,
			it.Offers[1].Destination,
			it.Offers[1].Origin,
			it.Offers[0].Origin,
		)
	default:
		for i := range it.Offers {
			chain = append(chain, it.Offers[i].Destination)
		}
	}
	return strings.Join(chain, ">")
}
