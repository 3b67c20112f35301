package http

import (
	"fmt"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/timeutil"
)

// TripPlanDTO is the wire form of a ranked plan. Field names are
// snake_case on the wire and stay stable for API clients.
type TripPlanDTO struct {
	Request     TripRulesDTO   `json:"request"`
	Metadata    MetadataDTO    `json:"metadata"`
	Itineraries []ItineraryDTO `json:"itineraries"`
}

// TripRulesDTO echoes the optimization rules the run was ranked under.
type TripRulesDTO struct {
	Topology    string `json:"topology"`
	MinStayDays []int  `json:"min_stay_days"`
	TopN        int    `json:"top_n"`
	Currency    string `json:"currency"`
}

// MetadataDTO contains metadata about the optimization run.
type MetadataDTO struct {
	TotalResults        int   `json:"total_results"`
	CombinationsChecked int64 `json:"combinations_checked"`
	ValidItineraries    int64 `json:"valid_itineraries"`
	OffersConsidered    int   `json:"offers_considered"`
	OffersDropped       int   `json:"offers_dropped"`
	DuplicatesRemoved   int   `json:"duplicates_removed"`
	ProvidersQueried    int   `json:"providers_queried"`
	ProvidersSucceeded  int   `json:"providers_succeeded"`
	ProvidersFailed     int   `json:"providers_failed"`
	OptimizeTimeMs      int64 `json:"optimize_time_ms"`
	CacheHit            bool  `json:"cache_hit"`
}

// ItineraryDTO is the data transfer object for one ranked itinerary.
type ItineraryDTO struct {
	Rank            int       `json:"rank"`
	Route           string    `json:"route"`
	TotalPrice      PriceDTO  `json:"total_price"`
	PriceConfidence string    `json:"price_confidence"`
	TotalTripDays   int       `json:"total_trip_days"`
	Stays           []StayDTO `json:"stays"`
	Fares           []FareDTO `json:"fares"`
	Summary         string    `json:"summary"`
}

// StayDTO represents the computed stay at one stopover.
type StayDTO struct {
	Airport string `json:"airport"`
	Days    int    `json:"days"`
}

// FareDTO describes one purchased fare of an itinerary. Round-trip fares
// carry their return half inline.
type FareDTO struct {
	Slot            int            `json:"slot"`
	Origin          string         `json:"origin"`
	Destination     string         `json:"destination"`
	DepartureDate   string         `json:"departure_date"`
	Airline         string         `json:"airline,omitempty"`
	DepartureTime   string         `json:"departure_time,omitempty"`
	ArrivalTime     string         `json:"arrival_time,omitempty"`
	Duration        *DurationDTO   `json:"duration,omitempty"`
	Stops           int            `json:"stops"`
	Price           PriceDTO       `json:"price"`
	PriceConfidence string         `json:"price_confidence"`
	Provider        string         `json:"provider,omitempty"`
	Return          *ReturnFareDTO `json:"return,omitempty"`
}

// ReturnFareDTO describes the return half of a round-trip fare.
type ReturnFareDTO struct {
	Date          string       `json:"date"`
	Airline       string       `json:"airline,omitempty"`
	DepartureTime string       `json:"departure_time,omitempty"`
	ArrivalTime   string       `json:"arrival_time,omitempty"`
	Duration      *DurationDTO `json:"duration,omitempty"`
	Stops         int          `json:"stops"`
}

// DurationDTO represents a segment duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// PriceDTO represents a price with its display rendering.
type PriceDTO struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

// ToTripPlanDTO converts a domain TripPlan to a TripPlanDTO.
func ToTripPlanDTO(plan *domain.TripPlan) *TripPlanDTO {
	if plan == nil {
		return nil
	}

	dto := &TripPlanDTO{
		Request: TripRulesDTO{
			Topology:    string(plan.Request.Topology),
			MinStayDays: plan.Request.MinStayDays,
			TopN:        plan.Request.TopN,
			Currency:    plan.Request.Currency,
		},
		Metadata: MetadataDTO{
			TotalResults:        plan.Metadata.TotalResults,
			CombinationsChecked: plan.Metadata.CombinationsChecked,
			ValidItineraries:    plan.Metadata.ValidItineraries,
			OffersConsidered:    plan.Metadata.OffersConsidered,
			OffersDropped:       plan.Metadata.OffersDropped,
			DuplicatesRemoved:   plan.Metadata.DuplicatesRemoved,
			ProvidersQueried:    plan.Metadata.ProvidersQueried,
			ProvidersSucceeded:  plan.Metadata.ProvidersSucceeded,
			ProvidersFailed:     plan.Metadata.ProvidersFailed,
			OptimizeTimeMs:      plan.Metadata.OptimizeTimeMs,
			CacheHit:            plan.Metadata.CacheHit,
		},
		Itineraries: make([]ItineraryDTO, len(plan.Itineraries)),
	}

	for i := range plan.Itineraries {
		dto.Itineraries[i] = ToItineraryDTO(&plan.Itineraries[i], i+1, plan.Request.Currency)
	}

	return dto
}

// ToItineraryDTO converts a domain Itinerary to an ItineraryDTO. Rank is
// the 1-based position in the result list.
func ToItineraryDTO(it *domain.Itinerary, rank int, currency string) ItineraryDTO {
	dto := ItineraryDTO{
		Rank:            rank,
		Route:           it.Route(),
		TotalPrice:      toPriceDTO(it.TotalPrice, currency),
		PriceConfidence: string(it.PriceConfidence),
		TotalTripDays:   it.TotalTripDays,
		Stays:           make([]StayDTO, len(it.Stays)),
		Fares:           make([]FareDTO, len(it.Offers)),
		Summary:         summarizeItinerary(it, currency),
	}

	for i, stay := range it.Stays {
		dto.Stays[i] = StayDTO{
			Airport: stay.Airport,
			Days:    stay.Days,
		}
	}

	for i := range it.Offers {
		dto.Fares[i] = ToFareDTO(&it.Offers[i], i+1, currency)
	}

	return dto
}

// ToFareDTO converts a domain Offer to a FareDTO. Slot is the 1-based
// topology slot the fare fills.
func ToFareDTO(o *domain.Offer, slot int, currency string) FareDTO {
	dto := FareDTO{
		Slot:            slot,
		Origin:          o.Origin,
		Destination:     o.Destination,
		DepartureDate:   timeutil.FormatDate(o.DepartureDate),
		Airline:         o.Airline,
		DepartureTime:   o.DepartureTime,
		ArrivalTime:     o.ArrivalTime,
		Duration:        toDurationDTO(o.DurationMinutes),
		Stops:           o.Stops,
		Price:           toPriceDTO(o.Price, currency),
		PriceConfidence: string(o.Confidence()),
		Provider:        o.Provider,
	}

	if o.Return != nil {
		dto.Return = &ReturnFareDTO{
			Date:          timeutil.FormatDate(o.Return.Date),
			Airline:       o.Return.Airline,
			DepartureTime: o.Return.DepartureTime,
			ArrivalTime:   o.Return.ArrivalTime,
			Duration:      toDurationDTO(o.Return.DurationMinutes),
			Stops:         o.Return.Stops,
		}
	}

	return dto
}

// toDurationDTO builds a DurationDTO, treating zero minutes as unknown.
func toDurationDTO(minutes int) *DurationDTO {
	if minutes <= 0 {
		return nil
	}
	return &DurationDTO{
		TotalMinutes: minutes,
		Formatted:    domain.FormatDuration(minutes),
	}
}

// toPriceDTO builds a PriceDTO with its display rendering.
func toPriceDTO(amount float64, currency string) PriceDTO {
	return PriceDTO{
		Amount:    amount,
		Currency:  currency,
		Formatted: formatPrice(amount, currency),
	}
}

// currencySymbols maps common display currencies to their symbol.
var currencySymbols = map[string]string{
	"GBP": "£",
	"EUR": "€",
	"USD": "$",
}

// formatPrice renders an amount with its currency symbol, falling back to
// the ISO code for currencies without a common one.
func formatPrice(amount float64, currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return fmt.Sprintf("%s%.2f", symbol, amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// summarizeItinerary renders a one-line description of an itinerary,
// e.g. "LHR>HKG>SYD>HKG>LHR, 24 days, £751.98 (starting from)".
func summarizeItinerary(it *domain.Itinerary, currency string) string {
	s := fmt.Sprintf("%s, %d days, %s", it.Route(), it.TotalTripDays, formatPrice(it.TotalPrice, currency))
	if it.PriceConfidence == domain.PriceApproximate {
		s += " (starting from)"
	}
	return s
}
