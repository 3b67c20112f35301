// Package http provides the HTTP handler layer for the trip optimizer API.
//
// The types in this file exist for documentation only. They restate the
// wire DTOs with per-field descriptions and examples so swag has
// something richer to render than bare struct tags.
package http

// SwaggerTripPlan represents the optimization API response for swagger documentation.
// @Description Ranked itineraries with run metadata
type SwaggerTripPlan struct {
	// Request echoes the optimization rules the run was ranked under
	Request SwaggerTripRules `json:"request"`

	// Metadata contains information about the run execution
	Metadata SwaggerRunMetadata `json:"metadata"`

	// Itineraries contains the cheapest valid itineraries, best first
	Itineraries []SwaggerItinerary `json:"itineraries"`
}

// SwaggerTripRules echoes the optimization rules in the response.
// @Description Optimization rules applied to the run
type SwaggerTripRules struct {
	// Topology is the trip shape that was optimized
	Topology string `json:"topology" example:"double_stopover"`

	// MinStayDays is the per-stopover minimum stay that was enforced
	MinStayDays []int `json:"min_stay_days" example:"4,10"`

	// TopN is the requested result count
	TopN int `json:"top_n" example:"10"`

	// Currency is the display currency shared by all prices
	Currency string `json:"currency" example:"GBP"`
}

// SwaggerRunMetadata contains metadata about an optimization run.
// @Description Metadata about the optimization run
type SwaggerRunMetadata struct {
	// TotalResults is the number of itineraries returned
	TotalResults int `json:"total_results" example:"10"`

	// CombinationsChecked is how many offer combinations were enumerated
	CombinationsChecked int64 `json:"combinations_checked" example:"1728"`

	// ValidItineraries is how many combinations passed all constraints
	ValidItineraries int64 `json:"valid_itineraries" example:"214"`

	// OffersConsidered is the total raw offer count across all legs
	OffersConsidered int `json:"offers_considered" example:"96"`

	// OffersDropped is how many offers were excluded at ingestion
	OffersDropped int `json:"offers_dropped" example:"3"`

	// DuplicatesRemoved is how many duplicate extractions were collapsed
	DuplicatesRemoved int `json:"duplicates_removed" example:"12"`

	// ProvidersQueried is the number of source queries issued (plan flow only)
	ProvidersQueried int `json:"providers_queried" example:"6"`

	// ProvidersSucceeded is the number of queries that returned offers
	ProvidersSucceeded int `json:"providers_succeeded" example:"6"`

	// ProvidersFailed is the number of queries that failed or timed out
	ProvidersFailed int `json:"providers_failed" example:"0"`

	// OptimizeTimeMs is the total run duration in milliseconds
	OptimizeTimeMs int64 `json:"optimize_time_ms" example:"148"`

	// CacheHit indicates whether the plan came from cache
	CacheHit bool `json:"cache_hit" example:"false"`
}

// SwaggerItinerary represents one ranked itinerary.
// @Description One fully specified candidate trip
type SwaggerItinerary struct {
	// Rank is the 1-based position in the result list
	Rank int `json:"rank" example:"1"`

	// Route is the full airport chain in flight order
	Route string `json:"route" example:"LHR>HKG>SYD>LHR"`

	// TotalPrice is the sum of all component fares
	TotalPrice SwaggerPrice `json:"total_price"`

	// PriceConfidence is exact only when every component fare is exact
	PriceConfidence string `json:"price_confidence" example:"exact"`

	// TotalTripDays spans the first departure to the final segment's departure
	TotalTripDays int `json:"total_trip_days" example:"16"`

	// Stays holds the computed stay at each stopover, in stopover order
	Stays []SwaggerStay `json:"stays"`

	// Fares lists the purchased fares, one per topology slot
	Fares []SwaggerFare `json:"fares"`

	// Summary is a one-line human-readable description
	Summary string `json:"summary" example:"LHR>HKG>SYD>LHR, 16 days, £751.98"`
}

// SwaggerStay represents the computed stay at one stopover.
// @Description Stay at one stopover
type SwaggerStay struct {
	// Airport is the stopover airport code
	Airport string `json:"airport" example:"HKG"`

	// Days is the stay length in whole days
	Days int `json:"days" example:"5"`
}

// SwaggerFare describes one purchased fare of an itinerary.
// @Description One purchased fare
type SwaggerFare struct {
	// Slot is the 1-based topology slot the fare fills
	Slot int `json:"slot" example:"1"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin" example:"LHR"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination" example:"HKG"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departure_date" example:"2026-02-05"`

	// Airline is the carrier display string
	Airline string `json:"airline,omitempty" example:"Cathay Pacific"`

	// DepartureTime is the departure clock time in HH:MM
	DepartureTime string `json:"departure_time,omitempty" example:"09:30"`

	// ArrivalTime is the arrival clock time in HH:MM
	ArrivalTime string `json:"arrival_time,omitempty" example:"17:45"`

	// Duration is the segment duration, omitted when unknown
	Duration *SwaggerDuration `json:"duration,omitempty"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops" example:"0"`

	// Price is the fare amount with its display rendering
	Price SwaggerPrice `json:"price"`

	// PriceConfidence marks whether the price is exact or "starting from"
	PriceConfidence string `json:"price_confidence" example:"exact"`

	// Provider identifies which offer source this fare came from
	Provider string `json:"provider,omitempty" example:"farescan"`

	// Return holds the return half for round-trip fares
	Return *SwaggerReturnFare `json:"return,omitempty"`
}

// SwaggerReturnFare describes the return half of a round-trip fare.
// @Description Return half of a round-trip fare
type SwaggerReturnFare struct {
	// Date is the return departure date in YYYY-MM-DD format
	Date string `json:"date" example:"2026-02-21"`

	// Airline is the carrier of the return segment
	Airline string `json:"airline,omitempty" example:"Qantas"`

	// DepartureTime is the return departure clock time in HH:MM
	DepartureTime string `json:"departure_time,omitempty" example:"20:05"`

	// ArrivalTime is the return arrival clock time in HH:MM
	ArrivalTime string `json:"arrival_time,omitempty" example:"07:20"`

	// Duration is the return segment duration, omitted when unknown
	Duration *SwaggerDuration `json:"duration,omitempty"`

	// Stops is the number of intermediate stops on the return segment
	Stops int `json:"stops" example:"0"`
}

// SwaggerDuration contains segment duration information.
// @Description Segment duration
type SwaggerDuration struct {
	// TotalMinutes is the duration in minutes
	TotalMinutes int `json:"total_minutes" example:"735"`

	// Formatted is a human-readable duration string
	Formatted string `json:"formatted" example:"12h 15m"`
}

// SwaggerPrice contains price information.
// @Description Price with display rendering
type SwaggerPrice struct {
	// Amount is the numeric price in the display currency
	Amount float64 `json:"amount" example:"319.99"`

	// Currency is the ISO 4217 code all prices share
	Currency string `json:"currency" example:"GBP"`

	// Formatted is a display string with the currency symbol
	Formatted string `json:"formatted" example:"£319.99"`
}

// SwaggerError is the body every non-2xx reply carries.
// @Description Error reply
type SwaggerError struct {
	// Code is a stable machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message describes the failure for humans
	Message string `json:"message" example:"Request validation failed"`

	// Details maps offending fields to their individual problems
	Details map[string]string `json:"details,omitempty"`
}
