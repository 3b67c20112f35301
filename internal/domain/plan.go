package domain

// TripPlan represents the ranked output of one optimization run.
type TripPlan struct {
	// Request echoes the rules the run was optimized under
	Request TripRequestResponse `json:"request"`

	// Metadata contains information about the run execution
	Metadata PlanMetadata `json:"metadata"`

	// Itineraries contains the cheapest valid itineraries, best first
	Itineraries []Itinerary `json:"itineraries"`
}

// TripRequestResponse echoes the optimization rules in the response.
type TripRequestResponse struct {
	// Topology is the trip shape that was optimized
	Topology TopologyKind `json:"topology"`

	// MinStayDays is the per-stopover minimum stay that was enforced
	MinStayDays []int `json:"min_stay_days"`

	// TopN is the requested result count
	TopN int `json:"top_n"`

	// Currency is the display currency shared by all prices
	Currency string `json:"currency"`
}

// PlanMetadata contains metadata about an optimization run.
type PlanMetadata struct {
	// TotalResults is the number of itineraries returned
	TotalResults int `json:"total_results"`

	// CombinationsChecked is how many offer combinations were enumerated
	CombinationsChecked int64 `json:"combinations_checked"`

	// ValidItineraries is how many combinations passed all constraints
	ValidItineraries int64 `json:"valid_itineraries"`

	// OffersConsidered is the total raw offer count across all legs
	OffersConsidered int `json:"offers_considered"`

	// OffersDropped is how many offers were excluded at ingestion
	OffersDropped int `json:"offers_dropped"`

	// DuplicatesRemoved is how many duplicate extractions were collapsed
	DuplicatesRemoved int `json:"duplicates_removed"`

	// ProvidersQueried is the number of provider queries issued across
	// all legs (plan flow only)
	ProvidersQueried int `json:"providers_queried"`

	// ProvidersSucceeded is the number of queries that returned offers
	ProvidersSucceeded int `json:"providers_succeeded"`

	// ProvidersFailed is the number of queries that failed or timed out
	ProvidersFailed int `json:"providers_failed"`

	// OptimizeTimeMs is the total run duration in milliseconds
	OptimizeTimeMs int64 `json:"optimize_time_ms"`

	// CacheHit indicates whether the plan came from cache
	CacheHit bool `json:"cache_hit"`
}

// NewTripPlan creates a TripPlan from the request, ranked itineraries,
// and run metadata.
func NewTripPlan(req *TripRequest, itineraries []Itinerary, metadata PlanMetadata) TripPlan {
	if itineraries == nil {
		itineraries = []Itinerary{}
	}
	metadata.TotalResults = len(itineraries)

	return TripPlan{
		Request: TripRequestResponse{
			Topology:    req.Topology,
			MinStayDays: req.Constraints.MinStayDays,
			TopN:        req.TopN,
			Currency:    req.Currency,
		},
		Metadata:    metadata,
		Itineraries: itineraries,
	}
}

// ProviderResult represents one offer source's response to one leg query.
// Used internally when gathering leg pools from providers.
type ProviderResult struct {
	// Provider is the name of the offer source
	Provider string

	// Offers contains the offers returned by this source
	Offers []Offer

	// Err is set if the source query failed
	Err error

	// DurationMs is how long the source query took
	DurationMs int64
}

// IsSuccess returns true if the source query succeeded.
func (pr *ProviderResult) IsSuccess() bool {
	return pr.Err == nil
}
