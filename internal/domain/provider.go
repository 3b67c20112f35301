package domain

import (
	"context"
	"strings"
	"time"
)

// LegQuery describes the offers wanted for one slot of the trip topology.
// Multiple airports and dates are allowed per side; the pool for the slot
// is the union over all of them.
type LegQuery struct {
	// Origins lists acceptable departure airports for this slot
	Origins []string `json:"origins"`

	// Destinations lists acceptable arrival airports for this slot
	Destinations []string `json:"destinations"`

	// DepartureDates lists acceptable departure dates
	DepartureDates []time.Time `json:"departureDates"`

	// ReturnDates lists acceptable return dates (round-trip slots only)
	ReturnDates []time.Time `json:"returnDates,omitempty"`
}

// RoundTrip returns true if this slot wants round-trip fares.
func (q *LegQuery) RoundTrip() bool {
	return len(q.ReturnDates) > 0
}

// Label renders a compact description of the slot for logs and leg pools,
// e.g. "LHR,LGW>HKG".
func (q *LegQuery) Label() string {
	return strings.Join(q.Origins, ",") + ">" + strings.Join(q.Destinations, ",")
}

// Matches reports whether an offer satisfies this query. File-backed
// sources use it to filter their dumps; the plan flow uses it to screen
// fetched offers into the right slot.
func (q *LegQuery) Matches(o *Offer) bool {
	if !containsString(q.Origins, o.Origin) {
		return false
	}
	if !containsString(q.Destinations, o.Destination) {
		return false
	}
	if !containsDate(q.DepartureDates, o.DepartureDate) {
		return false
	}
	if q.RoundTrip() {
		return o.Return != nil && containsDate(q.ReturnDates, o.Return.Date)
	}
	return o.Return == nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsDate(haystack []time.Time, needle time.Time) bool {
	for _, d := range haystack {
		if d.Equal(needle) {
			return true
		}
	}
	return false
}

// OfferProvider is the interface all offer sources must implement.
// A source may be a scraped fare dump on disk, a cached snapshot, or a
// live upstream; the optimizer does not care.
type OfferProvider interface {
	// Name returns the unique name of this source for logs and metadata.
	Name() string

	// FetchOffers returns the offers matching a leg query.
	// Implementations must respect context cancellation and timeouts.
	FetchOffers(ctx context.Context, query LegQuery) ([]Offer, error)
}

// ProviderRegistry holds the registered offer sources. Registration order
// is preserved so leg pools assemble deterministically run to run.
type ProviderRegistry struct {
	providers map[string]OfferProvider
	order     []string
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]OfferProvider),
	}
}

// Register adds a provider, replacing any existing one with the same name
// while keeping its original position. Nil providers are ignored.
func (r *ProviderRegistry) Register(p OfferProvider) {
	if p == nil {
		return
	}
	name := p.Name()
	if _, exists := r.providers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

// Get returns the provider with the given name, or nil if not registered.
func (r *ProviderRegistry) Get(name string) OfferProvider {
	return r.providers[name]
}

// GetAll returns all providers in registration order.
func (r *ProviderRegistry) GetAll() []OfferProvider {
	all := make([]OfferProvider, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.providers[name])
	}
	return all
}

// Names returns the registered provider names in registration order.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Route fixes the airports of a trip shape. Each position may list
// alternates (e.g. LHR and LGW as interchangeable home airports).
type Route struct {
	// Origins lists candidate home airports
	Origins []string `json:"origins"`

	// Stopover1 lists candidate first-stopover airports
	Stopover1 []string `json:"stopover1"`

	// Stopover2 lists candidate second-stopover airports, required only
	// by the two-stopover shapes
	Stopover2 []string `json:"stopover2,omitempty"`
}

// Validate checks the route against a topology's airport requirements.
func (r *Route) Validate(kind TopologyKind) error {
	if !kind.IsValid() {
		return ErrUnknownTopology
	}
	if len(r.Origins) == 0 {
		return WrapInvalidRequest("route needs at least one origin airport")
	}
	if len(r.Stopover1) == 0 {
		return WrapInvalidRequest("route needs at least one stopover1 airport")
	}
	if kind.Stopovers() == 2 && len(r.Stopover2) == 0 {
		return WrapInvalidRequest("%s needs at least one stopover2 airport", kind)
	}
	if kind.Stopovers() == 1 && len(r.Stopover2) > 0 {
		return WrapInvalidRequest("%s does not use stopover2 airports", kind)
	}
	return nil
}

// SlotDates carries the candidate dates for one topology slot.
type SlotDates struct {
	// DepartureDates lists candidate dates for the slot's outbound segment
	DepartureDates []time.Time `json:"departureDates"`

	// ReturnDates lists candidate return dates (round-trip slots only)
	ReturnDates []time.Time `json:"returnDates,omitempty"`
}

// BuildLegQueries expands a route and per-slot dates into one LegQuery
// per topology slot, wiring each slot's endpoints from the route.
func BuildLegQueries(kind TopologyKind, route Route, dates []SlotDates) ([]LegQuery, error) {
	if err := route.Validate(kind); err != nil {
		return nil, err
	}
	if len(dates) != kind.Slots() {
		return nil, WrapInvalidRequest("%s expects dates for %d slots, got %d", kind, kind.Slots(), len(dates))
	}

	endpoints := slotEndpoints(kind, route)
	queries := make([]LegQuery, kind.Slots())
	for i := range queries {
		if len(dates[i].DepartureDates) == 0 {
			return nil, WrapInvalidRequest("slot %d needs at least one departure date", i+1)
		}
		wantReturns := kind.RequiresRoundTrip()
		if wantReturns && len(dates[i].ReturnDates) == 0 {
			return nil, WrapInvalidRequest("slot %d needs at least one return date", i+1)
		}
		if !wantReturns && len(dates[i].ReturnDates) > 0 {
			return nil, WrapInvalidRequest("slot %d is one-way and takes no return dates", i+1)
		}

		queries[i] = LegQuery{
			Origins:        endpoints[i][0],
			Destinations:   endpoints[i][1],
			DepartureDates: dates[i].DepartureDates,
			ReturnDates:    dates[i].ReturnDates,
		}
	}
	return queries, nil
}

// slotEndpoints maps each slot of a kind to its (origins, destinations)
// airport lists.
func slotEndpoints(kind TopologyKind, route Route) [][2][]string {
	switch kind {
	case TopologySingleStopover:
		return [][2][]string{
			{route.Origins, route.Stopover1},
			{route.Stopover1, route.Origins},
		}
	case TopologyDoubleStopover:
		return [][2][]string{
			{route.Origins, route.Stopover1},
			{route.Stopover1, route.Stopover2},
			{route.Stopover2, route.Origins},
		}
	case TopologyRoundTheWorld:
		return [][2][]string{
			{route.Origins, route.Stopover1},
			{route.Stopover1, route.Stopover2},
			{route.Stopover2, route.Stopover1},
			{route.Stopover1, route.Origins},
		}
	case TopologyRoundTripSingle:
		return [][2][]string{
			{route.Origins, route.Stopover1},
		}
	case TopologyRoundTripNested:
		return [][2][]string{
			{route.Origins, route.Stopover1},
			{route.Stopover1, route.Stopover2},
		}
	}
	return nil
}
