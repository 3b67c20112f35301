// Package mock holds configurable test doubles for the trip optimizer,
// built for integration tests that need offer pools, failures and
// latency on demand.
package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
)

// Provider is a domain.OfferProvider whose behavior is assembled with
// the With* builders: fixed pools, per-leg pools, a forced error, an
// artificial delay, or any mix of them.
type Provider struct {
	name      string
	offers    []domain.Offer
	legOffers map[string][]domain.Offer
	err       error
	delay     time.Duration
	calls     atomic.Int64
}

// NewProvider returns a provider that answers every query with an
// empty pool until configured otherwise.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithOffers sets the pool returned for every leg query. The optimizer
// screens offers against the query, so a single pool may serve several
// legs.
func (p *Provider) WithOffers(offers []domain.Offer) *Provider {
	p.offers = offers
	return p
}

// WithOffersForLeg sets a pool returned only for queries whose label
// matches, e.g. "LHR>HKG". Legs without a dedicated pool fall back to
// the WithOffers pool.
func (p *Provider) WithOffersForLeg(label string, offers []domain.Offer) *Provider {
	if p.legOffers == nil {
		p.legOffers = make(map[string][]domain.Offer)
	}
	p.legOffers[label] = offers
	return p
}

// WithError makes every fetch fail with err.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay makes every fetch wait for d first, for exercising
// timeouts and cancellation.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

func (p *Provider) Name() string {
	return p.name
}

// FetchOffers counts the call, waits out any configured delay while
// honoring ctx, then serves the configured error or pool.
func (p *Provider) FetchOffers(ctx context.Context, query domain.LegQuery) ([]domain.Offer, error) {
	p.calls.Add(1)

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.err != nil {
		return nil, p.err
	}
	if pool, ok := p.legOffers[query.Label()]; ok {
		return pool, nil
	}
	return p.offers, nil
}

// CallCount reports how many times FetchOffers ran. It is safe to read
// while fetches are still in flight.
func (p *Provider) CallCount() int {
	return int(p.calls.Load())
}

var _ domain.OfferProvider = (*Provider)(nil)

// sampleAirlines cycle through generated offer pools.
var sampleAirlines = []string{"Cathay Pacific", "Qantas", "British Airways"}

// SampleOffers returns count one-way offers for the given route and
// date, with all required fields populated and strictly ascending
// prices so the pool survives deduplication intact.
func SampleOffers(provider, origin, destination string, date time.Time, count int) []domain.Offer {
	offers := make([]domain.Offer, count)

	for i := 0; i < count; i++ {
		depart := time.Date(2000, 1, 1, 6+(i*2)%16, 30, 0, 0, time.UTC)
		duration := 400 + i*15
		arrive := depart.Add(time.Duration(duration) * time.Minute)

		offers[i] = domain.Offer{
			Origin:          origin,
			Destination:     destination,
			DepartureDate:   date,
			Price:           250 + float64(i)*25,
			PriceConfidence: domain.PriceExact,
			Airline:         sampleAirlines[i%len(sampleAirlines)],
			DepartureTime:   depart.Format("15:04"),
			ArrivalTime:     arrive.Format("15:04"),
			DurationMinutes: duration,
			Stops:           i % 2,
			Provider:        provider,
		}
	}

	return offers
}

// SampleRoundTripOffers returns count round-trip offers for the given
// route and date pair, priced ascending like SampleOffers.
func SampleRoundTripOffers(provider, origin, destination string, departureDate, returnDate time.Time, count int) []domain.Offer {
	offers := SampleOffers(provider, origin, destination, departureDate, count)

	for i := range offers {
		// Round-trip list prices are "starting from" figures
		offers[i].Price = 420 + float64(i)*30
		offers[i].PriceConfidence = domain.PriceApproximate
		offers[i].Return = &domain.ReturnLeg{
			Date:            returnDate,
			Airline:         offers[i].Airline,
			DepartureTime:   "20:05",
			ArrivalTime:     "07:20",
			DurationMinutes: 735,
			Stops:           0,
		}
	}

	return offers
}
