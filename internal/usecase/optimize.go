package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/timeutil"
)

// TripOptimizeUseCase defines the interface for trip optimization
// operations.
type TripOptimizeUseCase interface {
	// Optimize ranks combinations of caller-supplied offers against the
	// request's topology and stay constraints.
	Optimize(ctx context.Context, legs []domain.LegOfferSet, req domain.TripRequest) (*domain.TripPlan, error)

	// Plan gathers offers from the registered providers for every leg of
	// the requested route, then optimizes the gathered pools.
	Plan(ctx context.Context, req domain.PlanRequest) (*domain.TripPlan, error)
}

// tripOptimizeUseCase implements TripOptimizeUseCase.
type tripOptimizeUseCase struct {
	providers []domain.OfferProvider
	cache     PlanCache
	clock     timeutil.Clock
	cfg       Config
}

// NewTripOptimizeUseCase creates a TripOptimizeUseCase with the given
// providers and configuration. A nil config selects the defaults, a nil
// cache disables plan caching, and a nil clock falls back to the system
// clock. Providers are only needed for Plan; Optimize works without any.
func NewTripOptimizeUseCase(providers []domain.OfferProvider, cache PlanCache, clock timeutil.Clock, config *Config) TripOptimizeUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.Workers > 0 {
			cfg.Workers = config.Workers
		}
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.ProviderTimeout > 0 {
			cfg.ProviderTimeout = config.ProviderTimeout
		}
		if config.FetchDelay > 0 {
			cfg.FetchDelay = config.FetchDelay
		}
		if config.CacheTTL > 0 {
			cfg.CacheTTL = config.CacheTTL
		}
	}

	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &tripOptimizeUseCase{
		providers: providers,
		cache:     cache,
		clock:     clock,
		cfg:       cfg,
	}
}

// Optimize implements TripOptimizeUseCase.Optimize.
func (uc *tripOptimizeUseCase) Optimize(ctx context.Context, legs []domain.LegOfferSet, req domain.TripRequest) (*domain.TripPlan, error) {
	start := uc.clock.Now()

	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GlobalTimeout)
	defer cancel()

	itineraries, meta, err := uc.optimizeOffers(ctx, legs, &req)
	if err != nil {
		return nil, err
	}

	meta.OptimizeTimeMs = uc.clock.Now().Sub(start).Milliseconds()
	plan := domain.NewTripPlan(&req, itineraries, meta)
	return &plan, nil
}

// Plan implements TripOptimizeUseCase.Plan.
func (uc *tripOptimizeUseCase) Plan(ctx context.Context, req domain.PlanRequest) (*domain.TripPlan, error) {
	start := uc.clock.Now()

	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GlobalTimeout)
	defer cancel()

	key := planCacheKey(&req)
	if uc.cache != nil && key != "" {
		if plan, ok := uc.cache.Get(ctx, key); ok {
			plan.Metadata.CacheHit = true
			return plan, nil
		}
	}

	if len(uc.providers) == 0 {
		return nil, domain.ErrAllProvidersFailed
	}

	queries, err := domain.BuildLegQueries(req.Trip.Topology, req.Route, req.Dates)
	if err != nil {
		return nil, err
	}

	legs := make([]domain.LegOfferSet, len(queries))
	var fetched fetchStats
	for i := range queries {
		if i > 0 && uc.cfg.FetchDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(uc.cfg.FetchDelay):
			}
		}

		offers, stats, err := uc.fetchLegOffers(ctx, queries[i])
		if err != nil {
			return nil, err
		}

		legs[i] = domain.LegOfferSet{Label: queries[i].Label(), Offers: offers}
		fetched.accumulate(stats)
	}

	itineraries, meta, err := uc.optimizeOffers(ctx, legs, &req.Trip)
	if err != nil {
		return nil, err
	}

	// Pool accounting starts from the offers that matched their query;
	// fold the mismatches back in so the totals cover everything the
	// providers returned.
	meta.OffersConsidered += fetched.mismatched
	meta.OffersDropped += fetched.mismatched
	meta.ProvidersQueried = fetched.queried
	meta.ProvidersSucceeded = fetched.succeeded
	meta.ProvidersFailed = fetched.failed
	meta.OptimizeTimeMs = uc.clock.Now().Sub(start).Milliseconds()

	plan := domain.NewTripPlan(&req.Trip, itineraries, meta)

	if uc.cache != nil && key != "" {
		uc.cache.Set(ctx, key, &plan, uc.cfg.CacheTTL)
	}

	return &plan, nil
}

// optimizeOffers runs the shared screen, deduplicate, enumerate and
// rank pipeline. Callers must have validated and defaulted the request.
func (uc *tripOptimizeUseCase) optimizeOffers(ctx context.Context, legs []domain.LegOfferSet, req *domain.TripRequest) ([]domain.Itinerary, domain.PlanMetadata, error) {
	kind := req.Topology

	pools, stats, err := buildPools(kind, legs)
	if err != nil {
		return nil, domain.PlanMetadata{}, err
	}

	meta := domain.PlanMetadata{
		OffersConsidered:  stats.considered,
		OffersDropped:     stats.dropped,
		DuplicatesRemoved: stats.duplicates,
	}

	// An empty pool means zero combinations, not an error.
	for _, pool := range pools {
		if len(pool) == 0 {
			return nil, meta, nil
		}
	}

	first := len(pools[0])
	workers := uc.cfg.Workers
	if workers > first {
		workers = first
	}
	if workers < 1 {
		workers = 1
	}

	// Partition on the first slot so sequence numbers line up with a
	// single-threaded enumeration of the same pools.
	chunk := (first + workers - 1) / workers

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		lists  []*topList
		merged rankStats
		runErr error
	)

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > first {
			hi = first
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()

			e := NewPartitionedEnumerator(pools, lo, hi)
			top, stats, err := rankPartition(ctx, e, kind, req.Constraints, req.TopN)

			mu.Lock()
			defer mu.Unlock()
			merged.checked += stats.checked
			merged.valid += stats.valid
			if err != nil {
				runErr = err
				return
			}
			lists = append(lists, top)
		}(lo, hi)
	}

	wg.Wait()

	meta.CombinationsChecked = merged.checked
	meta.ValidItineraries = merged.valid

	if runErr != nil {
		return nil, meta, runErr
	}
	return mergeTop(lists, req.TopN), meta, nil
}

// fetchStats counts provider queries across fetch rounds.
type fetchStats struct {
	queried    int
	succeeded  int
	failed     int
	mismatched int
}

func (fs *fetchStats) accumulate(other fetchStats) {
	fs.queried += other.queried
	fs.succeeded += other.succeeded
	fs.failed += other.failed
	fs.mismatched += other.mismatched
}

// fetchLegOffers fans one leg's query out to every provider in parallel
// and pools the offers that match it.
func (uc *tripOptimizeUseCase) fetchLegOffers(ctx context.Context, query domain.LegQuery) ([]domain.Offer, fetchStats, error) {
	// One slot per provider, so senders never block on a slow reader.
	resultsChan := make(chan domain.ProviderResult, len(uc.providers))

	var wg sync.WaitGroup
	for _, provider := range uc.providers {
		wg.Add(1)
		go func(p domain.OfferProvider) {
			defer wg.Done()
			uc.queryProvider(ctx, p, query, resultsChan)
		}(provider)
	}
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var offers []domain.Offer
	var stats fetchStats

	for result := range resultsChan {
		stats.queried++
		if !result.IsSuccess() {
			stats.failed++
			continue
		}
		stats.succeeded++

		for i := range result.Offers {
			if query.Matches(&result.Offers[i]) {
				offers = append(offers, result.Offers[i])
			} else {
				stats.mismatched++
			}
		}
	}

	// Providers that never reported before the deadline count as failed.
	if ctx.Err() != nil && stats.queried < len(uc.providers) {
		stats.failed += len(uc.providers) - stats.queried
		stats.queried = len(uc.providers)
	}

	if stats.succeeded == 0 {
		return nil, stats, domain.ErrAllProvidersFailed
	}
	return offers, stats, nil
}

// queryProvider queries a single provider with timeout and panic
// recovery.
func (uc *tripOptimizeUseCase) queryProvider(ctx context.Context, provider domain.OfferProvider, query domain.LegQuery, results chan<- domain.ProviderResult) {
	// Per-provider timeout
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
	defer cancel()

	start := time.Now()
	providerName := provider.Name()

	// Panic recovery to prevent one provider from crashing the whole run
	defer func() {
		if r := recover(); r != nil {
			results <- domain.ProviderResult{
				Provider:   providerName,
				Err:        fmt.Errorf("provider panic: %v", r),
				DurationMs: time.Since(start).Milliseconds(),
			}
		}
	}()

	offers, err := provider.FetchOffers(ctx, query)

	results <- domain.ProviderResult{
		Provider:   providerName,
		Offers:     offers,
		Err:        err,
		DurationMs: time.Since(start).Milliseconds(),
	}
}

// planCacheKey derives a stable fingerprint for a plan request. An
// empty key disables caching for the request.
func planCacheKey(req *domain.PlanRequest) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return "plan:" + hex.EncodeToString(sum[:])
}

// Ensure tripOptimizeUseCase implements TripOptimizeUseCase at compile time.
var _ TripOptimizeUseCase = (*tripOptimizeUseCase)(nil)
