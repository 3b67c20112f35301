// Package usecase contains the business logic for trip optimization.
// It screens and deduplicates per-slot offer pools, enumerates offer
// combinations across slots, validates them against stay constraints,
// and keeps the cheapest survivors. Provider fan-out uses the
// Scatter-Gather concurrency pattern.
package usecase

import (
	"context"
	"time"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
)

// Default tuning values.
const (
	DefaultWorkers         = 4
	DefaultGlobalTimeout   = 30 * time.Second
	DefaultProviderTimeout = 10 * time.Second
	DefaultCacheTTL        = 15 * time.Minute
)

// Config contains configuration options for the use case.
type Config struct {
	// Workers is the number of goroutines enumerating combinations.
	Workers int

	// GlobalTimeout bounds one whole request, offer fetching included.
	GlobalTimeout time.Duration

	// ProviderTimeout bounds a single provider query.
	ProviderTimeout time.Duration

	// FetchDelay is the pause between per-slot fetch rounds. Zero
	// disables the pause.
	FetchDelay time.Duration

	// CacheTTL is how long a computed plan stays cached.
	CacheTTL time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Workers:         DefaultWorkers,
		GlobalTimeout:   DefaultGlobalTimeout,
		ProviderTimeout: DefaultProviderTimeout,
		FetchDelay:      0,
		CacheTTL:        DefaultCacheTTL,
	}
}

// PlanCache stores computed trip plans keyed by request fingerprint.
// Implementations must be safe for concurrent use and must return a
// plan the caller may mutate. A nil PlanCache disables caching.
type PlanCache interface {
	// Get returns the cached plan for key, or false when absent.
	Get(ctx context.Context, key string) (*domain.TripPlan, bool)

	// Set stores the plan under key for the given TTL.
	Set(ctx context.Context, key string, plan *domain.TripPlan, ttl time.Duration)
}
