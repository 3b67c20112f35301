// Package offerfile serves offers from scraped fare dumps on disk.
// A YAML manifest names each source and its JSON dump files; every source
// becomes one provider with the offers pooled across its files.
package offerfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/retry"
)

var _ domain.OfferProvider = (*Adapter)(nil)

// Adapter serves offers for one named source from JSON dump files.
// Dumps are static snapshots, so they are read once on first use and
// kept in memory for the life of the process.
type Adapter struct {
	name  string
	files []string

	mu     sync.Mutex
	loaded bool
	offers []domain.Offer
}

// NewAdapter creates an adapter for one source and its dump files.
func NewAdapter(name string, files ...string) *Adapter {
	return &Adapter{
		name:  name,
		files: append([]string(nil), files...),
	}
}

// Name returns the source name used in logs and plan metadata.
func (a *Adapter) Name() string {
	return a.name
}

// FetchOffers returns the source's offers matching the leg query.
func (a *Adapter) FetchOffers(ctx context.Context, query domain.LegQuery) ([]domain.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(a.name, err)
	}

	if err := a.load(ctx); err != nil {
		if retry.IsPermanent(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.NewProviderError(a.name, err)
		}
		return nil, domain.NewRetryableProviderError(a.name, err)
	}

	var matched []domain.Offer
	for i := range a.offers {
		if query.Matches(&a.offers[i]) {
			matched = append(matched, a.offers[i])
		}
	}
	return matched, nil
}

// load reads and normalizes all dump files on first use. Failed loads are
// retried on the next call rather than cached.
func (a *Adapter) load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loaded {
		return nil
	}

	offers, err := retry.DoWithResult(ctx, a.readAll,
		retry.FileSourceConfig.WithRetryIf(retry.SkipPermanent))
	if err != nil {
		return err
	}

	a.offers = offers
	a.loaded = true
	return nil
}

// readAll reads every dump file and pools the normalized offers.
// Unreadable files are retryable; malformed JSON is permanent because the
// file will not parse any better on a second read.
func (a *Adapter) readAll() ([]domain.Offer, error) {
	var all []domain.Offer
	for _, path := range a.files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dump %s: %w", path, err)
		}

		var records []rawOffer
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, retry.NewPermanent(fmt.Errorf("parse dump %s: %w", path, err))
		}

		all = append(all, normalize(a.name, records)...)
	}
	return all, nil
}
