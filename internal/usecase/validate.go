package usecase

import "github.com/trip-finder/trip-deal-optimizer/internal/domain"

// poolStats accounts for offers lost while preparing slot pools.
type poolStats struct {
	considered int
	dropped    int
	duplicates int
}

// screenOffers validates and normalizes one slot's raw offers. Offers
// that fail structural validation, or whose fare shape does not match
// the slot (round-trip where a one-way belongs, or the reverse), are
// dropped rather than failing the run.
func screenOffers(kind domain.TopologyKind, slot int, offers []domain.Offer) ([]domain.Offer, int) {
	kept := make([]domain.Offer, 0, len(offers))
	dropped := 0

	for i := range offers {
		if err := offers[i].Validate(); err != nil {
			dropped++
			continue
		}
		if err := kind.ValidateSlotOffer(slot, &offers[i]); err != nil {
			dropped++
			continue
		}
		kept = append(kept, offers[i].Normalized())
	}

	return kept, dropped
}

// buildPools screens and deduplicates every slot pool for the given
// topology. The leg count must match the topology's slot count; an
// empty pool is not an error, it just yields zero combinations.
func buildPools(kind domain.TopologyKind, legs []domain.LegOfferSet) ([][]domain.Offer, poolStats, error) {
	if len(legs) != kind.Slots() {
		return nil, poolStats{}, domain.WrapInvalidRequest(
			"topology %s requires %d offer sets, got %d", kind, kind.Slots(), len(legs))
	}

	pools := make([][]domain.Offer, len(legs))
	var stats poolStats

	for i, leg := range legs {
		stats.considered += len(leg.Offers)

		screened, dropped := screenOffers(kind, i, leg.Offers)
		stats.dropped += dropped

		deduped, removed := Deduplicate(screened)
		stats.duplicates += removed

		pools[i] = deduped
	}

	return pools, stats, nil
}
