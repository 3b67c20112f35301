package usecase

import "github.com/trip-finder/trip-deal-optimizer/internal/domain"

// dedupKey identifies offers that describe the same underlying flight.
// Origin, destination and date are deliberately absent from the key:
// within one slot pool those are already fixed by the query that
// produced the offers.
type dedupKey struct {
	price      float64
	departTime string
	airline    string
	stops      int
}

// Deduplicate removes offers that appear more than once in a slot's
// pool, keeping the first occurrence. Two offers count as duplicates
// when price, departure time, airline and stop count all match. Offers
// missing the departure time or the airline are never coalesced with
// anything.
//
// Behavior:
//   - Returns the input slice untouched when it holds fewer than two offers
//   - Preserves the order of surviving offers
//   - Does NOT mutate the input slice
//   - Performance is O(n) where n = number of offers
func Deduplicate(offers []domain.Offer) ([]domain.Offer, int) {
	if len(offers) < 2 {
		return offers, 0
	}

	seen := make(map[dedupKey]struct{}, len(offers))
	result := make([]domain.Offer, 0, len(offers))
	removed := 0

	for _, o := range offers {
		// Partial extractions carry too little identity to merge safely.
		if o.DepartureTime == "" || o.Airline == "" {
			result = append(result, o)
			continue
		}

		key := dedupKey{
			price:      o.Price,
			departTime: o.DepartureTime,
			airline:    o.Airline,
			stops:      o.Stops,
		}
		if _, dup := seen[key]; dup {
			removed++
			continue
		}
		seen[key] = struct{}{}
		result = append(result, o)
	}

	return result, removed
}
