package usecase

import (
	"context"
	"sort"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
)

// checkInterval is how many combinations a worker enumerates between
// context checks.
const checkInterval = 1024

// candidateKey orders candidates before they are materialized. Cheaper
// wins; equal prices prefer the shorter trip; remaining ties fall back
// to enumeration order, so the final ranking never depends on worker
// scheduling.
type candidateKey struct {
	price float64
	days  int
	seq   int64
}

// less reports whether k ranks strictly ahead of other.
func (k candidateKey) less(other candidateKey) bool {
	if k.price != other.price {
		return k.price < other.price
	}
	if k.days != other.days {
		return k.days < other.days
	}
	return k.seq < other.seq
}

// rankedCandidate pairs a kept itinerary with its ordering key.
type rankedCandidate struct {
	key  candidateKey
	itin domain.Itinerary
}

// topList keeps the best limit candidates seen so far, ordered best
// first. It is not safe for concurrent use.
type topList struct {
	limit int
	items []rankedCandidate
}

func newTopList(limit int) *topList {
	if limit < 0 {
		limit = 0
	}
	return &topList{limit: limit, items: make([]rankedCandidate, 0, limit)}
}

// wouldAccept reports whether a candidate with this key would enter the
// list. It lets callers skip building an itinerary for combinations
// that cannot rank.
func (t *topList) wouldAccept(key candidateKey) bool {
	if t.limit == 0 {
		return false
	}
	if len(t.items) < t.limit {
		return true
	}
	return key.less(t.items[len(t.items)-1].key)
}

// add inserts the candidate in order, evicting the current worst when
// the list is full.
func (t *topList) add(c rankedCandidate) {
	if !t.wouldAccept(c.key) {
		return
	}

	pos := sort.Search(len(t.items), func(i int) bool {
		return c.key.less(t.items[i].key)
	})
	if len(t.items) < t.limit {
		t.items = append(t.items, rankedCandidate{})
	}
	copy(t.items[pos+1:], t.items[pos:])
	t.items[pos] = c
}

// rankStats counts the work one partition performed.
type rankStats struct {
	checked int64
	valid   int64
}

// rankPartition drains the enumerator and returns the best candidates
// within it. Combinations are rejected as early as possible: chronology
// and stay checks run on the reused enumeration buffer, and an
// itinerary is only materialized once its key beats the current
// top list.
func rankPartition(ctx context.Context, e *Enumerator, kind domain.TopologyKind, constraints domain.Constraints, limit int) (*topList, rankStats, error) {
	top := newTopList(limit)
	gaps := kind.StopoverGaps()
	var stats rankStats

	for {
		if stats.checked%checkInterval == 0 && ctx.Err() != nil {
			return nil, stats, ctx.Err()
		}

		combo, seq, ok := e.Next()
		if !ok {
			break
		}
		stats.checked++

		dates, err := kind.BoundaryDates(combo)
		if err != nil {
			continue
		}
		stays, ok := constraints.CheckStays(dates, gaps)
		if !ok {
			continue
		}
		stats.valid++

		price := 0.0
		for i := range combo {
			price += combo[i].Price
		}
		key := candidateKey{price: price, days: domain.TripDays(dates), seq: seq}
		if !top.wouldAccept(key) {
			continue
		}

		itin, err := domain.NewItinerary(kind, combo, stays)
		if err != nil {
			continue
		}
		top.add(rankedCandidate{key: key, itin: itin})
	}

	return top, stats, nil
}

// mergeTop combines per-partition results into the final ordered list.
// Keys are re-compared globally, so concatenation order does not matter.
func mergeTop(lists []*topList, limit int) []domain.Itinerary {
	var all []rankedCandidate
	for _, l := range lists {
		if l != nil {
			all = append(all, l.items...)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].key.less(all[j].key)
	})
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}

	result := make([]domain.Itinerary, len(all))
	for i := range all {
		result[i] = all[i].itin
	}
	return result
}
