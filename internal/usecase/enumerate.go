package usecase

import "github.com/trip-finder/trip-deal-optimizer/internal/domain"

// Enumerator walks the cartesian product of per-slot offer pools in
// row-major order, the last slot varying fastest. Every combination
// carries a sequence number equal to its position in the full product,
// so a partitioned run assigns the same numbers a single-threaded run
// would. Ranking breaks price ties on that number, which keeps results
// identical regardless of worker count.
//
// An Enumerator is not safe for concurrent use. Give each worker its
// own partition via NewPartitionedEnumerator.
type Enumerator struct {
	pools   [][]domain.Offer
	lo, hi  int // first-slot index range [lo, hi)
	rest    int64
	indices []int
	buf     []domain.Offer
	seq     int64
	done    bool
}

// NewEnumerator creates an enumerator over every combination of the
// given pools. Any empty pool makes the product empty.
func NewEnumerator(pools [][]domain.Offer) *Enumerator {
	hi := 0
	if len(pools) > 0 {
		hi = len(pools[0])
	}
	return NewPartitionedEnumerator(pools, 0, hi)
}

// NewPartitionedEnumerator creates an enumerator over the combinations
// whose first-slot offer index lies in [lo, hi). Sequence numbers match
// the ones a full enumerator over the same pools would assign.
func NewPartitionedEnumerator(pools [][]domain.Offer, lo, hi int) *Enumerator {
	if lo < 0 {
		lo = 0
	}
	if len(pools) > 0 && hi > len(pools[0]) {
		hi = len(pools[0])
	}

	rest := int64(1)
	for i := 1; i < len(pools); i++ {
		rest *= int64(len(pools[i]))
	}

	e := &Enumerator{pools: pools, lo: lo, hi: hi, rest: rest}
	e.Reset()
	return e
}

// Size returns the number of combinations this enumerator yields.
func (e *Enumerator) Size() int64 {
	if len(e.pools) == 0 || e.hi <= e.lo {
		return 0
	}
	return int64(e.hi-e.lo) * e.rest
}

// Reset rewinds the enumerator to its first combination.
func (e *Enumerator) Reset() {
	e.done = e.Size() == 0
	e.indices = make([]int, len(e.pools))
	if len(e.indices) > 0 {
		e.indices[0] = e.lo
	}
	if e.buf == nil {
		e.buf = make([]domain.Offer, len(e.pools))
	}
	e.seq = int64(e.lo) * e.rest
}

// Next returns the next combination and its sequence number, or false
// when the partition is exhausted. The returned slice is reused between
// calls; callers that keep a combination must copy it first.
func (e *Enumerator) Next() ([]domain.Offer, int64, bool) {
	if e.done {
		return nil, 0, false
	}

	for i, idx := range e.indices {
		e.buf[i] = e.pools[i][idx]
	}
	seq := e.seq
	e.seq++
	e.advance()

	return e.buf, seq, true
}

// advance moves the odometer one step, last slot first.
func (e *Enumerator) advance() {
	for i := len(e.indices) - 1; i >= 0; i-- {
		e.indices[i]++
		if i == 0 {
			e.done = e.indices[0] >= e.hi
			return
		}
		if e.indices[i] < len(e.pools[i]) {
			return
		}
		e.indices[i] = 0
	}
}
