package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstraints_Validate(t *testing.T) {
	tests := []struct {
		name        string
		kind        TopologyKind
		minStays    []int
		wantErr     bool
		wantErrIs   error
		wantMessage string
	}{
		{
			name:     "single stopover with one minimum",
			kind:     TopologySingleStopover,
			minStays: []int{4},
		},
		{
			name:     "double stopover with two minimums",
			kind:     TopologyDoubleStopover,
			minStays: []int{4, 10},
		},
		{
			name:     "zero minimum is allowed",
			kind:     TopologySingleStopover,
			minStays: []int{0},
		},
		{
			name:      "negative minimum",
			kind:      TopologySingleStopover,
			minStays:  []int{-1},
			wantErr:   true,
			wantErrIs: ErrInvalidConstraints,
		},
		{
			name:        "too few minimums",
			kind:        TopologyDoubleStopover,
			minStays:    []int{4},
			wantErr:     true,
			wantErrIs:   ErrInvalidConstraints,
			wantMessage: "expects 2 minimum stays",
		},
		{
			name:      "too many minimums",
			kind:      TopologySingleStopover,
			minStays:  []int{4, 10},
			wantErr:   true,
			wantErrIs: ErrInvalidConstraints,
		},
		{
			name:      "nested round trips need two minimums",
			kind:      TopologyRoundTripNested,
			minStays:  []int{4, 10},
			wantErr:   false,
		},
		{
			name:      "unknown topology",
			kind:      TopologyKind("teleport"),
			minStays:  []int{4},
			wantErr:   true,
			wantErrIs: ErrUnknownTopology,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Constraints{MinStayDays: tt.minStays}
			err := c.Validate(tt.kind)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.wantErrIs != nil {
				assert.True(t, errors.Is(err, tt.wantErrIs))
			}
			if tt.wantMessage != "" {
				assert.Contains(t, err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestDefaultMinStayDays(t *testing.T) {
	assert.Equal(t, []int{4}, DefaultMinStayDays(1))
	assert.Equal(t, []int{4, 10}, DefaultMinStayDays(2))
	assert.Nil(t, DefaultMinStayDays(0))
	assert.Nil(t, DefaultMinStayDays(3))
}

func TestTripRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   TripRequest
		wantErrIs error
	}{
		{
			name: "valid request",
			request: TripRequest{
				Topology:    TopologySingleStopover,
				Constraints: Constraints{MinStayDays: []int{4}},
				TopN:        10,
				Currency:    "GBP",
			},
		},
		{
			name: "unknown topology",
			request: TripRequest{
				Topology:    TopologyKind("triangle"),
				Constraints: Constraints{MinStayDays: []int{4}},
				TopN:        10,
			},
			wantErrIs: ErrUnknownTopology,
		},
		{
			name: "topN below one",
			request: TripRequest{
				Topology:    TopologySingleStopover,
				Constraints: Constraints{MinStayDays: []int{4}},
				TopN:        0,
			},
			wantErrIs: ErrInvalidRequest,
		},
		{
			name: "bad currency code",
			request: TripRequest{
				Topology:    TopologySingleStopover,
				Constraints: Constraints{MinStayDays: []int{4}},
				TopN:        5,
				Currency:    "POUNDS",
			},
			wantErrIs: ErrInvalidRequest,
		},
		{
			name: "constraints mismatch surfaces as constraint error",
			request: TripRequest{
				Topology:    TopologyDoubleStopover,
				Constraints: Constraints{MinStayDays: []int{4}},
				TopN:        5,
			},
			wantErrIs: ErrInvalidConstraints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErrIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErrIs))
		})
	}
}

func TestConstraints_CheckStays(t *testing.T) {
	tests := []struct {
		name      string
		minStays  []int
		dates     []string
		gaps      []int
		wantStays []int
		wantOK    bool
	}{
		{
			name:      "increasing dates meeting the minimum",
			minStays:  []int{4},
			dates:     []string{"2026-02-05", "2026-02-15"},
			gaps:      []int{0},
			wantStays: []int{10},
			wantOK:    true,
		},
		{
			name:      "stay exactly at the minimum is valid",
			minStays:  []int{4},
			dates:     []string{"2026-02-05", "2026-02-09"},
			gaps:      []int{0},
			wantStays: []int{4},
			wantOK:    true,
		},
		{
			name:     "stay one day short of the minimum",
			minStays: []int{4},
			dates:    []string{"2026-02-05", "2026-02-08"},
			gaps:     []int{0},
			wantOK:   false,
		},
		{
			name:     "equal adjacent dates are invalid",
			minStays: []int{0},
			dates:    []string{"2026-02-05", "2026-02-05"},
			gaps:     []int{0},
			wantOK:   false,
		},
		{
			name:     "reversed dates are invalid",
			minStays: []int{4},
			dates:    []string{"2026-02-15", "2026-02-05"},
			gaps:     []int{0},
			wantOK:   false,
		},
		{
			name:      "two stopovers each checked independently",
			minStays:  []int{4, 10},
			dates:     []string{"2026-02-05", "2026-02-11", "2026-02-22"},
			gaps:      []int{0, 1},
			wantStays: []int{6, 11},
			wantOK:    true,
		},
		{
			name:     "second stopover below its own minimum",
			minStays: []int{4, 10},
			dates:    []string{"2026-02-05", "2026-02-11", "2026-02-19"},
			gaps:     []int{0, 1},
			wantOK:   false,
		},
		{
			name:      "ungated revisit gap only needs chronology",
			minStays:  []int{4, 10},
			dates:     []string{"2026-02-05", "2026-02-11", "2026-02-22", "2026-02-23"},
			gaps:      []int{0, 1},
			wantStays: []int{6, 11},
			wantOK:    true,
		},
		{
			name:     "revisit gap with a date tie still fails chronology",
			minStays: []int{4, 10},
			dates:    []string{"2026-02-05", "2026-02-11", "2026-02-22", "2026-02-22"},
			gaps:     []int{0, 1},
			wantOK:   false,
		},
		{
			name:      "arbitrarily long stays are valid",
			minStays:  []int{4},
			dates:     []string{"2026-02-05", "2027-06-20"},
			gaps:      []int{0},
			wantStays: []int{500},
			wantOK:    true,
		},
		{
			name:      "zero minimum accepts a one-day stay",
			minStays:  []int{0},
			dates:     []string{"2026-02-05", "2026-02-06"},
			gaps:      []int{0},
			wantStays: []int{1},
			wantOK:    true,
		},
		{
			name:     "fewer than two dates is invalid",
			minStays: []int{4},
			dates:    []string{"2026-02-05"},
			gaps:     []int{0},
			wantOK:   false,
		},
		{
			name:     "gap index out of range is invalid",
			minStays: []int{4},
			dates:    []string{"2026-02-05", "2026-02-15"},
			gaps:     []int{5},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Constraints{MinStayDays: tt.minStays}

			dates := make([]time.Time, len(tt.dates))
			for i, d := range tt.dates {
				dates[i] = date(d)
			}

			stays, ok := c.CheckStays(dates, tt.gaps)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantStays, stays)
			} else {
				assert.Nil(t, stays)
			}
		})
	}
}

func TestTripDays(t *testing.T) {
	assert.Equal(t, 10, TripDays([]time.Time{date("2026-02-05"), date("2026-02-15")}))
	assert.Equal(t, 21, TripDays([]time.Time{
		date("2026-02-05"), date("2026-02-10"), date("2026-02-21"), date("2026-02-26"),
	}))
	assert.Equal(t, 0, TripDays([]time.Time{date("2026-02-05")}))
	assert.Equal(t, 0, TripDays(nil))
}

func TestPlanRequest_Validate(t *testing.T) {
	valid := PlanRequest{
		Trip: TripRequest{
			Topology:    TopologySingleStopover,
			Constraints: Constraints{MinStayDays: []int{4}},
			TopN:        10,
			Currency:    "GBP",
		},
		Route: Route{Origins: []string{"LHR"}, Stopover1: []string{"HKG"}},
		Dates: []SlotDates{
			{DepartureDates: []time.Time{date("2026-02-05")}},
			{DepartureDates: []time.Time{date("2026-02-15")}},
		},
	}

	t.Run("valid plan request", func(t *testing.T) {
		r := valid
		assert.NoError(t, r.Validate())
	})

	t.Run("trip rules are checked first", func(t *testing.T) {
		r := valid
		r.Trip.TopN = -1
		err := r.Validate()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRequest))
	})

	t.Run("route problems surface before providers are touched", func(t *testing.T) {
		r := valid
		r.Route.Stopover1 = nil
		assert.Error(t, r.Validate())
	})

	t.Run("slot date mismatch", func(t *testing.T) {
		r := valid
		r.Dates = r.Dates[:1]
		assert.Error(t, r.Validate())
	})
}

func TestPlanRequest_SetDefaults(t *testing.T) {
	r := PlanRequest{Trip: TripRequest{Topology: TopologyDoubleStopover}}
	r.SetDefaults()

	assert.Equal(t, 10, r.Trip.TopN)
	assert.Equal(t, "GBP", r.Trip.Currency)
	assert.Equal(t, []int{4, 10}, r.Trip.Constraints.MinStayDays)
}

func TestTripRequest_SetDefaults(t *testing.T) {
	t.Run("fills all defaults for a single stopover", func(t *testing.T) {
		r := TripRequest{Topology: TopologySingleStopover}
		r.SetDefaults()

		assert.Equal(t, 10, r.TopN)
		assert.Equal(t, "GBP", r.Currency)
		assert.Equal(t, []int{4}, r.Constraints.MinStayDays)
	})

	t.Run("fills two stay defaults for a double stopover", func(t *testing.T) {
		r := TripRequest{Topology: TopologyDoubleStopover}
		r.SetDefaults()

		assert.Equal(t, []int{4, 10}, r.Constraints.MinStayDays)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		r := TripRequest{
			Topology:    TopologySingleStopover,
			Constraints: Constraints{MinStayDays: []int{7}},
			TopN:        3,
			Currency:    "EUR",
		}
		r.SetDefaults()

		assert.Equal(t, 3, r.TopN)
		assert.Equal(t, "EUR", r.Currency)
		assert.Equal(t, []int{7}, r.Constraints.MinStayDays)
	})

	t.Run("keeps explicit empty stay list", func(t *testing.T) {
		r := TripRequest{
			Topology:    TopologySingleStopover,
			Constraints: Constraints{MinStayDays: []int{}},
		}
		r.SetDefaults()

		// An empty non-nil list is a deliberate choice and fails validation,
		// rather than silently becoming the default.
		assert.Equal(t, []int{}, r.Constraints.MinStayDays)
		assert.Error(t, r.Validate())
	})
}
