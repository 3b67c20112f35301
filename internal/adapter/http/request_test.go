package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertFields fails unless errs records a validation error for every
// named field, whatever order they were added in.
func assertFields(t *testing.T, errs *ValidationErrors, fields ...string) {
	t.Helper()

	seen := make(map[string]bool, len(errs.Errors))
	for _, e := range errs.Errors {
		seen[e.Field] = true
	}
	for _, f := range fields {
		assert.True(t, seen[f], "no validation error recorded for %s", f)
	}
}

func TestValidateTopology(t *testing.T) {
	tests := []struct {
		name     string
		topology string
		wantErr  bool
	}{
		{name: "single stopover", topology: "single_stopover"},
		{name: "double stopover", topology: "double_stopover"},
		{name: "round the world", topology: "round_the_world"},
		{name: "round trip single", topology: "round_trip_single"},
		{name: "round trip nested", topology: "round_trip_nested"},
		{name: "empty", topology: "", wantErr: true},
		{name: "unknown shape", topology: "hub_and_spoke", wantErr: true},
		{name: "wrong case", topology: "Single_Stopover", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &TripRulesRequest{Topology: tt.topology}

			var errs ValidationErrors
			r.validateTopology(&errs)

			if tt.wantErr {
				require.True(t, errs.HasErrors())
				assertFields(t, &errs, "topology")
			} else {
				assert.False(t, errs.HasErrors(), "unwanted errors: %v", errs.Errors)
			}
		})
	}
}

func TestValidateMinStayDays(t *testing.T) {
	tests := []struct {
		name        string
		minStayDays []int
		wantFields  []string
	}{
		{name: "unset is valid", minStayDays: nil},
		{name: "single stay", minStayDays: []int{4}},
		{name: "two stays", minStayDays: []int{4, 10}},
		{name: "zero stay is valid", minStayDays: []int{0}},
		{
			name:        "negative stay",
			minStayDays: []int{-1},
			wantFields:  []string{"minStayDays[0]"},
		},
		{
			name:        "negative stay in second position",
			minStayDays: []int{4, -2},
			wantFields:  []string{"minStayDays[1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &TripRulesRequest{MinStayDays: tt.minStayDays}

			var errs ValidationErrors
			r.validateMinStayDays(&errs)

			if len(tt.wantFields) == 0 {
				assert.False(t, errs.HasErrors(), "unwanted errors: %v", errs.Errors)
				return
			}
			require.True(t, errs.HasErrors())
			assertFields(t, &errs, tt.wantFields...)
		})
	}
}

func TestValidateTopN(t *testing.T) {
	tests := []struct {
		name    string
		topN    int
		wantErr bool
	}{
		{name: "zero selects default", topN: 0},
		{name: "positive", topN: 10},
		{name: "negative", topN: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &TripRulesRequest{TopN: tt.topN}

			var errs ValidationErrors
			r.validateTopN(&errs)

			if tt.wantErr {
				require.True(t, errs.HasErrors())
				assertFields(t, &errs, "topN")
			} else {
				assert.False(t, errs.HasErrors(), "unwanted errors: %v", errs.Errors)
			}
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		name       string
		currency   string
		wantErr    bool
		normalized string
	}{
		{name: "empty selects default", currency: "", normalized: ""},
		{name: "uppercase code", currency: "GBP", normalized: "GBP"},
		{name: "lowercase code", currency: "gbp", normalized: "GBP"},
		{name: "padded code", currency: " eur ", normalized: "EUR"},
		{name: "too long", currency: "POUNDS", wantErr: true},
		{name: "too short", currency: "GB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &TripRulesRequest{Currency: tt.currency}

			var errs ValidationErrors
			r.validateCurrency(&errs)

			if tt.wantErr {
				require.True(t, errs.HasErrors())
				assertFields(t, &errs, "currency")
				return
			}
			assert.False(t, errs.HasErrors(), "unwanted errors: %v", errs.Errors)
			assert.Equal(t, tt.normalized, r.Currency)
		})
	}
}

func TestValidateRoute(t *testing.T) {
	tests := []struct {
		name       string
		route      RouteDTO
		wantFields []string
	}{
		{
			name: "valid route",
			route: RouteDTO{
				Origins:   []string{"LHR", "LGW"},
				Stopover1: []string{"HKG"},
				Stopover2: []string{"SYD"},
			},
		},
		{
			name: "missing origins",
			route: RouteDTO{
				Stopover1: []string{"HKG"},
			},
			wantFields: []string{"route.origins"},
		},
		{
			name: "missing stopover1",
			route: RouteDTO{
				Origins: []string{"LHR"},
			},
			wantFields: []string{"route.stopover1"},
		},
		{
			name: "invalid origin code",
			route: RouteDTO{
				Origins:   []string{"LHRX"},
				Stopover1: []string{"HKG"},
			},
			wantFields: []string{"route.origins[0]"},
		},
		{
			name: "invalid stopover2 code",
			route: RouteDTO{
				Origins:   []string{"LHR"},
				Stopover1: []string{"HKG"},
				Stopover2: []string{"12"},
			},
			wantFields: []string{"route.stopover2[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &PlanTripRequest{Route: tt.route}

			var errs ValidationErrors
			r.validateRoute(&errs)

			if len(tt.wantFields) == 0 {
				assert.False(t, errs.HasErrors(), "unwanted errors: %v", errs.Errors)
				return
			}
			require.True(t, errs.HasErrors())
			assertFields(t, &errs, tt.wantFields...)
		})
	}
}

func TestValidateRoute_NormalizesAirports(t *testing.T) {
	r := &PlanTripRequest{
		Route: RouteDTO{
			Origins:   []string{"lhr", " lgw "},
			Stopover1: []string{"hkg"},
		},
	}

	var errs ValidationErrors
	r.validateRoute(&errs)

	require.False(t, errs.HasErrors())
	assert.Equal(t, []string{"LHR", "LGW"}, r.Route.Origins)
	assert.Equal(t, []string{"HKG"}, r.Route.Stopover1)
}

func TestValidateDates(t *testing.T) {
	tests := []struct {
		name       string
		dates      []SlotDatesDTO
		wantFields []string
	}{
		{
			name: "valid plain dates",
			dates: []SlotDatesDTO{
				{DepartureDates: []string{"2026-02-05", "2026-02-06"}},
				{DepartureDates: []string{"2026-02-10"}},
			},
		},
		{
			name: "valid range spec",
			dates: []SlotDatesDTO{
				{DepartureDates: []string{"2026-02-05:2026-02-08"}},
			},
		},
		{
			name: "valid return dates",
			dates: []SlotDatesDTO{
				{
					DepartureDates: []string{"2026-02-05"},
					ReturnDates:    []string{"2026-02-12:2026-02-14"},
				},
			},
		},
		{
			name:       "missing dates",
			dates:      nil,
			wantFields: []string{"dates"},
		},
		{
			name: "slot without departure dates",
			dates: []SlotDatesDTO{
				{DepartureDates: []string{"2026-02-05"}},
				{},
			},
			wantFields: []string{"dates[1].departureDates"},
		},
		{
			name: "malformed date",
			dates: []SlotDatesDTO{
				{DepartureDates: []string{"05/02/2026"}},
			},
			wantFields: []string{"dates[0].departureDates[0]"},
		},
		{
			name: "impossible date",
			dates: []SlotDatesDTO{
				{DepartureDates: []string{"2026-02-30"}},
			},
			wantFields: []string{"dates[0].departureDates[0]"},
		},
		{
			name: "reversed range",
			dates: []SlotDatesDTO{
				{DepartureDates: []string{"2026-02-10:2026-02-05"}},
			},
			wantFields: []string{"dates[0].departureDates[0]"},
		},
		{
			name: "malformed return date",
			dates: []SlotDatesDTO{
				{
					DepartureDates: []string{"2026-02-05"},
					ReturnDates:    []string{"soon"},
				},
			},
			wantFields: []string{"dates[0].returnDates[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &PlanTripRequest{Dates: tt.dates}

			var errs ValidationErrors
			r.validateDates(&errs)

			if len(tt.wantFields) == 0 {
				assert.False(t, errs.HasErrors(), "unwanted errors: %v", errs.Errors)
				return
			}
			require.True(t, errs.HasErrors())
			assertFields(t, &errs, tt.wantFields...)
		})
	}
}

func TestOptimizeTripRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := OptimizeTripRequest{
			TripRulesRequest: TripRulesRequest{
				Topology:    "single_stopover",
				MinStayDays: []int{4},
				TopN:        5,
				Currency:    "GBP",
			},
			Legs: []LegDTO{
				{Offers: []OfferDTO{{Origin: "LHR", Destination: "HKG", DepartureDate: "2026-02-05", Price: 320}}},
				{Offers: []OfferDTO{{Origin: "HKG", Destination: "LHR", DepartureDate: "2026-02-10", Price: 290}}},
			},
		}

		assert.NoError(t, req.Validate())
	})

	t.Run("minimal request", func(t *testing.T) {
		req := OptimizeTripRequest{
			TripRulesRequest: TripRulesRequest{Topology: "round_trip_single"},
			Legs:             []LegDTO{{Offers: []OfferDTO{}}},
		}

		assert.NoError(t, req.Validate())
	})

	t.Run("every broken field is reported", func(t *testing.T) {
		req := OptimizeTripRequest{
			TripRulesRequest: TripRulesRequest{
				Topology:    "",
				MinStayDays: []int{-1},
				TopN:        -3,
				Currency:    "POUNDS",
			},
		}

		err := req.Validate()
		require.Error(t, err)

		var errs *ValidationErrors
		require.ErrorAs(t, err, &errs)
		assertFields(t, errs, "topology", "minStayDays[0]", "topN", "currency", "legs")
	})
}

func TestPlanTripRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := PlanTripRequest{
			TripRulesRequest: TripRulesRequest{
				Topology: "round_trip_nested",
				TopN:     10,
			},
			Route: RouteDTO{
				Origins:   []string{"LHR"},
				Stopover1: []string{"HKG"},
				Stopover2: []string{"SYD"},
			},
			Dates: []SlotDatesDTO{
				{
					DepartureDates: []string{"2026-02-05:2026-02-07"},
					ReturnDates:    []string{"2026-02-24"},
				},
				{
					DepartureDates: []string{"2026-02-10"},
					ReturnDates:    []string{"2026-02-20"},
				},
			},
		}

		assert.NoError(t, req.Validate())
	})

	t.Run("every broken field is reported", func(t *testing.T) {
		req := PlanTripRequest{
			TripRulesRequest: TripRulesRequest{Topology: "figure_eight"},
			Route:            RouteDTO{Origins: []string{"L"}},
			Dates:            []SlotDatesDTO{{DepartureDates: []string{"not-a-date"}}},
		}

		err := req.Validate()
		require.Error(t, err)

		var errs *ValidationErrors
		require.ErrorAs(t, err, &errs)
		assertFields(t, errs, "topology", "route.origins[0]", "route.stopover1", "dates[0].departureDates[0]")
	})
}

func TestValidationErrors_ErrorText(t *testing.T) {
	var errs ValidationErrors
	errs.Add("topology", "topology is required")
	errs.Add("topN", "topN must not be negative")

	// The first recorded message speaks for the lot; the full set
	// travels in the details map.
	assert.Equal(t, "topology is required", errs.Error())

	var none ValidationErrors
	assert.Equal(t, "validation failed", none.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	var errs ValidationErrors
	errs.Add("topology", "topology is required")
	errs.Add("legs", "at least one leg offer pool is required")

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "topology is required", m["topology"])
	assert.Equal(t, "at least one leg offer pool is required", m["legs"])
}
