// Package integration exercises the assembled service: handlers, use
// case, providers and cache wired together the way main wires them.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-finder/trip-deal-optimizer/internal/adapter/http"
	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/usecase"
)

// TestServer is an in-process instance of the API with the routes
// registered against the given use case.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer builds a server ready for httptest traffic.
func NewTestServer(uc usecase.TripOptimizeUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpAdapter.RegisterRoutes(e, httpAdapter.NewTripHandler(uc))

	return &TestServer{Echo: e}
}

// Request describes one call against the test server. A nil Body sends
// no payload; a non-nil one is JSON-encoded.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response holds what came back.
type Response struct {
	Code int
	Body []byte
}

// Do runs the request through the full echo stack and captures the
// reply.
func (ts *TestServer) Do(req Request) Response {
	var body bytes.Buffer
	if req.Body != nil {
		_ = json.NewEncoder(&body).Encode(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, &body)
	switch {
	case req.ContentType != "":
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	case req.Body != nil:
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{Code: rec.Code, Body: rec.Body.Bytes()}
}

// OptimizeRequest posts a body to the optimize endpoint.
func (ts *TestServer) OptimizeRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/optimize",
		Body:   body,
	})
}

// PlanRequest posts a body to the plan endpoint.
func (ts *TestServer) PlanRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/plan",
		Body:   body,
	})
}

// HealthRequest calls the health endpoint.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParsePlan decodes the response body as a TripPlanDTO.
func (r *Response) ParsePlan() (*httpAdapter.TripPlanDTO, error) {
	var plan httpAdapter.TripPlanDTO
	if err := json.Unmarshal(r.Body, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// DefaultOptimizeRequest returns a valid optimize request body for a
// single-stopover trip with one caller-supplied offer per slot.
func DefaultOptimizeRequest() httpAdapter.OptimizeTripRequest {
	return httpAdapter.OptimizeTripRequest{
		TripRulesRequest: httpAdapter.TripRulesRequest{
			Topology:    "single_stopover",
			MinStayDays: []int{4},
		},
		Legs: []httpAdapter.LegDTO{
			{
				Label: "LHR>HKG",
				Offers: []httpAdapter.OfferDTO{
					{
						Origin:        "LHR",
						Destination:   "HKG",
						DepartureDate: "2026-02-05",
						Price:         286.00,
						Airline:       "Cathay Pacific",
						Stops:         0,
						Provider:      "farescan",
					},
				},
			},
			{
				Label: "HKG>LHR",
				Offers: []httpAdapter.OfferDTO{
					{
						Origin:        "HKG",
						Destination:   "LHR",
						DepartureDate: "2026-02-10",
						Price:         301.75,
						Airline:       "Cathay Pacific",
						Stops:         0,
						Provider:      "farescan",
					},
				},
			},
		},
	}
}

// DefaultPlanRequest returns a valid plan request body for a round-trip
// to Hong Kong, matching the offer dumps under testdata.
func DefaultPlanRequest() httpAdapter.PlanTripRequest {
	return httpAdapter.PlanTripRequest{
		TripRulesRequest: httpAdapter.TripRulesRequest{
			Topology: "round_trip_single",
		},
		Route: httpAdapter.RouteDTO{
			Origins:   []string{"LHR"},
			Stopover1: []string{"HKG"},
		},
		Dates: []httpAdapter.SlotDatesDTO{
			{
				DepartureDates: []string{"2026-02-05"},
				ReturnDates:    []string{"2026-02-12"},
			},
		},
	}
}

// Date pins a calendar date to midnight UTC, the form every date in the
// optimizer uses.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// RoundTripPlanRequest returns a valid domain plan request for driving
// the use case directly: a round trip LHR to HKG on fixed dates.
func RoundTripPlanRequest() domain.PlanRequest {
	return domain.PlanRequest{
		Trip: domain.TripRequest{Topology: domain.TopologyRoundTripSingle},
		Route: domain.Route{
			Origins:   []string{"LHR"},
			Stopover1: []string{"HKG"},
		},
		Dates: []domain.SlotDates{
			{
				DepartureDates: []time.Time{Date(2026, time.February, 5)},
				ReturnDates:    []time.Time{Date(2026, time.February, 12)},
			},
		},
	}
}

// SingleStopoverPlanRequest returns a valid domain plan request for a
// single-stopover trip over two one-way legs.
func SingleStopoverPlanRequest() domain.PlanRequest {
	return domain.PlanRequest{
		Trip: domain.TripRequest{Topology: domain.TopologySingleStopover},
		Route: domain.Route{
			Origins:   []string{"LHR"},
			Stopover1: []string{"HKG"},
		},
		Dates: []domain.SlotDates{
			{DepartureDates: []time.Time{Date(2026, time.February, 5)}},
			{DepartureDates: []time.Time{Date(2026, time.February, 10)}},
		},
	}
}

// CreateUseCase assembles a cacheless use case over the given sources
// with default settings.
func CreateUseCase(providers []domain.OfferProvider) usecase.TripOptimizeUseCase {
	return usecase.NewTripOptimizeUseCase(providers, nil, nil, nil)
}

// CreateUseCaseWithConfig is CreateUseCase with explicit settings, for
// tests that tighten timeouts or worker counts.
func CreateUseCaseWithConfig(providers []domain.OfferProvider, config *usecase.Config) usecase.TripOptimizeUseCase {
	return usecase.NewTripOptimizeUseCase(providers, nil, nil, config)
}
