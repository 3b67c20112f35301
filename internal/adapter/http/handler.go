// Package http provides the HTTP handler layer for the trip optimizer API.
// Handlers bind and validate request bodies, invoke the use case, and map
// domain failures onto HTTP statuses.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-finder/trip-deal-optimizer/internal/adapter/http/response"
	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/usecase"
)

// TripHandler handles HTTP requests for trip optimization endpoints.
type TripHandler struct {
	useCase usecase.TripOptimizeUseCase
}

// NewTripHandler creates a new TripHandler with the given use case.
func NewTripHandler(uc usecase.TripOptimizeUseCase) *TripHandler {
	return &TripHandler{
		useCase: uc,
	}
}

// OptimizeTrip handles POST /api/v1/trips/optimize
//
// @Summary Optimize supplied offer pools
// @Description Rank combinations of caller-supplied offers into the cheapest itineraries that satisfy the topology and stay constraints
// @Tags trips
// @Accept json
// @Produce json
// @Param request body OptimizeTripRequest true "Offer pools and optimization rules"
// @Success 200 {object} TripPlanDTO
// @Failure 400 {object} response.ErrorDetail "Invalid request"
// @Failure 504 {object} response.ErrorDetail "Deadline exceeded"
// @Router /api/v1/trips/optimize [post]
func (h *TripHandler) OptimizeTrip(c echo.Context) error {
	var req OptimizeTripRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	legs := ToDomainLegs(req.Legs)
	trip := ToDomainTripRequest(&req.TripRulesRequest)

	plan, err := h.useCase.Optimize(c.Request().Context(), legs, trip)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OptimizedPlan(c, ToTripPlanDTO(plan))
}

// PlanTrip handles POST /api/v1/trips/plan
//
// @Summary Plan a trip from registered offer sources
// @Description Gather offers for every leg of the requested route from the registered sources, then rank them into the cheapest valid itineraries
// @Tags trips
// @Accept json
// @Produce json
// @Param request body PlanTripRequest true "Route, candidate dates, and optimization rules"
// @Success 200 {object} TripPlanDTO
// @Failure 400 {object} response.ErrorDetail "Invalid request"
// @Failure 503 {object} response.ErrorDetail "No offer source available"
// @Failure 504 {object} response.ErrorDetail "Deadline exceeded"
// @Router /api/v1/trips/plan [post]
func (h *TripHandler) PlanTrip(c echo.Context) error {
	var req PlanTripRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	// Date range specs expand here, so a malformed spec surfaces as a
	// request error before any source is contacted.
	planReq, err := ToDomainPlanRequest(&req)
	if err != nil {
		return h.handleError(c, err)
	}

	plan, err := h.useCase.Plan(c.Request().Context(), planReq)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OptimizedPlan(c, ToTripPlanDTO(plan))
}

// handleValidationError renders a 400, with the per-field breakdown when
// the error carries one.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError translates use case failures into HTTP statuses. Domain
// validation failures read as client errors even though they surface
// after binding.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrAllProvidersFailed):
		return response.ServiceUnavailable(c)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrUnknownTopology),
		errors.Is(err, domain.ErrInvalidConstraints),
		errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	return response.InternalServerError(c)
}

// Health answers liveness probes on GET /health.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}
