// Package http provides the HTTP handler layer for the trip optimizer API.
package http

import (
	"strings"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/timeutil"
)

// ToDomainTripRequest converts shared trip rules to a domain.TripRequest.
// Defaults for unset fields are applied by the use case.
func ToDomainTripRequest(r *TripRulesRequest) domain.TripRequest {
	return domain.TripRequest{
		Topology: domain.TopologyKind(r.Topology),
		Constraints: domain.Constraints{
			MinStayDays: r.MinStayDays,
		},
		TopN:     r.TopN,
		Currency: strings.ToUpper(r.Currency),
	}
}

// ToDomainLegs converts caller-supplied leg pools to domain offer sets.
func ToDomainLegs(legs []LegDTO) []domain.LegOfferSet {
	out := make([]domain.LegOfferSet, len(legs))
	for i := range legs {
		offers := make([]domain.Offer, len(legs[i].Offers))
		for j := range legs[i].Offers {
			offers[j] = toDomainOffer(&legs[i].Offers[j])
		}
		out[i] = domain.LegOfferSet{
			Label:  legs[i].Label,
			Offers: offers,
		}
	}
	return out
}

// toDomainOffer maps one supplied fare onto a domain.Offer. Dates that do
// not parse are left zero; ingestion screening then drops those offers and
// counts them instead of failing the whole run.
func toDomainOffer(dto *OfferDTO) domain.Offer {
	o := domain.Offer{
		Origin:          strings.ToUpper(strings.TrimSpace(dto.Origin)),
		Destination:     strings.ToUpper(strings.TrimSpace(dto.Destination)),
		Price:           dto.Price,
		PriceConfidence: domain.PriceConfidence(strings.ToLower(dto.PriceConfidence)),
		Airline:         dto.Airline,
		DepartureTime:   dto.DepartureTime,
		ArrivalTime:     dto.ArrivalTime,
		DurationMinutes: dto.DurationMinutes,
		Stops:           dto.Stops,
		Provider:        dto.Provider,
	}

	if d, err := timeutil.ParseDate(dto.DepartureDate); err == nil {
		o.DepartureDate = d
	}

	if dto.Return != nil {
		ret := &domain.ReturnLeg{
			Airline:         dto.Return.Airline,
			DepartureTime:   dto.Return.DepartureTime,
			ArrivalTime:     dto.Return.ArrivalTime,
			DurationMinutes: dto.Return.DurationMinutes,
			Stops:           dto.Return.Stops,
		}
		if d, err := timeutil.ParseDate(dto.Return.Date); err == nil {
			ret.Date = d
		}
		o.Return = ret
	}

	return o
}

// ToDomainPlanRequest converts a PlanTripRequest to a domain.PlanRequest,
// expanding date range specs into concrete candidate dates.
func ToDomainPlanRequest(r *PlanTripRequest) (domain.PlanRequest, error) {
	dates := make([]domain.SlotDates, len(r.Dates))
	for i := range r.Dates {
		departures, err := timeutil.ExpandDateSpecs(r.Dates[i].DepartureDates)
		if err != nil {
			return domain.PlanRequest{}, domain.WrapInvalidRequest("dates[%d].departureDates: %v", i, err)
		}
		returns, err := timeutil.ExpandDateSpecs(r.Dates[i].ReturnDates)
		if err != nil {
			return domain.PlanRequest{}, domain.WrapInvalidRequest("dates[%d].returnDates: %v", i, err)
		}
		dates[i] = domain.SlotDates{
			DepartureDates: departures,
			ReturnDates:    returns,
		}
	}

	return domain.PlanRequest{
		Trip: ToDomainTripRequest(&r.TripRulesRequest),
		Route: domain.Route{
			Origins:   r.Route.Origins,
			Stopover1: r.Route.Stopover1,
			Stopover2: r.Route.Stopover2,
		},
		Dates: dates,
	}, nil
}
