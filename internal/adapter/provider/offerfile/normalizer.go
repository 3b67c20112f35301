package offerfile

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/timeutil"
)

// rawOffer mirrors one record of a scraped fare dump. One-way and
// round-trip dumps share a file shape; a record with a return_date is
// treated as round-trip and read from the outbound_*/return_* fields.
type rawOffer struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	Price         float64 `json:"price"`
	Airline       string  `json:"airline"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	URL           string  `json:"url"`

	OutboundDate          string  `json:"outbound_date"`
	ReturnDate            string  `json:"return_date"`
	TotalPrice            float64 `json:"total_price"`
	OutboundAirline       string  `json:"outbound_airline"`
	ReturnAirline         string  `json:"return_airline"`
	OutboundDepartureTime string  `json:"outbound_departure_time"`
	OutboundArrivalTime   string  `json:"outbound_arrival_time"`
	OutboundDuration      string  `json:"outbound_duration"`
	OutboundStops         int     `json:"outbound_stops"`
	ReturnDepartureTime   string  `json:"return_departure_time"`
	ReturnArrivalTime     string  `json:"return_arrival_time"`
	ReturnDuration        string  `json:"return_duration"`
	ReturnStops           int     `json:"return_stops"`

	// PriceConfidence optionally overrides the shape's default
	PriceConfidence string `json:"price_confidence"`
}

// normalize converts raw dump records to domain offers. Records that do
// not survive normalization are skipped rather than failing the dump.
func normalize(provider string, records []rawOffer) []domain.Offer {
	result := make([]domain.Offer, 0, len(records))

	for _, r := range records {
		offer, err := normalizeOffer(provider, r)
		if err != nil {
			// Skip records that cannot be normalized
			continue
		}
		result = append(result, offer)
	}

	return result
}

// normalizeOffer converts a single dump record to a domain Offer.
func normalizeOffer(provider string, r rawOffer) (domain.Offer, error) {
	var offer domain.Offer

	if r.ReturnDate != "" {
		outDate, err := timeutil.ParseDate(r.OutboundDate)
		if err != nil {
			return domain.Offer{}, err
		}
		retDate, err := timeutil.ParseDate(r.ReturnDate)
		if err != nil {
			return domain.Offer{}, err
		}

		offer = domain.Offer{
			Origin:        normalizeAirport(r.Origin),
			Destination:   normalizeAirport(r.Destination),
			DepartureDate: outDate,
			// Round-trip list prices are "starting from" figures
			Price:           r.TotalPrice,
			PriceConfidence: confidence(r.PriceConfidence, domain.PriceApproximate),
			Airline:         strings.TrimSpace(r.OutboundAirline),
			DepartureTime:   normalizeClockTime(r.OutboundDepartureTime),
			ArrivalTime:     normalizeClockTime(r.OutboundArrivalTime),
			DurationMinutes: parseDurationMinutes(r.OutboundDuration),
			Stops:           r.OutboundStops,
			Provider:        provider,
			Return: &domain.ReturnLeg{
				Date:            retDate,
				Airline:         strings.TrimSpace(r.ReturnAirline),
				DepartureTime:   normalizeClockTime(r.ReturnDepartureTime),
				ArrivalTime:     normalizeClockTime(r.ReturnArrivalTime),
				DurationMinutes: parseDurationMinutes(r.ReturnDuration),
				Stops:           r.ReturnStops,
			},
		}
	} else {
		depDate, err := timeutil.ParseDate(r.DepartureDate)
		if err != nil {
			return domain.Offer{}, err
		}

		offer = domain.Offer{
			Origin:          normalizeAirport(r.Origin),
			Destination:     normalizeAirport(r.Destination),
			DepartureDate:   depDate,
			Price:           r.Price,
			PriceConfidence: confidence(r.PriceConfidence, domain.PriceExact),
			Airline:         strings.TrimSpace(r.Airline),
			DepartureTime:   normalizeClockTime(r.DepartureTime),
			ArrivalTime:     normalizeClockTime(r.ArrivalTime),
			DurationMinutes: parseDurationMinutes(r.Duration),
			Stops:           r.Stops,
			Provider:        provider,
		}
	}

	offer = offer.Normalized()
	if err := offer.Validate(); err != nil {
		return domain.Offer{}, err
	}
	return offer, nil
}

// normalizeAirport canonicalizes an airport code to uppercase IATA form.
func normalizeAirport(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// confidence maps the optional dump field to a PriceConfidence, falling
// back to the shape's default when absent or unknown.
func confidence(raw string, fallback domain.PriceConfidence) domain.PriceConfidence {
	c := domain.PriceConfidence(strings.ToLower(strings.TrimSpace(raw)))
	if c.IsValid() {
		return c
	}
	return fallback
}

// clockFormats lists the accepted dump time layouts. Scraped pages mix
// 12-hour and 24-hour renderings.
var clockFormats = []string{"15:04", "3:04 PM", "3:04PM"}

// normalizeClockTime canonicalizes a scraped clock string to HH:MM.
// Unparseable values become "" (unknown).
func normalizeClockTime(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	// Scraped pages separate the time from AM/PM with a narrow no-break space
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, " ", " ")

	for _, layout := range clockFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}
	return ""
}

var (
	durationHoursRegex   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	durationMinutesRegex = regexp.MustCompile(`(?i)(\d+)\s*m`)
)

// parseDurationMinutes converts scraped duration strings such as
// "13 hr 30 min" or "12h 15m" to total minutes. Unknown shapes yield 0.
func parseDurationMinutes(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	total := 0
	if m := durationHoursRegex.FindStringSubmatch(s); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil {
			total += hours * 60
		}
	}
	if m := durationMinutesRegex.FindStringSubmatch(s); m != nil {
		if mins, err := strconv.Atoi(m[1]); err == nil {
			total += mins
		}
	}
	return total
}
