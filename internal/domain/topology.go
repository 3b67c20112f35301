package domain

import (
	"fmt"
	"time"
)

// TopologyKind identifies a supported trip shape. Each kind fixes how many
// offers an itinerary selects, whether those offers are one-way or
// round-trip fares, and which gaps between flown segments are stopovers
// subject to minimum-stay checks. Everything downstream of the enumerator
// is topology-agnostic: it only sees ordered boundary dates and stopover
// gap indexes.
type TopologyKind string

const (
	// TopologySingleStopover is origin > stopover1 > origin on two one-way fares.
	TopologySingleStopover TopologyKind = "single_stopover"

	// TopologyDoubleStopover is origin > stopover1 > stopover2 > origin on
	// three one-way fares, returning directly from the second stopover.
	TopologyDoubleStopover TopologyKind = "double_stopover"

	// TopologyRoundTheWorld is origin > stopover1 > stopover2 > stopover1 >
	// origin on four one-way fares. The second visit to stopover1 is a
	// connection, not a stay, so only chronology is checked there.
	TopologyRoundTheWorld TopologyKind = "round_the_world"

	// TopologyRoundTripSingle is origin <> stopover1 on one round-trip fare.
	TopologyRoundTripSingle TopologyKind = "round_trip_single"

	// TopologyRoundTripNested is origin <> stopover1 plus stopover1 <>
	// stopover2 on two round-trip fares. The inner trip nests inside the
	// outer one, so segments fly in the order: out to stopover1, out to
	// stopover2, back to stopover1, back to origin.
	TopologyRoundTripNested TopologyKind = "round_trip_nested"
)

// topologyShapes fixes the structural numbers per kind: offers selected per
// itinerary, flown segments, and whether slots carry round-trip fares.
var topologyShapes = map[TopologyKind]struct {
	slots     int
	segments  int
	roundTrip bool
	stopovers int
}{
	TopologySingleStopover:  {slots: 2, segments: 2, roundTrip: false, stopovers: 1},
	TopologyDoubleStopover:  {slots: 3, segments: 3, roundTrip: false, stopovers: 2},
	TopologyRoundTheWorld:   {slots: 4, segments: 4, roundTrip: false, stopovers: 2},
	TopologyRoundTripSingle: {slots: 1, segments: 2, roundTrip: true, stopovers: 1},
	TopologyRoundTripNested: {slots: 2, segments: 4, roundTrip: true, stopovers: 2},
}

// IsValid returns true if the kind is a supported trip shape.
func (k TopologyKind) IsValid() bool {
	_, ok := topologyShapes[k]
	return ok
}

// ParseTopologyKind parses a topology name, wrapping ErrUnknownTopology
// for unsupported values.
func ParseTopologyKind(s string) (TopologyKind, error) {
	k := TopologyKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTopology, s)
	}
	return k, nil
}

// Slots returns how many offers an itinerary selects, one per leg pool.
func (k TopologyKind) Slots() int {
	return topologyShapes[k].slots
}

// Segments returns how many segments are actually flown. Round-trip fares
// cover two segments each.
func (k TopologyKind) Segments() int {
	return topologyShapes[k].segments
}

// RequiresRoundTrip returns true if every slot must carry a round-trip fare.
func (k TopologyKind) RequiresRoundTrip() bool {
	return topologyShapes[k].roundTrip
}

// Stopovers returns how many stopovers are subject to minimum-stay checks.
func (k TopologyKind) Stopovers() int {
	return topologyShapes[k].stopovers
}

// StopoverGaps returns the indexes of boundary-date gaps that are stopover
// stays. Gap i sits between boundary dates i and i+1. Gaps not listed here
// (the revisit hop in four-segment shapes) only need chronological order.
func (k TopologyKind) StopoverGaps() []int {
	switch topologyShapes[k].stopovers {
	case 1:
		return []int{0}
	case 2:
		return []int{0, 1}
	default:
		return nil
	}
}

// ValidateSlotOffer checks that an offer fits a slot of this topology.
// One-way shapes reject round-trip fares and vice versa, so a mixed pool
// never produces a half-used fare.
func (k TopologyKind) ValidateSlotOffer(slot int, o *Offer) error {
	if slot < 0 || slot >= k.Slots() {
		return fmt.Errorf("slot %d out of range for %s", slot, k)
	}
	if k.RequiresRoundTrip() && !o.IsRoundTrip() {
		return fmt.Errorf("slot %d of %s requires a round-trip fare", slot, k)
	}
	if !k.RequiresRoundTrip() && o.IsRoundTrip() {
		return fmt.Errorf("slot %d of %s requires a one-way fare", slot, k)
	}
	return nil
}

// BoundaryDates maps one chosen offer per slot to the departure dates of
// every flown segment, in the order the segments are flown. For nested
// round trips the inner fare's dates interleave between the outer fare's
// outbound and return.
func (k TopologyKind) BoundaryDates(offers []Offer) ([]time.Time, error) {
	shape, ok := topologyShapes[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, string(k))
	}
	if len(offers) != shape.slots {
		return nil, fmt.Errorf("%s needs %d offers, got %d", k, shape.slots, len(offers))
	}
	for i := range offers {
		if err := k.ValidateSlotOffer(i, &offers[i]); err != nil {
			return nil, err
		}
	}

	switch k {
	case TopologySingleStopover, TopologyDoubleStopover, TopologyRoundTheWorld:
		dates := make([]time.Time, len(offers))
		for i := range offers {
			dates[i] = offers[i].DepartureDate
		}
		return dates, nil

	case TopologyRoundTripSingle:
		return []time.Time{
			offers[0].DepartureDate,
			offers[0].Return.Date,
		}, nil

	case TopologyRoundTripNested:
		return []time.Time{
			offers[0].DepartureDate,
			offers[1].DepartureDate,
			offers[1].Return.Date,
			offers[0].Return.Date,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, string(k))
}

// StopoverAirports returns the airport at each minimum-stay stopover, in
// stopover order, derived from the chosen offers.
func (k TopologyKind) StopoverAirports(offers []Offer) []string {
	if len(offers) != k.Slots() {
		return nil
	}
	switch k {
	case TopologySingleStopover, TopologyRoundTripSingle:
		return []string{offers[0].Destination}
	case TopologyDoubleStopover, TopologyRoundTheWorld, TopologyRoundTripNested:
		return []string{offers[0].Destination, offers[1].Destination}
	}
	return nil
}

// SupportedTopologies lists all valid kinds in a stable order, for
// documentation and error messages.
func SupportedTopologies() []TopologyKind {
	return []TopologyKind{
		TopologySingleStopover,
		TopologyDoubleStopover,
		TopologyRoundTheWorld,
		TopologyRoundTripSingle,
		TopologyRoundTripNested,
	}
}
