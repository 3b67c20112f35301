package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
)

// benchLeg builds a pool of n distinct offers for one leg. Departure
// times are unique per offer so deduplication keeps the full pool.
func benchLeg(origin, dest, baseDate string, n int) domain.LegOfferSet {
	offers := make([]domain.Offer, n)
	for i := 0; i < n; i++ {
		o := makeOffer(origin, dest, baseDate, 150+float64(i%23)*7)
		o.DepartureDate = o.DepartureDate.AddDate(0, 0, i%5)
		o.DepartureTime = fmt.Sprintf("%02d:%02d", i/60%24, i%60)
		o.Stops = i % 3
		offers[i] = o
	}
	return domain.LegOfferSet{Offers: offers}
}

// BenchmarkOptimize benchmarks the full optimization pipeline with
// various pool sizes and shapes
func BenchmarkOptimize(b *testing.B) {
	ctx := context.Background()

	b.Run("two_slots_10x10", func(b *testing.B) {
		uc := NewTripOptimizeUseCase(nil, nil, nil, nil)
		legs := []domain.LegOfferSet{
			benchLeg("LHR", "HKG", "2026-02-05", 10),
			benchLeg("HKG", "LHR", "2026-02-15", 10),
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			uc.Optimize(ctx, legs, singleStopoverRequest())
		}
	})

	b.Run("two_slots_50x50", func(b *testing.B) {
		uc := NewTripOptimizeUseCase(nil, nil, nil, nil)
		legs := []domain.LegOfferSet{
			benchLeg("LHR", "HKG", "2026-02-05", 50),
			benchLeg("HKG", "LHR", "2026-02-15", 50),
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			uc.Optimize(ctx, legs, singleStopoverRequest())
		}
	})

	b.Run("three_slots_15x15x15", func(b *testing.B) {
		uc := NewTripOptimizeUseCase(nil, nil, nil, nil)
		legs := []domain.LegOfferSet{
			benchLeg("LHR", "HKG", "2026-02-05", 15),
			benchLeg("HKG", "SYD", "2026-02-12", 15),
			benchLeg("SYD", "LHR", "2026-02-24", 15),
		}
		req := domain.TripRequest{
			Topology:    domain.TopologyDoubleStopover,
			Constraints: domain.Constraints{MinStayDays: []int{4, 10}},
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			uc.Optimize(ctx, legs, req)
		}
	})

	b.Run("single_worker_50x50", func(b *testing.B) {
		uc := NewTripOptimizeUseCase(nil, nil, nil, &Config{Workers: 1})
		legs := []domain.LegOfferSet{
			benchLeg("LHR", "HKG", "2026-02-05", 50),
			benchLeg("HKG", "LHR", "2026-02-15", 50),
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			uc.Optimize(ctx, legs, singleStopoverRequest())
		}
	})

	b.Run("eight_workers_50x50", func(b *testing.B) {
		uc := NewTripOptimizeUseCase(nil, nil, nil, &Config{Workers: 8})
		legs := []domain.LegOfferSet{
			benchLeg("LHR", "HKG", "2026-02-05", 50),
			benchLeg("HKG", "LHR", "2026-02-15", 50),
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			uc.Optimize(ctx, legs, singleStopoverRequest())
		}
	})
}

// BenchmarkDeduplicate benchmarks offer pool deduplication
func BenchmarkDeduplicate(b *testing.B) {
	// Every extraction appears twice under different providers.
	offers := make([]domain.Offer, 200)
	for i := 0; i < 200; i++ {
		o := makeOffer("LHR", "HKG", "2026-02-05", 150+float64(i%100))
		o.DepartureTime = fmt.Sprintf("%02d:%02d", (i%100)/60, (i%100)%60)
		if i >= 100 {
			o.Provider = "dealhawk"
		}
		offers[i] = o
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Deduplicate(offers)
	}
}
