package usecase

import (
	"math/rand"
	"testing"

	"promo-engine/internal/core/domain"
)

// TestWeightedDrawDistribution draws many times from a fixed offer pool and
// checks the observed shares against the effective weights.
func TestWeightedDrawDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	offers := []domain.Offer{
		{ID: 1, Weight: 2, Priority: 0}, // effective weight 2
		{ID: 2, Weight: 1, Priority: 0}, // effective weight 1
		{ID: 3, Weight: 1, Priority: 0}, // effective weight 1
	}

	const draws = 10000
	counts := make([]int, len(offers))
	for i := 0; i < draws; i++ {
		j := pickOffer(rng, offers)
		if j < 0 {
			t.Fatalf("draw %d returned no offer", i)
		}
		counts[j]++
	}

	expected := []float64{0.50, 0.25, 0.25}
	for i, want := range expected {
		got := float64(counts[i]) / draws
		if got < want-0.03 || got > want+0.03 {
			t.Errorf("offer %d: share %.3f, want %.2f±0.03", offers[i].ID, got, want)
		}
	}
}

// TestWeightedDrawPriorityBoost checks that priority multiplies the weight:
// weight 1 priority 1 must draw as often as weight 2 priority 0.
func TestWeightedDrawPriorityBoost(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	offers := []domain.Offer{
		{ID: 1, Weight: 1, Priority: 1},
		{ID: 2, Weight: 2, Priority: 0},
	}

	const draws = 10000
	counts := make([]int, len(offers))
	for i := 0; i < draws; i++ {
		counts[pickOffer(rng, offers)]++
	}

	got := float64(counts[0]) / draws
	if got < 0.47 || got > 0.53 {
		t.Errorf("boosted offer share %.3f, want 0.50±0.03", got)
	}
}

func TestWeightedDrawSkipsZeroWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	offers := []domain.Offer{
		{ID: 1, Weight: 0, Priority: 5},
		{ID: 2, Weight: 1, Priority: 0},
	}

	for i := 0; i < 1000; i++ {
		if j := pickOffer(rng, offers); j != 1 {
			t.Fatalf("draw %d picked index %d, want 1", i, j)
		}
	}
}

func TestWeightedDrawNothingDrawable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if j := pickOffer(rng, nil); j != -1 {
		t.Errorf("empty pool: got %d, want -1", j)
	}
	offers := []domain.Offer{{ID: 1, Weight: 0}, {ID: 2, Weight: -3}}
	if j := pickOffer(rng, offers); j != -1 {
		t.Errorf("all zero weight: got %d, want -1", j)
	}
}

func TestPickVariationUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	variations := []domain.Variation{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	const draws = 8000
	counts := make([]int, len(variations))
	for i := 0; i < draws; i++ {
		counts[pickVariation(rng, variations)]++
	}

	for i, c := range counts {
		got := float64(c) / draws
		if got < 0.22 || got > 0.28 {
			t.Errorf("variation %d: share %.3f, want 0.25±0.03", variations[i].ID, got)
		}
	}
}

func TestPickVariationEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if j := pickVariation(rng, nil); j != -1 {
		t.Errorf("got %d, want -1", j)
	}
}
