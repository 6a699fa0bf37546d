package usecase

import (
	"math/rand"

	"promo-engine/internal/core/domain"
)

// randSource abstracts the random draws so tests can seed determinism. The
// default implementation delegates to the process-wide math/rand source,
// which is safe for concurrent use.
type randSource interface {
	Int63n(n int64) int64
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Int63n(n int64) int64 { return rand.Int63n(n) }
func (globalRand) Intn(n int) int       { return rand.Intn(n) }

// pickOffer performs a weighted random draw over the offers, proportional to
// each offer's effective weight. Offers with a non-positive weight are
// excluded from the draw. Returns the index of the chosen offer, or -1 when
// nothing is drawable.
func pickOffer(rng randSource, offers []domain.Offer) int {
	var total int64
	for _, o := range offers {
		if o.Weight > 0 {
			total += o.EffectiveWeight()
		}
	}
	if total <= 0 {
		return -1
	}

	n := rng.Int63n(total)
	var cum int64
	for i, o := range offers {
		if o.Weight <= 0 {
			continue
		}
		cum += o.EffectiveWeight()
		if n < cum {
			return i
		}
	}
	return -1
}

// pickVariation draws uniformly among the approved variations. Length and
// tone are informational only and never weight the draw.
func pickVariation(rng randSource, variations []domain.Variation) int {
	if len(variations) == 0 {
		return -1
	}
	return rng.Intn(len(variations))
}
