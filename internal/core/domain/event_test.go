package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashSource(t *testing.T) {
	h := HashSource("192.168.1.1")

	// SHA-256 hex digest, never the raw value.
	assert.Len(t, string(h), 64)
	assert.NotContains(t, string(h), "192.168")

	// Deterministic for the same input, distinct for different inputs.
	assert.Equal(t, h, HashSource("192.168.1.1"))
	assert.NotEqual(t, h, HashSource("192.168.1.2"))
}

func TestHashSourceEmpty(t *testing.T) {
	assert.Empty(t, HashSource(""))
}

func TestEffectiveWeight(t *testing.T) {
	// Priority 0 still contributes weight×1.
	assert.Equal(t, int64(2), Offer{Weight: 2, Priority: 0}.EffectiveWeight())
	assert.Equal(t, int64(6), Offer{Weight: 2, Priority: 2}.EffectiveWeight())
}
