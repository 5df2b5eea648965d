package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(seed uint64, n int) []float64 {
	s := New(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Float64()
	}
	return out
}

func TestDeterministicSameSeed(t *testing.T) {
	a := sequence(42, 20)
	b := sequence(42, 20)
	assert.Equal(t, a, b)
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := sequence(1, 20)
	b := sequence(2, 20)
	assert.NotEqual(t, a, b)
}

func TestPickEmpty(t *testing.T) {
	s := New(7)
	_, ok := Pick(s, []string{})
	assert.False(t, ok)
}

func TestPickDeterministic(t *testing.T) {
	candidates := []string{"look", "wait", "work"}
	a, _ := Pick(New(3), candidates)
	b, _ := Pick(New(3), candidates)
	assert.Equal(t, a, b)
}

func TestBoolBounds(t *testing.T) {
	s := New(9)
	assert.False(t, s.Bool(0))
	assert.True(t, s.Bool(1))
}
