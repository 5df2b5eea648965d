package belief

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateSupportsIncreasesConfidence(t *testing.T) {
	b := &Belief{Confidence: 0.5}
	b.Update(true, "saw it happen", 0.1, 1.0)
	assert.InDelta(t, 0.525, b.Confidence, 1e-9)
	assert.Equal(t, 1, b.UpdateCount)
}

func TestUpdateContradictsDecreasesConfidence(t *testing.T) {
	b := &Belief{Confidence: 0.5}
	b.Update(false, "proven wrong", 0.1, 1.0)
	assert.InDelta(t, 0.475, b.Confidence, 1e-9)
}

func TestConfidenceNeverEscapesRange(t *testing.T) {
	b := &Belief{Confidence: 0.99}
	for i := 0; i < 100; i++ {
		b.Update(true, "more evidence", 1.0, 1.0)
	}
	assert.LessOrEqual(t, b.Confidence, 1.0)

	b2 := &Belief{Confidence: 0.01}
	for i := 0; i < 100; i++ {
		b2.Update(false, "more counter-evidence", 1.0, 1.0)
	}
	assert.GreaterOrEqual(t, b2.Confidence, 0.0)
}

func TestEvidenceListBounded(t *testing.T) {
	b := &Belief{}
	for i := 0; i < 50; i++ {
		b.Update(true, "evidence", 0.1, 1.0)
	}
	assert.LessOrEqual(t, len(b.Supporting), 32)
}

func TestStrongWeak(t *testing.T) {
	assert.True(t, (&Belief{Confidence: 0.7}).IsStrong())
	assert.True(t, (&Belief{Confidence: 0.3}).IsWeak())
	assert.False(t, (&Belief{Confidence: 0.5}).IsStrong())
}

func TestObserveContentTraitDeltas(t *testing.T) {
	tom := NewTheoryOfMind("bob")
	tom.ObserveContent("bob refused to help the beggar")
	assert.InDelta(t, 0.0, tom.PerceivedTraits["helpful"], 1e-9)
	assert.InDelta(t, 0.01, tom.ModelConfidence, 1e-9)
}

func TestObserveContentAskedAbout(t *testing.T) {
	tom := NewTheoryOfMind("bob")
	tom.ObserveContent("bob asked about the missing caravan")
	assert.Contains(t, tom.PerceivedGoals, "learn about the missing caravan")
}

func TestModelConfidenceCap(t *testing.T) {
	tom := NewTheoryOfMind("bob")
	for i := 0; i < 200; i++ {
		tom.ObserveContent("bob lied again")
	}
	assert.LessOrEqual(t, tom.ModelConfidence, 0.9)
}

func TestTrustEstimate(t *testing.T) {
	tom := NewTheoryOfMind("bob")
	tom.ModelConfidence = 0
	assert.InDelta(t, 0.5, tom.TrustEstimate(), 1e-9)

	tom.ModelConfidence = 1
	tom.PerceivedTraits["trustworthy"] = 0.8
	assert.InDelta(t, 0.8, tom.TrustEstimate(), 1e-9)
}

func TestStrongestPicksArgmax(t *testing.T) {
	s := NewSystem()
	s.Add(&Belief{Subject: "weather", Content: "sunny", Confidence: 0.4})
	s.Add(&Belief{Subject: "weather", Content: "rain coming", Confidence: 0.9})
	best := s.Strongest("weather")
	assert.Equal(t, "rain coming", best.Content)
}
