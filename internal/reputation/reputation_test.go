package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGossipMatchesScenario(t *testing.T) {
	n := NewNetwork()
	o := n.Opinion("O", "P", Trustworthiness)
	o.Score = 0.6
	o.Confidence = 0.7

	listenerOp := n.Opinion("L", "P", Trustworthiness)
	assert.Equal(t, 0.0, listenerOp.Score)
	assert.Equal(t, 0.1, listenerOp.Confidence)

	n.RecordGossip("L", "P", Trustworthiness, 0.6, 0.5, 10)

	assert.InDelta(t, 0.03, listenerOp.Score, 1e-9)
	assert.InDelta(t, 0.1, listenerOp.Confidence, 1e-9)
}

func TestWitnessBoostsConfidence(t *testing.T) {
	o := &Opinion{Confidence: 0.4}
	o.Witness(0.5, "saw them help", 1.0)
	assert.InDelta(t, 0.7, o.Confidence, 1e-9)
}

func TestScoreStaysInRange(t *testing.T) {
	o := &Opinion{Score: 0.9, Confidence: 1.0}
	for i := 0; i < 50; i++ {
		o.Witness(2.0, "extreme", float64(i))
	}
	assert.LessOrEqual(t, o.Score, 1.0)
}

func TestOverallOpinionWeightedMean(t *testing.T) {
	n := NewNetwork()
	a := n.Opinion("O", "P", Trustworthiness)
	a.Score = 0.8
	a.Confidence = 0.5
	b := n.Opinion("O", "P", Generosity)
	b.Score = 0.2
	b.Confidence = 0.5

	overall := n.OverallOpinion("O", "P")
	assert.InDelta(t, 0.5, overall, 1e-9)
}

func TestStrongestOpinionPicksHighestProduct(t *testing.T) {
	n := NewNetwork()
	weak := n.Opinion("O", "P", Generosity)
	weak.Score = 0.9
	weak.Confidence = 0.1

	strong := n.Opinion("O", "P", Trustworthiness)
	strong.Score = 0.6
	strong.Confidence = 0.7

	aspect, _, ok := n.StrongestOpinion("O", "P")
	assert.True(t, ok)
	assert.Equal(t, Trustworthiness, aspect)
}

func TestGossipFrequencyScaling(t *testing.T) {
	assert.InDelta(t, 0.45, GossipFrequency(30), 1e-9)
	assert.InDelta(t, 0.09, GossipFrequency(1), 1e-9)
	assert.InDelta(t, 0.3, GossipFrequency(10), 1e-9)
}

func TestActionAspectDeltas(t *testing.T) {
	deltas := ActionAspectDeltas("help_npc")
	assert.InDelta(t, 0.3, deltas[Generosity], 1e-9)
	assert.InDelta(t, 0.2, deltas[Trustworthiness], 1e-9)
	assert.Nil(t, ActionAspectDeltas("unknown_action"))
}
