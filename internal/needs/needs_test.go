package needs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecayClampsAtZero(t *testing.T) {
	n := &Need{Level: 0.1, DecayPerHour: 1.0}
	n.Decay(1.0)
	assert.Equal(t, 0.0, n.Level)
}

func TestDecayZeroDtIsNoop(t *testing.T) {
	n := &Need{Level: 0.5, DecayPerHour: 1.0}
	n.Decay(0)
	assert.Equal(t, 0.5, n.Level)
}

func TestSatisfyClampsAtOne(t *testing.T) {
	n := &Need{Level: 0.95}
	n.Satisfy(0.5)
	assert.Equal(t, 1.0, n.Level)
}

func TestUrgency(t *testing.T) {
	n := &Need{Level: 0.2, UrgencyThreshold: 0.4}
	assert.InDelta(t, 0.5, n.Urgency(), 1e-9)

	satisfied := &Need{Level: 0.9, UrgencyThreshold: 0.4}
	assert.Equal(t, 0.0, satisfied.Urgency())
}

func TestCritical(t *testing.T) {
	n := &Need{Level: 0.1, CriticalThresh: 0.2}
	assert.True(t, n.IsCritical())
}

func TestLadderUrgentOrderIsDeterministic(t *testing.T) {
	l := NewLadder(nil)
	l.Get(Hunger).Level = 0.1
	l.Get(Thirst).Level = 0.1
	l.Get(Rest).Level = 0.1

	u1 := l.Urgent()
	u2 := l.Urgent()
	require.Equal(t, len(u1), len(u2))
	for i := range u1 {
		assert.Equal(t, u1[i].Kind, u2[i].Kind)
	}
}

func TestDecayRateOverride(t *testing.T) {
	l := NewLadder(map[string]float64{"HUNGER": 0.5})
	assert.Equal(t, 0.5, l.Get(Hunger).DecayPerHour)
}

func TestDriveActivation(t *testing.T) {
	l := NewLadder(nil)
	l.Get(Hunger).Level = 0.0
	l.Get(Hunger).UrgencyThreshold = 0.4
	d := &Drive{Name: "survival", Intensity: 1.0, SatisfiesNeeds: []Kind{Hunger}}
	assert.InDelta(t, 1.0, d.Activation(l), 1e-9)
}

func TestWellbeingWeighting(t *testing.T) {
	l := NewLadder(nil)
	for _, k := range AllKinds() {
		l.Get(k).Level = 1.0
	}
	assert.InDelta(t, 1.0, l.Wellbeing(), 1e-9)
}
