package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerClampsAtOne(t *testing.T) {
	e := NewEmotion(Joy)
	e.TriggerWith(1.5, "test", 0)
	assert.Equal(t, 1.0, e.Intensity)
}

func TestDecayZeroDtNoop(t *testing.T) {
	e := NewEmotion(Joy)
	e.Intensity = 0.5
	e.Decay(0)
	assert.Equal(t, 0.5, e.Intensity)
}

func TestIsActiveThreshold(t *testing.T) {
	e := NewEmotion(Joy)
	e.Intensity = 0.1
	assert.True(t, e.IsActive())
	e.Intensity = 0.099
	assert.False(t, e.IsActive())
}

func TestMoodMovesTowardTarget(t *testing.T) {
	m := NewMood()
	m.ChangeRate = 0.5
	joy := NewEmotion(Joy)
	joy.Intensity = 1.0
	m.Update([]*Emotion{joy})
	assert.InDelta(t, 0.5, m.Valence, 1e-9)
}

func TestInfluencePerception(t *testing.T) {
	m := &Mood{Valence: 0.5}
	assert.InDelta(t, 0.6, m.InfluencePerception(0.5), 1e-9)
}

func TestAppraiseJoyRoundtrip(t *testing.T) {
	s := NewSet()
	Appraise(s, Positive, 0.0, 0.6, "good news", 0)
	joy := s.Get(Joy)
	assert.GreaterOrEqual(t, joy.Intensity, 0.3)
	assert.LessOrEqual(t, joy.Intensity, 0.3+0.7*0.6)
}

func TestAppraiseSurpriseOnUnexpected(t *testing.T) {
	s := NewSet()
	Appraise(s, Positive, 0.8, 0.5, "shock", 0)
	assert.True(t, s.Get(Surprise).IsActive())
}

func TestRiskToleranceBounds(t *testing.T) {
	s := NewSet()
	s.Get(Fear).Intensity = 1.0
	assert.InDelta(t, 0.7, RiskTolerance(s), 1e-9)

	s2 := NewSet()
	assert.InDelta(t, 1.0, RiskTolerance(s2), 1e-9)
}

func TestSocialModifiersClamp(t *testing.T) {
	s := NewSet()
	s.Get(Joy).Intensity = 1.0
	mods := Social(s)
	assert.LessOrEqual(t, mods.Friendliness, 1.5)
	assert.GreaterOrEqual(t, mods.Friendliness, 0.5)
}
