package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talgya/tavern-cognition/internal/goalplan"
)

func TestNewInitializesSubsystems(t *testing.T) {
	a := New("a1", "Gene", Personality{Extraverted: true}, Config{MemoryCapacity: 10})
	assert.NotNil(t, a.Needs)
	assert.NotNil(t, a.Emotions)
	assert.NotNil(t, a.Mood)
	assert.NotNil(t, a.Beliefs)
	assert.NotNil(t, a.Episodic)
	assert.NotNil(t, a.Semantic)
}

func TestGoalIDsAreDeterministicAndUnique(t *testing.T) {
	a := New("a1", "Gene", Personality{}, Config{})
	first := a.NextGoalID()
	second := a.NextGoalID()
	assert.NotEqual(t, first, second)
	assert.Equal(t, "a1-goal-1", first)
	assert.Equal(t, "a1-goal-2", second)
}

func TestActiveGoalLookup(t *testing.T) {
	a := New("a1", "Gene", Personality{}, Config{})
	g := &goalplan.Goal{GoalID: "g1"}
	a.Goals = append(a.Goals, g)
	a.ActiveGoalID = "g1"
	assert.Same(t, g, a.ActiveGoal())
}

func TestPersonalityValueWeight(t *testing.T) {
	p := Personality{Values: []Value{{Name: "fairness", Weight: 0.9}}}
	assert.InDelta(t, 0.9, p.ValueWeight("fairness"), 1e-9)
	assert.Equal(t, 0.0, p.ValueWeight("greed"))
}
