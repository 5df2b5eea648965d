package goalplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talgya/tavern-cognition/internal/telemetry"
)

func TestTransitionValid(t *testing.T) {
	g := &Goal{Status: Pending}
	ok := g.Transition(Active, 1.0, nil)
	assert.True(t, ok)
	assert.Equal(t, Active, g.Status)
	assert.NotNil(t, g.StartedAt)
}

func TestTransitionInvalidEmitsTelemetry(t *testing.T) {
	tele := telemetry.NewSink(4)
	g := &Goal{Status: Achieved}
	ok := g.Transition(Active, 1.0, tele)
	assert.False(t, ok)
	assert.Equal(t, Achieved, g.Status)
	assert.Equal(t, 1, tele.Count(telemetry.ConflictingUpdate))
}

func TestBlockedReversibleToActive(t *testing.T) {
	g := &Goal{Status: Active}
	assert.True(t, g.Transition(Blocked, 1.0, nil))
	assert.True(t, g.Transition(Active, 2.0, nil))
}

func TestOverdueDeadlineUrgencyIsOne(t *testing.T) {
	deadline := 1.0
	g := &Goal{Priority: 0.2, Deadline: &deadline}
	assert.Equal(t, 1.0, g.Urgency(5.0))
}

func TestSelectNextTieBreakByCreation(t *testing.T) {
	g1 := &Goal{GoalID: "g1", Status: Active, Priority: 0.4, CreatedAt: 1.0}
	g2 := &Goal{GoalID: "g2", Status: Active, Priority: 0.4, CreatedAt: 2.0}
	best := SelectNext([]*Goal{g2, g1}, 10)
	assert.Equal(t, "g1", best.GoalID)
}

func TestEnsureOpenDedupesSubstring(t *testing.T) {
	var goals []*Goal
	goals, first := EnsureOpen(goals, func() string { return "g1" }, "seek food", Survival, 0.5, nil, 0)
	assert.NotNil(t, first)
	goals, second := EnsureOpen(goals, func() string { return "g2" }, "seek food", Survival, 0.6, nil, 1)
	assert.Len(t, goals, 1)
	assert.Equal(t, first, second)
}

func TestFormPlanFoodTemplate(t *testing.T) {
	p := FormPlan("p1", "satisfy hunger with food", 0.8, 0)
	assert.NotNil(t, p)
	a, ok := p.Next()
	assert.True(t, ok)
	assert.Equal(t, "status", a.Command)
	a2, _ := p.Next()
	assert.Equal(t, "buy bread", a2.Command)
	assert.True(t, p.IsComplete())
}

func TestFormPlanNoMatchReturnsNil(t *testing.T) {
	p := FormPlan("p1", "contemplate the void", 0.8, 0)
	assert.Nil(t, p)
}
