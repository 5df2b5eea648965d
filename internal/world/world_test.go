package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talgya/tavern-cognition/internal/agent"
	"github.com/talgya/tavern-cognition/internal/boundary"
	"github.com/talgya/tavern-cognition/internal/config"
	"github.com/talgya/tavern-cognition/internal/needs"
	"github.com/talgya/tavern-cognition/internal/telemetry"
)

func emptySnapshots(agentID string) boundary.WorldSnapshot {
	return boundary.WorldSnapshot{Location: "main_hall"}
}

func TestTickReturnsActionForEveryAgent(t *testing.T) {
	w := New(config.Default(), 7, nil)
	w.AddAgent(agent.New("b", "Bob", agent.Personality{}, agent.Config{MemoryCapacity: 10}))
	w.AddAgent(agent.New("a", "Alice", agent.Personality{}, agent.Config{MemoryCapacity: 10}))

	actions := w.Tick(1.0, emptySnapshots)
	assert.Len(t, actions, 2)
	assert.Contains(t, actions, "a")
	assert.Contains(t, actions, "b")
}

func TestAbandonGoalClearsActivePlan(t *testing.T) {
	w := New(config.Default(), 1, nil)
	a := agent.New("a1", "A", agent.Personality{}, agent.Config{MemoryCapacity: 10})
	a.Needs.Get(needs.Hunger).Level = 0.2
	w.AddAgent(a)

	w.Tick(1.0, emptySnapshots)
	goal := a.ActiveGoal()
	if goal == nil {
		t.Skip("no active goal emerged this tick")
	}
	w.AbandonGoal("a1", goal.GoalID)
	assert.Equal(t, "", a.ActiveGoalID)
	assert.Nil(t, a.ActivePlan)
}

func TestAbandonUnknownAgentEmitsTelemetry(t *testing.T) {
	w := New(config.Default(), 1, nil)
	w.AbandonGoal("ghost", "g1")
	require.Equal(t, 1, w.Telemetry.Count(telemetry.UnknownReference))
}
