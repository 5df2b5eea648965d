// Package agent defines the Agent type that wires together every
// cognitive subsystem — needs, emotions, beliefs, memory, goals, and
// plans — into the single unit the kernel steps each tick. A flat
// struct of subsystems with json tagging, replacing economic/
// demographic fields (wealth, occupation, faction) with the BDI
// cognitive fields this core requires.
package agent

import (
	"strconv"

	"github.com/talgya/tavern-cognition/internal/belief"
	"github.com/talgya/tavern-cognition/internal/emotion"
	"github.com/talgya/tavern-cognition/internal/goalplan"
	"github.com/talgya/tavern-cognition/internal/memory"
	"github.com/talgya/tavern-cognition/internal/needs"
)

// Value is one named value-weight pair in a Personality, e.g.
// ("fairness", 0.9). Note is a free-text gloss carried over from the
// source's narrative value descriptions.
type Value struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Note   string  `json:"note,omitempty"`
}

// Personality holds the stable traits that condition idle behavior and the
// social graph's reaction to observed actions (e.g., "values fairness").
type Personality struct {
	Extraverted bool    `json:"extraverted"`
	Open        bool    `json:"open"`
	Values      []Value `json:"values"`
}

// ValueWeight returns the weight an agent places on named value, or 0 if
// unset.
func (p Personality) ValueWeight(name string) float64 {
	for _, v := range p.Values {
		if v.Name == name {
			return v.Weight
		}
	}
	return 0
}

// ValuesMap flattens Personality.Values into the map shape the social
// package's ObserveAction rules expect.
func (p Personality) ValuesMap() map[string]float64 {
	m := make(map[string]float64, len(p.Values))
	for _, v := range p.Values {
		m[v.Name] = v.Weight
	}
	return m
}

// Agent is one autonomous unit in the simulation: its needs, emotions,
// beliefs, memories, and goal/plan state, plus the bookkeeping the kernel
// needs to run a deterministic cycle over them.
type Agent struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Personality Personality `json:"personality"`

	Needs  *needs.Ladder   `json:"needs"`
	Drives []*needs.Drive  `json:"drives"`

	Emotions *emotion.Set  `json:"emotions"`
	Mood     *emotion.Mood `json:"mood"`

	Beliefs *belief.System `json:"beliefs"`

	Episodic *memory.Episodic `json:"-"`
	Semantic *memory.Semantic `json:"-"`

	Goals []*goalplan.Goal `json:"goals"`

	ActiveGoalID string         `json:"active_goal_id,omitempty"`
	ActivePlan   *goalplan.Plan `json:"active_plan,omitempty"`

	GameTime float64 `json:"game_time"`

	goalSeq int
	planSeq int
}

// Config bundles the tunables New needs to size an agent's subsystems.
type Config struct {
	NeedsDecayOverrides map[string]float64
	MemoryCapacity      int
}

// New constructs an Agent with freshly initialized subsystems.
func New(id, name string, personality Personality, cfg Config) *Agent {
	return &Agent{
		ID:          id,
		Name:        name,
		Personality: personality,
		Needs:       needs.NewLadder(cfg.NeedsDecayOverrides),
		Drives:      needs.DefaultDrives(),
		Emotions:    emotion.NewSet(),
		Mood:        emotion.NewMood(),
		Beliefs:     belief.NewSystem(),
		Episodic:    memory.NewEpisodic(cfg.MemoryCapacity),
		Semantic:    memory.NewSemantic(),
	}
}

// NextGoalID returns a deterministic, agent-scoped goal id. Determinism
// here is what lets tick determinism (design doc Section 8 property 5)
// hold without reaching for a random or wall-clock-seeded id generator.
func (a *Agent) NextGoalID() string {
	a.goalSeq++
	return a.ID + "-goal-" + strconv.Itoa(a.goalSeq)
}

// NextPlanID returns a deterministic, agent-scoped plan id.
func (a *Agent) NextPlanID() string {
	a.planSeq++
	return a.ID + "-plan-" + strconv.Itoa(a.planSeq)
}

// ActiveGoal returns the agent's currently active goal, or nil.
func (a *Agent) ActiveGoal() *goalplan.Goal {
	if a.ActiveGoalID == "" {
		return nil
	}
	for _, g := range a.Goals {
		if g.GoalID == a.ActiveGoalID {
			return g
		}
	}
	return nil
}
