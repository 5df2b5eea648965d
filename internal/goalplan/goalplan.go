// Package goalplan implements the goal lattice, status state machine, and
// plan/action template library described in design doc Section 4.6 and
// Section 4.1 step 6: a flat task-queue pattern generalized to a
// parent/subgoal tree with an explicit status machine, using a
// keyword-to-template dispatch idiom for plan formation.
package goalplan

import (
	"strings"

	"github.com/talgya/tavern-cognition/internal/boundary"
	"github.com/talgya/tavern-cognition/internal/telemetry"
)

// Status enumerates a goal's lifecycle state.
type Status uint8

const (
	Pending Status = iota
	Active
	Achieved
	Failed
	Abandoned
	Blocked
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Active:
		return "ACTIVE"
	case Achieved:
		return "ACHIEVED"
	case Failed:
		return "FAILED"
	case Abandoned:
		return "ABANDONED"
	case Blocked:
		return "BLOCKED"
	default:
		return "UNKNOWN"
	}
}

// IsComplete reports whether s is a terminal-for-selection state.
func (s Status) IsComplete() bool {
	return s == Achieved || s == Failed || s == Abandoned
}

// Kind enumerates the coarse purpose of a goal.
type Kind uint8

const (
	Survival Kind = iota
	Achievement
	Maintenance
	Social
	Exploration
	Avoidance
)

// validTransitions enumerates the allowed Status state machine edges, per
// design doc Section 4.6. BLOCKED is reversible back to ACTIVE.
var validTransitions = map[Status]map[Status]bool{
	Pending: {Active: true},
	Active:  {Achieved: true, Failed: true, Abandoned: true, Blocked: true},
	Blocked: {Active: true},
}

// Goal is one node in an agent's desire tree.
type Goal struct {
	GoalID          string
	Description     string
	Kind            Kind
	Priority        float64
	Status          Status
	SuccessCond     string
	Deadline        *float64
	MotivatedBy     []string
	ParentID        string
	SubgoalIDs      []string
	CreatedAt       float64
	StartedAt       *float64
	CompletedAt     *float64
	Progress        float64
}

// Transition attempts to move g to next, emitting ConflictingUpdate
// telemetry and leaving state untouched if the edge is not allowed.
func (g *Goal) Transition(next Status, now float64, tele *telemetry.Sink) bool {
	if g.Status == next {
		return true
	}
	allowed := validTransitions[g.Status]
	if !allowed[next] {
		tele.Emit(telemetry.Event{
			Component: "goalplan",
			Kind:      telemetry.ConflictingUpdate,
			Detail:    g.GoalID + ": " + g.Status.String() + "->" + next.String(),
		})
		return false
	}
	g.Status = next
	switch next {
	case Active:
		if g.StartedAt == nil {
			t := now
			g.StartedAt = &t
		}
	case Achieved:
		g.Progress = 1
		t := now
		g.CompletedAt = &t
	case Failed, Abandoned:
		t := now
		g.CompletedAt = &t
	}
	return true
}

// Urgency returns max(priority, deadlineFactor) where deadlineFactor is
// 1-time_left/24h when time_left<24h, else 0; overdue deadlines force 1.
func (g *Goal) Urgency(now float64) float64 {
	if g.Deadline == nil {
		return g.Priority
	}
	timeLeft := *g.Deadline - now
	if timeLeft <= 0 {
		return 1
	}
	var deadlineFactor float64
	if timeLeft < 24 {
		deadlineFactor = 1 - timeLeft/24.0
	}
	if deadlineFactor > g.Priority {
		return deadlineFactor
	}
	return g.Priority
}

// matchesDescription reports whether an existing open goal is a semantic
// duplicate of candidate description, via substring match per design doc
// Section 9's dedup-against-open-goals-only resolution.
func matchesDescription(goals []*Goal, description string) bool {
	for _, g := range goals {
		if g.Status.IsComplete() {
			continue
		}
		if strings.Contains(g.Description, description) || strings.Contains(description, g.Description) {
			return true
		}
	}
	return false
}

// EnsureOpen returns an existing open goal whose description contains
// description, or creates and returns a new one if no open goal matches.
// When an open goal's description is instead contained in description, no
// goal is created and the returned goal is nil.
func EnsureOpen(goals []*Goal, newID func() string, description string, kind Kind, priority float64, motivatedBy []string, now float64) ([]*Goal, *Goal) {
	for _, g := range goals {
		if !g.Status.IsComplete() && strings.Contains(g.Description, description) {
			return goals, g
		}
	}
	if matchesDescription(goals, description) {
		return goals, nil
	}
	g := &Goal{
		GoalID:      newID(),
		Description: description,
		Kind:        kind,
		Priority:    priority,
		Status:      Pending,
		MotivatedBy: motivatedBy,
		CreatedAt:   now,
	}
	return append(goals, g), g
}

// SelectNext picks the highest-urgency open goal, tie-broken by earlier
// CreatedAt, among PENDING/ACTIVE goals whose deadline, if any, has not
// passed.
func SelectNext(goals []*Goal, now float64) *Goal {
	var best *Goal
	var bestUrgency float64
	for _, g := range goals {
		if g.Status != Pending && g.Status != Active {
			continue
		}
		if g.Deadline != nil && now > *g.Deadline {
			continue
		}
		u := g.Urgency(now)
		if best == nil || u > bestUrgency || (u == bestUrgency && g.CreatedAt < best.CreatedAt) {
			best = g
			bestUrgency = u
		}
	}
	return best
}

// Plan is an ordered, cursor-tracked sequence of actions bound to a goal.
type Plan struct {
	PlanID    string
	GoalID    string
	Actions   []boundary.Action
	CreatedAt float64
	Confidence float64
	Cursor    int
	Executing bool
}

// IsComplete reports whether the plan has exhausted its action list.
func (p *Plan) IsComplete() bool {
	return p.Cursor >= len(p.Actions)
}

// Next returns the plan's current action and advances the cursor, or
// returns ok=false if the plan is already complete.
func (p *Plan) Next() (boundary.Action, bool) {
	if p.IsComplete() {
		return boundary.Action{}, false
	}
	a := p.Actions[p.Cursor]
	p.Cursor++
	return a, true
}

// template is one fixed keyword-triggered plan template.
type template struct {
	keywords []string
	build    func(planID string) []boundary.Action
}

var templates = []template{
	{
		keywords: []string{"food"},
		build: func(planID string) []boundary.Action {
			return []boundary.Action{
				{ActionID: planID + "-0", Command: "status", Description: "check hunger status"},
				{ActionID: planID + "-1", Command: "buy bread", Description: "purchase food"},
			}
		},
	},
	{
		keywords: []string{"rest"},
		build: func(planID string) []boundary.Action {
			return []boundary.Action{
				{ActionID: planID + "-0", Command: "find room", Description: "locate a place to rest"},
				{ActionID: planID + "-1", Command: "sleep", Description: "rest"},
			}
		},
	},
	{
		keywords: []string{"connect", "social"},
		build: func(planID string) []boundary.Action {
			return []boundary.Action{
				{ActionID: planID + "-0", Command: "look", Description: "find someone to talk to"},
				{ActionID: planID + "-1", Command: "interact talk", Description: "start a conversation"},
			}
		},
	},
	{
		keywords: []string{"explore", "learn"},
		build: func(planID string) []boundary.Action {
			return []boundary.Action{
				{ActionID: planID + "-0", Command: "read notice board", Description: "look for new information"},
				{ActionID: planID + "-1", Command: "explore", Description: "wander and observe"},
			}
		},
	},
	{
		keywords: []string{"accomplish", "task"},
		build: func(planID string) []boundary.Action {
			return []boundary.Action{
				{ActionID: planID + "-0", Command: "work clean_tables", Description: "perform a task"},
			}
		},
	},
}

// FormPlan deterministically derives an ordered action list from a goal's
// description and kind via the fixed keyword-template library. Returns nil
// if no template's keywords match; callers should fall back to an idle
// action in that case, per design doc Section 4.1's failure semantics.
func FormPlan(planID string, description string, confidence, now float64) *Plan {
	lower := strings.ToLower(description)
	for _, t := range templates {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return &Plan{
					PlanID:     planID,
					Actions:    t.build(planID),
					CreatedAt:  now,
					Confidence: confidence,
					Executing:  true,
				}
			}
		}
	}
	return nil
}
