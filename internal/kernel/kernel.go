// Package kernel implements the agent cognitive cycle described in design
// doc Section 4.1: one deterministic step per agent per tick, threading a
// WorldSnapshot through time integration, perception, appraisal, goal
// maintenance, goal selection, plan maintenance, and execution, generalized
// from a settlement-wide tick cadence (OnTick/OnHour phase functions) down
// to a single-agent cognitive substep pipeline. The lexical appraisal
// heuristic and idle-action fallback follow a keyword-driven action
// selection style.
package kernel

import (
	"sort"
	"strings"

	"github.com/talgya/tavern-cognition/internal/agent"
	"github.com/talgya/tavern-cognition/internal/boundary"
	"github.com/talgya/tavern-cognition/internal/emotion"
	"github.com/talgya/tavern-cognition/internal/goalplan"
	"github.com/talgya/tavern-cognition/internal/memory"
	"github.com/talgya/tavern-cognition/internal/needs"
	"github.com/talgya/tavern-cognition/internal/rng"
	"github.com/talgya/tavern-cognition/internal/telemetry"
)

// perception is one tagged observation extracted from a WorldSnapshot.
type perception struct {
	kind    string // "location", "agent_present", "event"
	payload string
}

// Step runs one full cognitive cycle for a, given the current world
// snapshot and elapsed time, and returns the action it decided to take. The
// result is never nil: with no plan action available, the idle fallback is
// returned.
func Step(a *agent.Agent, snap boundary.WorldSnapshot, dt float64, source *rng.Source, tele *telemetry.Sink) *boundary.Action {
	integrateTime(a, dt)
	perceptions := perceive(snap)
	appraiseAndIntegrate(a, perceptions, snap)
	maintainGoals(a, tele)
	selectGoal(a, tele)
	maintainPlan(a)
	return execute(a, source)
}

// integrateTime is cognitive cycle step 1.
func integrateTime(a *agent.Agent, dt float64) {
	a.Needs.DecayAll(dt)
	a.Emotions.DecayAll(dt)
	a.Mood.Update(a.Emotions.Active())
	a.GameTime += dt
}

// perceive is cognitive cycle step 2.
func perceive(snap boundary.WorldSnapshot) []perception {
	var out []perception
	if snap.Location != "" {
		out = append(out, perception{kind: "location", payload: snap.Location})
	}
	for _, ag := range snap.AgentsPresent {
		out = append(out, perception{kind: "agent_present", payload: ag})
	}
	for _, ev := range snap.RecentEvents {
		out = append(out, perception{kind: "event", payload: ev})
	}
	return out
}

var positiveWords = []string{"help", "share", "give", "thank", "smile", "laugh", "celebrate", "gift"}
var negativeWords = []string{"steal", "lie", "attack", "threaten", "insult", "refuse", "betray", "curse"}

// lexicalValence is the crude keyword-counting heuristic design doc
// Section 9 explicitly permits substituting: deterministic and bounded to
// [-1,1], nothing more is promised.
func lexicalValence(content string) float64 {
	lower := strings.ToLower(content)
	var v float64
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			v += 0.3
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			v -= 0.3
		}
	}
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return v
}

// appraiseAndIntegrate is cognitive cycle step 3.
func appraiseAndIntegrate(a *agent.Agent, perceptions []perception, snap boundary.WorldSnapshot) {
	for _, p := range perceptions {
		switch p.kind {
		case "event", "agent_present":
			v := a.Mood.InfluencePerception(lexicalValence(p.payload))
			a.Episodic.Add(perceptionMemory(p.payload, v, snap.TimeHours))
			if p.kind == "agent_present" {
				a.Beliefs.ModelOf(p.payload)
			}
		case "location":
			a.Semantic.Set("current_location", p.payload, 0.9, snap.TimeHours)
		}
	}
}

// perceptionMemory builds the episodic memory record for a perception, per
// design doc Section 4.1 step 3 (importance 0.5, intensity |v|*0.5).
func perceptionMemory(content string, valence, now float64) *memory.Memory {
	return &memory.Memory{
		ID:                 memory.NewID(content, now),
		Kind:               memory.Episodic,
		Content:            content,
		Timestamp:          now,
		EmotionalValence:   valence,
		EmotionalIntensity: absf(valence) * 0.5,
		Importance:         0.5,
		LastAccessed:       now,
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// needGoalDescriptions maps a need kind to its goal-derived description
// template, per design doc Section 4.1 step 4.
var needGoalDescriptions = map[needs.Kind]string{
	needs.Hunger:      "find food to satisfy hunger",
	needs.Thirst:      "find drink to satisfy thirst",
	needs.Rest:        "find a place to rest",
	needs.Safety:      "seek safety",
	needs.Health:      "attend to health",
	needs.Belonging:   "connect with others to feel belonging",
	needs.Achievement: "accomplish a meaningful task",
	needs.Autonomy:    "assert autonomy",
	needs.Competence:  "accomplish a task to build competence",
	needs.Curiosity:   "explore and learn something new",
	needs.Respect:     "earn respect from others",
	needs.Intimacy:    "connect with others to feel intimacy",
	needs.Purpose:     "find a sense of purpose",
}

// driveGoalDescriptions maps a drive name to its goal-derived description,
// per design doc Section 4.1 step 4.
var driveGoalDescriptions = map[string]string{
	"survival":    "tend to survival needs",
	"affiliation": "connect with others to feel belonging",
	"mastery":     "accomplish a task to build competence",
	"autonomy":    "assert autonomy",
}

// maintainGoals is cognitive cycle step 4. Need-derived goals take
// precedence over drive-derived goals for the same purpose, per design
// doc Section 9 open question (ii): a drive goal is skipped whenever its
// description already matches an existing open goal (whether from a need
// or an earlier drive).
func maintainGoals(a *agent.Agent, tele *telemetry.Sink) {
	for _, k := range needs.AllKinds() {
		n := a.Needs.Get(k)
		if n == nil || !n.IsUrgent() {
			continue
		}
		desc, ok := needGoalDescriptions[k]
		if !ok {
			continue
		}
		newGoals, _ := goalplan.EnsureOpen(a.Goals, a.NextGoalID, desc, goalplan.Survival, n.Urgency(), []string{k.String()}, a.GameTime)
		a.Goals = newGoals
	}
	for _, d := range a.Drives {
		if !d.IsStronglyActivated(a.Needs) {
			continue
		}
		desc, ok := driveGoalDescriptions[d.Name]
		if !ok {
			continue
		}
		priority := d.Activation(a.Needs) * d.Intensity
		newGoals, _ := goalplan.EnsureOpen(a.Goals, a.NextGoalID, desc, goalplan.Maintenance, priority, []string{d.Name}, a.GameTime)
		a.Goals = newGoals
	}
	open := false
	for _, g := range a.Goals {
		if !g.Status.IsComplete() {
			open = true
			break
		}
	}
	if !open {
		tele.Emit(telemetry.Event{Component: "kernel", Kind: telemetry.Starvation, Detail: a.ID})
	}
}

// selectGoal is cognitive cycle step 5.
func selectGoal(a *agent.Agent, tele *telemetry.Sink) {
	active := a.ActiveGoal()
	if active != nil && !active.Status.IsComplete() {
		return
	}
	next := goalplan.SelectNext(a.Goals, a.GameTime)
	if next == nil {
		a.ActiveGoalID = ""
		return
	}
	if next.Status == goalplan.Pending {
		next.Transition(goalplan.Active, a.GameTime, tele)
	}
	a.ActiveGoalID = next.GoalID
}

// maintainPlan is cognitive cycle step 6.
func maintainPlan(a *agent.Agent) {
	goal := a.ActiveGoal()
	if goal == nil {
		a.ActivePlan = nil
		return
	}
	if a.ActivePlan != nil && !a.ActivePlan.IsComplete() {
		return
	}
	plan := goalplan.FormPlan(a.NextPlanID(), goal.Description, 0.7, a.GameTime)
	a.ActivePlan = plan
}

// idleAction picks the personality-conditioned idle fallback, in the
// lexicographic tie-break order design doc Section 4.1 requires when
// multiple candidates are equally applicable.
func idleAction(a *agent.Agent, source *rng.Source) boundary.Action {
	var candidates []string
	if a.Personality.Extraverted {
		candidates = append(candidates, "look")
	}
	if a.Personality.Open {
		candidates = append(candidates, "read notice board")
	}
	if len(candidates) == 0 {
		candidates = append(candidates, "look")
	}
	sort.Strings(candidates)
	cmd := candidates[0]
	return boundary.Action{
		ActionID:    a.ID + "-idle-" + cmd,
		Command:     cmd,
		Description: "idle, no active plan",
	}
}

// execute is cognitive cycle step 7.
func execute(a *agent.Agent, source *rng.Source) *boundary.Action {
	if a.ActivePlan != nil && !a.ActivePlan.IsComplete() {
		act, ok := a.ActivePlan.Next()
		if ok {
			if a.ActivePlan.IsComplete() {
				if g := a.ActiveGoal(); g != nil {
					g.Transition(goalplan.Achieved, a.GameTime, nil)
					a.ActiveGoalID = ""
					a.ActivePlan = nil
				}
			}
			return &act
		}
	}
	act := idleAction(a, source)
	return &act
}

// IntegrateOutcome applies an ActionOutcome's effects to a, per design doc
// Section 6: an episodic memory, an appraisal trigger, and any learned
// facts written to semantic memory.
func IntegrateOutcome(a *agent.Agent, outcome boundary.ActionOutcome, now float64) {
	valence := -0.3
	importance := 0.4
	result := emotion.Negative
	if outcome.Success {
		valence = 0.5
		importance = 0.6
		result = emotion.Positive
	}
	a.Episodic.Add(&memory.Memory{
		ID:                 memory.NewID(outcome.Description, now),
		Kind:               memory.Episodic,
		Content:            outcome.Description,
		Timestamp:          now,
		EmotionalValence:   valence,
		EmotionalIntensity: 0.4,
		Importance:         importance,
		LastAccessed:       now,
	})
	emotion.Appraise(a.Emotions, result, 0, 0.65, outcome.Description, now)
	for _, fact := range outcome.Learned {
		a.Semantic.Set(fact.Topic, fact.Content, fact.Confidence, now)
	}
}
