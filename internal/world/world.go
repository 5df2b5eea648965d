// Package world owns the shared mutable state of a running simulation —
// the agent arena, the social graph, the reputation network, and the
// active conversation set — and drives the deterministic tick loop
// described in design doc Section 5: outcome integration, per-agent
// step, then a gossip-sweep post-pass, replacing a settlement/economy
// tick with this cognitive core's own phases.
package world

import (
	"log/slog"
	"sort"

	"github.com/talgya/tavern-cognition/internal/agent"
	"github.com/talgya/tavern-cognition/internal/belief"
	"github.com/talgya/tavern-cognition/internal/boundary"
	"github.com/talgya/tavern-cognition/internal/config"
	"github.com/talgya/tavern-cognition/internal/conversation"
	"github.com/talgya/tavern-cognition/internal/goalplan"
	"github.com/talgya/tavern-cognition/internal/kernel"
	"github.com/talgya/tavern-cognition/internal/reputation"
	"github.com/talgya/tavern-cognition/internal/rng"
	"github.com/talgya/tavern-cognition/internal/social"
	"github.com/talgya/tavern-cognition/internal/telemetry"
)

// World owns every agent and the shared structures their steps mutate.
type World struct {
	Config        config.Config
	Agents        map[string]*agent.Agent
	agentOrder    []string
	Social        *social.Graph
	Reputation    *reputation.Network
	Conversations []*conversation.Conversation

	RNG       *rng.Source
	Telemetry *telemetry.Sink

	log      *slog.Logger
	gameTime float64

	pendingOutcomes map[string][]boundary.ActionOutcome
}

// New constructs a World with empty shared state. seed drives the
// deterministic RNG passed to every agent's kernel step.
func New(cfg config.Config, seed uint64, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	return &World{
		Config:          cfg,
		Agents:          map[string]*agent.Agent{},
		Social:          social.NewGraph(),
		Reputation:      reputation.NewNetwork(),
		RNG:             rng.New(seed),
		Telemetry:       telemetry.NewSink(512),
		log:             log,
		pendingOutcomes: map[string][]boundary.ActionOutcome{},
	}
}

// AddAgent registers a into the world, in the order it was added. A
// deterministic tick order is recomputed from Config.Tick.AgentOrder on
// the next Tick call.
func (w *World) AddAgent(a *agent.Agent) {
	w.Agents[a.ID] = a
	w.agentOrder = append(w.agentOrder, a.ID)
}

// orderedAgentIDs returns the agent ids in the tick order the configured
// policy demands.
func (w *World) orderedAgentIDs() []string {
	switch w.Config.Tick.AgentOrder {
	case config.OrderFixed:
		ids := make([]string, len(w.agentOrder))
		copy(ids, w.agentOrder)
		return ids
	default:
		ids := make([]string, 0, len(w.Agents))
		for id := range w.Agents {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		return ids
	}
}

// QueueOutcome records an ActionOutcome to be integrated for agentID
// before its next Tick step, per design doc Section 5's ordering rule
// ("outcome integration from a previous tick is applied before step 1 of
// the current tick").
func (w *World) QueueOutcome(agentID string, outcome boundary.ActionOutcome) {
	w.pendingOutcomes[agentID] = append(w.pendingOutcomes[agentID], outcome)
}

// Snapshots supplies the per-agent WorldSnapshot for the upcoming tick.
// Hosts embedding this core provide their own implementation; tests and
// the demo CLI use a simple closure.
type Snapshots func(agentID string) boundary.WorldSnapshot

// Tick advances the world by one step: integrates queued outcomes, steps
// every agent in deterministic order, then runs the gossip sweep when it is
// enabled. Conversations are not processed here; their effects are applied
// only when EndConversation is called.
func (w *World) Tick(dt float64, snaps Snapshots) map[string]*boundary.Action {
	ids := w.orderedAgentIDs()
	actions := make(map[string]*boundary.Action, len(ids))

	for _, id := range ids {
		a := w.Agents[id]
		for _, outcome := range w.pendingOutcomes[id] {
			kernel.IntegrateOutcome(a, outcome, w.gameTime)
		}
		delete(w.pendingOutcomes, id)

		snap := snaps(id)
		snap.DtHours = dt
		snap.TimeHours = w.gameTime + dt

		act := kernel.Step(a, snap, dt, w.RNG, w.Telemetry)
		actions[id] = act
	}

	w.gameTime += dt
	if w.Config.Social.GossipSweepEnabled {
		w.gossipSweep()
	}
	w.log.Debug("tick complete", "game_time", w.gameTime, "agents", len(ids))
	return actions
}

// AbandonGoal transitions goalID to ABANDONED for agentID, clearing its
// active plan if it was bound, per design doc Section 5's cancellation
// rule. Unknown agent or goal ids are a no-op, recorded as telemetry.
func (w *World) AbandonGoal(agentID, goalID string) {
	a, ok := w.Agents[agentID]
	if !ok {
		w.Telemetry.Emit(telemetry.Event{Component: "world", Kind: telemetry.UnknownReference, Detail: agentID})
		return
	}
	for _, g := range a.Goals {
		if g.GoalID != goalID {
			continue
		}
		if g.Transition(goalplan.Abandoned, w.gameTime, w.Telemetry) {
			if a.ActiveGoalID == goalID {
				a.ActiveGoalID = ""
				a.ActivePlan = nil
			}
		}
		return
	}
	w.Telemetry.Emit(telemetry.Event{Component: "world", Kind: telemetry.UnknownReference, Detail: goalID})
}

// StartConversation creates and registers a new active Conversation.
func (w *World) StartConversation(participants []string, topic string) *conversation.Conversation {
	c := conversation.Start(participants, topic, w.gameTime)
	w.Conversations = append(w.Conversations, c)
	return c
}

// EndConversation closes c and applies its relationship/ToM effects.
func (w *World) EndConversation(c *conversation.Conversation) conversation.Quality {
	beliefsByAgent := map[string]*belief.System{}
	for _, id := range c.Participants {
		if a, ok := w.Agents[id]; ok {
			beliefsByAgent[id] = a.Beliefs
		}
	}
	return c.End(w.gameTime, w.Social, beliefsByAgent)
}

// gossipSweep runs the propagation pass described in design doc Section
// 4.9, after all agents have stepped this tick.
func (w *World) gossipSweep() {
	for _, key := range w.Social.EligibleForGossip() {
		rel := w.Social.Get(key.A, key.B)
		freq := reputation.GossipFrequency(w.gameTime - rel.LastTime)
		if w.RNG.Bool(freq) {
			w.propagateGossip(key.A, key.B)
		}
		if w.RNG.Bool(freq) {
			w.propagateGossip(key.B, key.A)
		}
	}
}

// propagateGossip has source share its single strongest opinion (across
// every subject it holds one about) with listener, per design doc Section
// 4.9.
func (w *World) propagateGossip(source, listener string) {
	var bestSubject string
	var bestAspect reputation.Aspect
	var bestOp *reputation.Opinion
	var bestStrength float64
	for subject := range w.knownSubjects(source) {
		aspect, op, ok := w.Reputation.StrongestOpinion(source, subject)
		if !ok {
			continue
		}
		strength := op.Confidence * absf(op.Score)
		if bestOp == nil || strength > bestStrength {
			bestSubject, bestAspect, bestOp, bestStrength = subject, aspect, op, strength
		}
	}
	if bestOp == nil {
		return
	}
	credibility := w.Social.Get(source, listener).Trust*0.5 + 0.5
	w.Reputation.RecordGossip(listener, bestSubject, bestAspect, bestOp.Score, credibility, w.gameTime)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// knownSubjects is a placeholder enumeration hook; a production host
// would index subjects the reputation network has opinions about. Kept
// minimal here since no subject registry is defined.
func (w *World) knownSubjects(observer string) map[string]struct{} {
	subjects := map[string]struct{}{}
	for id := range w.Agents {
		if id != observer {
			subjects[id] = struct{}{}
		}
	}
	return subjects
}
