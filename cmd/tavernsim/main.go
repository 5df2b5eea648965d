// Command tavernsim runs a small demo of the tavern cognition core: a
// handful of agents stepping through a fixed number of ticks against a
// scripted world snapshot feed, with their emitted actions logged.
package main

import (
	"log/slog"
	"os"

	"github.com/talgya/tavern-cognition/internal/agent"
	"github.com/talgya/tavern-cognition/internal/boundary"
	"github.com/talgya/tavern-cognition/internal/config"
	"github.com/talgya/tavern-cognition/internal/needs"
	"github.com/talgya/tavern-cognition/internal/world"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("tavern cognition demo starting")

	seed := uint64(42)
	cfg := config.Default()

	// ── Agents ────────────────────────────────────────────────────────
	w := world.New(cfg, seed, logger)

	gene := agent.New("gene_bartender", "Gene", agent.Personality{
		Extraverted: true,
		Values:      []agent.Value{{Name: "fairness", Weight: 0.9}},
	}, agent.Config{MemoryCapacity: cfg.Memory.Capacity})
	gene.Needs.Get(needs.Belonging).Level = 0.3

	mira := agent.New("mira_traveler", "Mira", agent.Personality{
		Open: true,
	}, agent.Config{MemoryCapacity: cfg.Memory.Capacity})
	mira.Needs.Get(needs.Hunger).Level = 0.25

	w.AddAgent(gene)
	w.AddAgent(mira)

	// ── Scripted world feed ───────────────────────────────────────────
	events := map[string][]string{
		"gene_bartender": {"a traveler helped clean the tables"},
		"mira_traveler":  {"someone at the bar mentioned a missing caravan"},
	}

	snapshots := func(agentID string) boundary.WorldSnapshot {
		return boundary.WorldSnapshot{
			Location:      "main_hall",
			AgentsPresent: []string{"gene_bartender", "mira_traveler"},
			RecentEvents:  events[agentID],
		}
	}

	// ── Tick loop ─────────────────────────────────────────────────────
	const ticks = 10
	const dtHours = 1.0

	for i := 0; i < ticks; i++ {
		actions := w.Tick(dtHours, snapshots)
		for _, id := range []string{"gene_bartender", "mira_traveler"} {
			act := actions[id]
			if act == nil {
				continue
			}
			slog.Info("action", "tick", i, "agent", id, "command", act.Command)
		}
	}

	slog.Info("tavern cognition demo complete", "telemetry_events", len(w.Telemetry.Recent(0)))
}
