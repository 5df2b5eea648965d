// Package config collects the tunable constants for the cognitive core.
// Per design doc Section 6 the core never reads environment variables or
// config files itself; a host embedding the core is expected to construct
// a Config in process and pass it in. See DESIGN.md for the justification
// of this deliberately stdlib-only package.
package config

// AgentOrder selects how the world orchestrator iterates agents within a
// tick, per design doc Section 5's determinism guarantee.
type AgentOrder uint8

const (
	// OrderAscendingID processes agents sorted by AgentID, ascending.
	OrderAscendingID AgentOrder = iota
	// OrderFixed processes agents in the order they were added to the World.
	OrderFixed
)

// NeedsConfig holds per-kind decay-rate overrides layered on top of the
// compiled-in defaults in package needs.
type NeedsConfig struct {
	DecayRateOverrides map[string]float64
}

// MemoryConfig bounds the episodic memory store.
type MemoryConfig struct {
	Capacity        int
	HalfLifeHours   float64
	MinAccessible   float64
}

// SocialConfig tunes relationship and gossip dynamics.
type SocialConfig struct {
	GossipSweepEnabled    bool
	FamiliarityGainRate   float64
	GossipDistortionStep  float64
	MaxGossipHops         int
}

// PersonalityConfig controls whether traits drift from lived experience.
type PersonalityConfig struct {
	DriftEnabled bool
	DriftRate    float64
}

// TickConfig governs the world orchestrator's per-tick loop.
type TickConfig struct {
	AgentOrder AgentOrder
}

// Config is the root configuration object. Construct it with Default and
// override individual fields; there is no env/file loading path.
type Config struct {
	Needs       NeedsConfig
	Memory      MemoryConfig
	Social      SocialConfig
	Personality PersonalityConfig
	Tick        TickConfig
}

// Default returns the baseline configuration described in design doc
// Section 6.
func Default() Config {
	return Config{
		Needs: NeedsConfig{
			DecayRateOverrides: map[string]float64{},
		},
		Memory: MemoryConfig{
			Capacity:      1000,
			HalfLifeHours: 24.0,
			MinAccessible: 0.05,
		},
		Social: SocialConfig{
			GossipSweepEnabled:   true,
			FamiliarityGainRate:  0.05,
			GossipDistortionStep: 0.1,
			MaxGossipHops:        2,
		},
		Personality: PersonalityConfig{
			DriftEnabled: false,
			DriftRate:    0.01,
		},
		Tick: TickConfig{
			AgentOrder: OrderAscendingID,
		},
	}
}
