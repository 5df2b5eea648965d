// Package boundary holds the three value types the cognitive core exchanges
// with its host, per design doc Section 6. The core never parses Action's
// Command string, and never reaches outside these shapes for world state —
// everything it knows about the world in a given tick arrives in a
// WorldSnapshot, and everything it learns about an executed action arrives
// in an ActionOutcome.
package boundary

// WorldSnapshot is handed to the kernel once per agent per tick.
type WorldSnapshot struct {
	Location         string
	AgentsPresent    []string
	RecentEvents     []string
	ItemAvailability map[string]bool // optional
	TimeHours        float64         // absolute game time
	DtHours          float64         // elapsed since last snapshot
}

// Action is emitted by the kernel. Command is an opaque string the world
// interprets — the core never parses it.
type Action struct {
	ActionID           string
	Command            string
	Description        string
	Preconditions      []string
	ExpectedEffects    []string
	EstimatedTimeHours float64
	ResourceCost       map[string]float64
	Risk               float64
}

// LearnedFact is one item of the ActionOutcome.Learned list.
type LearnedFact struct {
	Topic      string
	Content    string
	Confidence float64
}

// ActionOutcome arrives asynchronously after the world executes an Action.
type ActionOutcome struct {
	ActionID    string
	Success     bool
	Description string
	Learned     []LearnedFact
}
