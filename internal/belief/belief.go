// Package belief implements the belief store and theory-of-mind model,
// per design doc Section 4.4: a map-of-slices storage pattern generalized
// from a flat fact list to confidence-weighted, evidence-backed beliefs
// with kind tagging, plus the confidence-update and trait-delta formulas.
package belief

import "strings"

// Kind enumerates belief categories.
type Kind uint8

const (
	Fact Kind = iota
	Probability
	Preference
	Ability
	Norm
	GoalOfOther
	TraitOfOther
)

// maxEvidence bounds the supporting/contradicting lists, per design doc
// Section 4.4's "N >= 32" requirement.
const maxEvidence = 32

// StrongThreshold and WeakThreshold bound the "strong"/"weak" classification.
const (
	StrongThreshold = 0.7
	WeakThreshold   = 0.3
)

// DefaultWeight is the evidence weight used when callers don't specify one.
const DefaultWeight = 0.1

// Belief is one piece of an agent's world model.
type Belief struct {
	Kind          Kind
	Subject       string
	Content       string
	Confidence    float64
	Supporting    []string
	Contradicting []string
	FormedAt      float64
	LastUpdated   float64
	UpdateCount   int
}

// IsStrong reports confidence >= StrongThreshold.
func (b *Belief) IsStrong() bool { return b.Confidence >= StrongThreshold }

// IsWeak reports confidence <= WeakThreshold.
func (b *Belief) IsWeak() bool { return b.Confidence <= WeakThreshold }

// Update applies a piece of evidence. supports=true strengthens confidence
// toward 1, false weakens it toward 0, both per design doc Section 4.4's
// formulas. weight<=0 uses DefaultWeight.
func (b *Belief) Update(supports bool, evidence string, weight, at float64) {
	if weight <= 0 {
		weight = DefaultWeight
	}
	if supports {
		b.Confidence += weight * (1 - b.Confidence) * 0.5
		b.Supporting = appendBounded(b.Supporting, evidence)
	} else {
		b.Confidence -= weight * b.Confidence * 0.5
		b.Contradicting = appendBounded(b.Contradicting, evidence)
	}
	if b.Confidence < 0 {
		b.Confidence = 0
	}
	if b.Confidence > 1 {
		b.Confidence = 1
	}
	b.UpdateCount++
	b.LastUpdated = at
}

func appendBounded(list []string, item string) []string {
	list = append(list, item)
	if len(list) > maxEvidence {
		list = list[len(list)-maxEvidence:]
	}
	return list
}

// TheoryOfMind is one agent's model of another agent.
type TheoryOfMind struct {
	TargetAgentID     string
	PerceivedTraits   map[string]float64
	PerceivedGoals    []string
	PerceivedEmotions map[string]float64
	ModelConfidence   float64
}

// NewTheoryOfMind creates an empty model for targetAgentID.
func NewTheoryOfMind(targetAgentID string) *TheoryOfMind {
	return &TheoryOfMind{
		TargetAgentID:     targetAgentID,
		PerceivedTraits:   map[string]float64{},
		PerceivedEmotions: map[string]float64{},
	}
}

// bumpConfidence raises ModelConfidence by 0.01, capped at 0.9.
func (t *TheoryOfMind) bumpConfidence() {
	t.ModelConfidence += 0.01
	if t.ModelConfidence > 0.9 {
		t.ModelConfidence = 0.9
	}
}

// AddPerceivedGoal appends a perceived goal if not already present.
func (t *TheoryOfMind) AddPerceivedGoal(goal string) {
	for _, g := range t.PerceivedGoals {
		if g == goal {
			return
		}
	}
	t.PerceivedGoals = append(t.PerceivedGoals, goal)
}

// TrustEstimate blends the perceived trustworthy trait with model
// uncertainty: perceived.trustworthy*confidence + 0.5*(1-confidence).
func (t *TheoryOfMind) TrustEstimate() float64 {
	trait := t.PerceivedTraits["trustworthy"]
	return trait*t.ModelConfidence + 0.5*(1-t.ModelConfidence)
}

// traitDeltaRule is one lexical observation -> trait-delta mapping.
type traitDeltaRule struct {
	keyword string
	trait   string
	delta   float64
	floor   float64
	ceil    float64
}

var traitRules = []traitDeltaRule{
	{"refused", "helpful", -0.1, 0, 1},
	{"helped", "generous", 0.1, 0, 1},
	{"donated", "generous", 0.1, 0, 1},
	{"lied", "trustworthy", -0.2, 0, 1},
	{"deceived", "trustworthy", -0.2, 0, 1},
}

// ObserveContent applies the fixed lexical rule set from design doc
// Section 4.4 to observationContent, mutating t's perceived traits and
// goals, and bumps model confidence once if any rule or the "asked about"
// pattern matched.
func (t *TheoryOfMind) ObserveContent(observationContent string) {
	lower := strings.ToLower(observationContent)
	matched := false
	for _, r := range traitRules {
		if strings.Contains(lower, r.keyword) {
			v := t.PerceivedTraits[r.trait] + r.delta
			if v < r.floor {
				v = r.floor
			}
			if v > r.ceil {
				v = r.ceil
			}
			t.PerceivedTraits[r.trait] = v
			matched = true
		}
	}
	if idx := strings.Index(lower, "asked about "); idx >= 0 {
		topic := strings.TrimSpace(lower[idx+len("asked about "):])
		if topic != "" {
			t.AddPerceivedGoal("learn about " + topic)
			matched = true
		}
	}
	if matched {
		t.bumpConfidence()
	}
}

// System is the agent's complete belief store: beliefs keyed by subject,
// plus a mental model per observed agent.
type System struct {
	Beliefs      map[string][]*Belief
	MentalModels map[string]*TheoryOfMind
}

// NewSystem returns an empty belief system.
func NewSystem() *System {
	return &System{
		Beliefs:      map[string][]*Belief{},
		MentalModels: map[string]*TheoryOfMind{},
	}
}

// Strongest returns the highest-confidence belief about subject, or nil.
func (s *System) Strongest(subject string) *Belief {
	var best *Belief
	for _, b := range s.Beliefs[subject] {
		if best == nil || b.Confidence > best.Confidence {
			best = b
		}
	}
	return best
}

// Add appends a new belief under subject.
func (s *System) Add(b *Belief) {
	s.Beliefs[b.Subject] = append(s.Beliefs[b.Subject], b)
}

// ModelOf returns the TheoryOfMind for agentID, creating one if absent.
func (s *System) ModelOf(agentID string) *TheoryOfMind {
	m, ok := s.MentalModels[agentID]
	if !ok {
		m = NewTheoryOfMind(agentID)
		s.MentalModels[agentID] = m
	}
	return m
}
