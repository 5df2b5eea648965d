// Package conversation implements multi-turn dialogue state and the
// end-of-conversation relationship/theory-of-mind updates described in
// design doc Section 4.8: a dialogue-turn bookkeeping pattern generalized
// from a single-shot interaction log to depth/tension/intimacy
// heuristics and quality classification.
package conversation

import (
	"strings"

	"github.com/google/uuid"
	"github.com/talgya/tavern-cognition/internal/belief"
	"github.com/talgya/tavern-cognition/internal/social"
)

// Exchange is one utterance within a conversation.
type Exchange struct {
	Speaker string
	Content string
	Tone    string
	At      float64
}

// Quality classifies a conversation at end.
type Quality uint8

const (
	Neutral Quality = iota
	Positive
	Negative
)

// Conversation is a bounded multi-turn exchange between agents.
type Conversation struct {
	ID           string
	Participants []string
	Topic        string
	Exchanges    []Exchange
	StartedAt    float64
	EndedAt      *float64
	IsActive     bool
	Depth        float64
	Tension      float64
	Intimacy     float64
}

var depthWords = []string{"secret", "truth", "feel", "fear", "hope"}
var tensionWords = []string{"angry", "disagree", "wrong", "lie"}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Start creates a new active Conversation among participants about topic.
func Start(participants []string, topic string, at float64) *Conversation {
	return &Conversation{
		ID:           uuid.NewString(),
		Participants: append([]string(nil), participants...),
		Topic:        topic,
		StartedAt:    at,
		IsActive:     true,
	}
}

// Exchange appends an utterance and applies the content heuristics from
// design doc Section 4.8.
func (c *Conversation) Exchange(speaker, content, tone string, at float64) {
	c.Exchanges = append(c.Exchanges, Exchange{Speaker: speaker, Content: content, Tone: tone, At: at})
	lower := strings.ToLower(content)
	for _, w := range depthWords {
		if strings.Contains(lower, w) {
			c.Depth = clamp01(c.Depth + 0.1)
			c.Intimacy = clamp01(c.Intimacy + 0.1)
			break
		}
	}
	for _, w := range tensionWords {
		if strings.Contains(lower, w) {
			c.Tension = clamp01(c.Tension + 0.15)
			break
		}
	}
}

// classifyQuality applies the design doc Section 4.8 thresholds.
func classifyQuality(tension, depth float64) Quality {
	switch {
	case tension < 0.3 && depth > 0.5:
		return Positive
	case tension > 0.6:
		return Negative
	default:
		return Neutral
	}
}

// End closes the conversation and applies its relationship and
// theory-of-mind effects to the supplied graph and belief systems, keyed
// by participant agent id. modelsByAgent maps an observing agent id to the
// belief System holding its TheoryOfMind models of the other participants.
func (c *Conversation) End(at float64, graph *social.Graph, modelsByAgent map[string]*belief.System) Quality {
	t := at
	c.EndedAt = &t
	c.IsActive = false

	q := classifyQuality(c.Tension, c.Depth)

	for i := 0; i < len(c.Participants); i++ {
		for j := i + 1; j < len(c.Participants); j++ {
			a, b := c.Participants[i], c.Participants[j]
			if graph != nil {
				r := graph.Get(a, b)
				switch q {
				case Positive:
					r.Affinity = clamp(r.Affinity+0.1*c.Depth, -1, 1)
					r.Trust = clamp(r.Trust+0.05*c.Depth, -1, 1)
				case Negative:
					r.Affinity = clamp(r.Affinity-0.1*c.Depth, -1, 1)
					r.Trust = clamp(r.Trust-0.05*c.Depth, -1, 1)
				}
				r.Recompute()
			}
			if c.Depth > 0.7 && modelsByAgent != nil {
				bumpModelConfidence(modelsByAgent, a, b)
				bumpModelConfidence(modelsByAgent, b, a)
			}
		}
	}
	return q
}

func bumpModelConfidence(modelsByAgent map[string]*belief.System, observer, target string) {
	sys, ok := modelsByAgent[observer]
	if !ok {
		return
	}
	tom := sys.ModelOf(target)
	tom.ModelConfidence = clamp01(tom.ModelConfidence + 0.1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
