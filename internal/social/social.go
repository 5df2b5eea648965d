// Package social implements the dyadic relationship graph described in
// design doc Section 4.7: a map-of-pairs relationship store carrying the
// affinity/trust/respect scalars and bounded interaction history, plus
// github.com/dominikbraun/graph for the traversal view used by the
// ConnectedComponents diagnostic. The map remains the system of record for
// O(1) dyadic lookups and is what EligibleForGossip scans; the graph view
// is rebuilt from it on demand.
package social

import (
	"sort"
	"strings"
	"sync"

	"github.com/dominikbraun/graph"
)

// Type is the derived classification of a relationship.
type Type uint8

const (
	Stranger Type = iota
	Enemy
	Ally
	Friend
	Rival
	Acquaintance
)

func (t Type) String() string {
	switch t {
	case Stranger:
		return "STRANGER"
	case Enemy:
		return "ENEMY"
	case Ally:
		return "ALLY"
	case Friend:
		return "FRIEND"
	case Rival:
		return "RIVAL"
	case Acquaintance:
		return "ACQUAINTANCE"
	default:
		return "UNKNOWN"
	}
}

// PairKey is an unordered pair of agent ids; A is always lexicographically
// less than or equal to B so the same dyad always maps to the same key.
type PairKey struct {
	A, B string
}

// NewPairKey normalizes two agent ids into an order-independent key.
func NewPairKey(a, b string) PairKey {
	if a <= b {
		return PairKey{A: a, B: b}
	}
	return PairKey{A: b, B: a}
}

// Interaction is one entry in a relationship's bounded interaction ring.
type Interaction struct {
	Description string
	Time        float64
}

const maxInteractions = 50

// Relationship is the dyadic state between two agents.
type Relationship struct {
	Affinity      float64
	Trust         float64
	Respect       float64
	Familiarity   float64
	Type          Type
	Interactions  []Interaction
	LastTime      float64
	SharedSecrets []string
	GossipShared  []string
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

// classify derives the relationship Type from its scalars, per design doc
// Section 4.7's ordered rule list.
func classify(affinity, trust, respect, familiarity float64) Type {
	switch {
	case familiarity < 0.2:
		return Stranger
	case affinity < -0.5:
		return Enemy
	case affinity > 0.7 && trust > 0.6:
		return Ally
	case affinity > 0.5:
		return Friend
	case respect > 0.6 && abs(affinity) < 0.3:
		return Rival
	default:
		return Acquaintance
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// recomputeType caches the classification at write time.
func (r *Relationship) recomputeType() {
	r.Type = classify(r.Affinity, r.Trust, r.Respect, r.Familiarity)
}

// Recompute reclassifies r.Type from its current scalars. Any caller that
// mutates Affinity, Trust, Respect, or Familiarity directly (conversation
// outcomes, external hosts) must call this afterward to preserve design
// doc Section 4.7's relationship-type purity property; ObserveAction calls
// it internally and does not need a separate call.
func (r *Relationship) Recompute() {
	r.recomputeType()
}

// bumpFamiliarity applies the diminishing-returns familiarity gain from an
// interaction, monotonically non-decreasing per design doc Section 4.7.
func (r *Relationship) bumpFamiliarity(rate float64) {
	if rate <= 0 {
		rate = 0.05
	}
	r.Familiarity += rate * (1 - r.Familiarity)
	if r.Familiarity > 1 {
		r.Familiarity = 1
	}
}

func (r *Relationship) recordInteraction(description string, at float64) {
	r.Interactions = append(r.Interactions, Interaction{Description: description, Time: at})
	if len(r.Interactions) > maxInteractions {
		r.Interactions = r.Interactions[len(r.Interactions)-maxInteractions:]
	}
	r.LastTime = at
}

// actionDelta is one keyword rule mapping an observed action to scalar
// deltas, per design doc Section 4.7.
type actionDelta struct {
	keywords        []string
	affinity        float64
	affinityIfValue float64
	valuesName      string
	trust           float64
	respect         float64
}

var actionDeltas = []actionDelta{
	{keywords: []string{"help"}, affinity: 0.1, respect: 0.05},
	{keywords: []string{"steal", "theft"}, affinity: -0.05, affinityIfValue: -0.15, valuesName: "fairness", trust: -0.2},
	{keywords: []string{"share", "give"}, affinity: 0.1, trust: 0.05},
}

// ObserveAction applies the keyword-based delta rules for an observed
// actionDescription to r, where observerValues maps a value name to its
// weight in the observing agent's personality (design doc Section 4.7's
// "if observer values fairness" clause).
func (r *Relationship) ObserveAction(actionDescription string, observerValues map[string]float64, at float64) {
	lower := strings.ToLower(actionDescription)
	matched := false
	for _, d := range actionDeltas {
		for _, kw := range d.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			matched = true
			aff := d.affinity
			if d.valuesName != "" {
				if w, ok := observerValues[d.valuesName]; ok && w > 0.5 {
					aff = d.affinityIfValue
				}
			}
			r.Affinity = clamp(r.Affinity+aff, -1, 1)
			r.Trust = clamp(r.Trust+d.trust, -1, 1)
			r.Respect = clamp(r.Respect+d.respect, -1, 1)
			break
		}
	}
	if matched {
		r.recordInteraction(actionDescription, at)
	}
	r.bumpFamiliarity(0.05)
	r.recomputeType()
}

// Graph owns every agent-pair relationship in the world. The map is the
// system of record; buildGraph derives a dominikbraun/graph view from it on
// each call, for the connectivity diagnostic.
type Graph struct {
	mu            sync.RWMutex
	relationships map[PairKey]*Relationship
}

// NewGraph returns an empty social graph.
func NewGraph() *Graph {
	return &Graph{relationships: map[PairKey]*Relationship{}}
}

// Get returns the relationship between a and b, creating it lazily with
// zero scalars (type STRANGER) on first access, per design doc Section 3's
// lifecycle rule.
func (g *Graph) Get(a, b string) *Relationship {
	key := NewPairKey(a, b)
	g.mu.Lock()
	defer g.mu.Unlock()
	r, ok := g.relationships[key]
	if !ok {
		r = &Relationship{Type: Stranger}
		g.relationships[key] = r
	}
	return r
}

// Pairs returns every known pair key in a stable, sorted order.
func (g *Graph) Pairs() []PairKey {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keys := make([]PairKey, 0, len(g.relationships))
	for k := range g.relationships {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	return keys
}

// buildGraph constructs a dominikbraun/graph undirected view of the
// current relationships, for traversal queries.
func (g *Graph) buildGraph() graph.Graph[string, string] {
	gr := graph.New(graph.StringHash, graph.Undirected())
	for _, key := range g.Pairs() {
		_ = gr.AddVertex(key.A)
		_ = gr.AddVertex(key.B)
		_ = gr.AddEdge(key.A, key.B)
	}
	return gr
}

// ConnectedComponents returns the agent ids grouped by connected
// component, for diagnostics over the social graph's shape.
func (g *Graph) ConnectedComponents() [][]string {
	gr := g.buildGraph()
	adjacency, err := gr.AdjacencyMap()
	if err != nil {
		return nil
	}
	visited := map[string]bool{}
	var components [][]string
	ids := make([]string, 0, len(adjacency))
	for id := range adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if visited[id] {
			continue
		}
		var component []string
		stack := []string{id}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			component = append(component, cur)
			for next := range adjacency[cur] {
				if !visited[next] {
					stack = append(stack, next)
				}
			}
		}
		sort.Strings(component)
		components = append(components, component)
	}
	return components
}

// EligibleForGossip returns the pairs eligible for a gossip propagation
// sweep, per design doc Section 4.9: affinity > 0.2 and familiarity > 0.3.
func (g *Graph) EligibleForGossip() []PairKey {
	var out []PairKey
	for _, key := range g.Pairs() {
		r := g.relationships[key]
		if r.Affinity > 0.2 && r.Familiarity > 0.3 {
			out = append(out, key)
		}
	}
	return out
}
