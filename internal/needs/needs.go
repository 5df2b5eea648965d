// Package needs implements the agent's physiological and psychological
// need ladder and the coarser drives that aggregate over it, per design
// doc Section 4.2: a tagged-need-type table generalized from a fixed
// six-need set to the full thirteen-kind set, with ad hoc urgency checks
// replaced by a single piecewise-linear urgency function.
package needs

import "sort"

// Kind enumerates need types.
type Kind uint8

const (
	Hunger Kind = iota
	Thirst
	Rest
	Safety
	Health
	Belonging
	Achievement
	Autonomy
	Competence
	Curiosity
	Respect
	Intimacy
	Purpose
)

var kindNames = map[Kind]string{
	Hunger:      "HUNGER",
	Thirst:      "THIRST",
	Rest:        "REST",
	Safety:      "SAFETY",
	Health:      "HEALTH",
	Belonging:   "BELONGING",
	Achievement: "ACHIEVEMENT",
	Autonomy:    "AUTONOMY",
	Competence:  "COMPETENCE",
	Curiosity:   "CURIOSITY",
	Respect:     "RESPECT",
	Intimacy:    "INTIMACY",
	Purpose:     "PURPOSE",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// AllKinds lists every need kind in a fixed, stable order.
func AllKinds() []Kind {
	return []Kind{Hunger, Thirst, Rest, Safety, Health, Belonging, Achievement,
		Autonomy, Competence, Curiosity, Respect, Intimacy, Purpose}
}

// Need is a single need gauge.
type Need struct {
	Kind             Kind
	Level            float64
	DecayPerHour     float64
	UrgencyThreshold float64
	CriticalThresh   float64
}

// Decay reduces Level by DecayPerHour*dt, clamped at 0. dt<=0 is a no-op,
// satisfying the Section 8 boundary property "decay with dt=0 is a no-op".
func (n *Need) Decay(dt float64) {
	if dt <= 0 {
		return
	}
	n.Level -= n.DecayPerHour * dt
	if n.Level < 0 {
		n.Level = 0
	}
}

// Satisfy raises Level by amount, clamped at 1.
func (n *Need) Satisfy(amount float64) {
	n.Level += amount
	if n.Level > 1 {
		n.Level = 1
	}
}

// Urgency is 0 when Level >= UrgencyThreshold, else 1 - Level/UrgencyThreshold.
func (n *Need) Urgency() float64 {
	if n.UrgencyThreshold <= 0 || n.Level >= n.UrgencyThreshold {
		return 0
	}
	u := 1 - n.Level/n.UrgencyThreshold
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// IsUrgent reports whether the need currently exerts selection pressure.
func (n *Need) IsUrgent() bool {
	return n.Urgency() > 0
}

// IsCritical reports whether Level has fallen below CriticalThresh.
func (n *Need) IsCritical() bool {
	return n.Level < n.CriticalThresh
}

// wellbeingWeights assigns physiological needs a heavier weight than
// psychological ones, per design doc Section 4.2.
var wellbeingWeights = map[Kind]float64{
	Hunger: 1.5,
	Thirst: 1.5,
	Rest:   1.5,
	Safety: 2.0,
	Health: 2.0,
}

func weightOf(k Kind) float64 {
	if w, ok := wellbeingWeights[k]; ok {
		return w
	}
	return 1.0
}

// Ladder holds the complete set of an agent's needs, keyed by kind.
type Ladder struct {
	needs map[Kind]*Need
}

// NewLadder builds a Ladder from the default table, applying any per-kind
// decay-rate overrides from config.
func NewLadder(overrides map[string]float64) *Ladder {
	l := &Ladder{needs: make(map[Kind]*Need, len(defaultTable))}
	for k, d := range defaultTable {
		n := d
		if ov, ok := overrides[k.String()]; ok {
			n.DecayPerHour = ov
		}
		l.needs[k] = &n
	}
	return l
}

// Get returns the Need for kind, or nil if absent.
func (l *Ladder) Get(k Kind) *Need {
	return l.needs[k]
}

// DecayAll applies Decay(dt) to every need.
func (l *Ladder) DecayAll(dt float64) {
	for _, n := range l.needs {
		n.Decay(dt)
	}
}

// Urgent returns every need currently exerting selection pressure, in a
// stable order (ascending Kind) so callers get deterministic iteration.
func (l *Ladder) Urgent() []*Need {
	var out []*Need
	for _, k := range AllKinds() {
		if n, ok := l.needs[k]; ok && n.IsUrgent() {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Wellbeing is an observable-only weighted average over all need levels.
func (l *Ladder) Wellbeing() float64 {
	var sum, wsum float64
	for k, n := range l.needs {
		w := weightOf(k)
		sum += n.Level * w
		wsum += w
	}
	if wsum == 0 {
		return 0
	}
	return sum / wsum
}

// defaultTable holds the compiled-in defaults, grounded on
// original_source/living_rusted_tankard/core/agents/needs.py's
// _create_default_needs for the nine kinds it defines; THIRST, COMPETENCE,
// INTIMACY, and PURPOSE have no original counterpart and use values chosen
// to match the register of their nearest sibling (THIRST mirrors HUNGER's
// urgency profile at a faster decay; COMPETENCE mirrors ACHIEVEMENT;
// INTIMACY mirrors BELONGING; PURPOSE mirrors AUTONOMY).
var defaultTable = map[Kind]Need{
	Hunger:      {Kind: Hunger, Level: 0.8, DecayPerHour: 0.04, UrgencyThreshold: 0.4, CriticalThresh: 0.2},
	Thirst:      {Kind: Thirst, Level: 0.8, DecayPerHour: 0.06, UrgencyThreshold: 0.4, CriticalThresh: 0.2},
	Rest:        {Kind: Rest, Level: 0.8, DecayPerHour: 0.03, UrgencyThreshold: 0.3, CriticalThresh: 0.15},
	Safety:      {Kind: Safety, Level: 0.9, DecayPerHour: 0.0, UrgencyThreshold: 0.5, CriticalThresh: 0.3},
	Health:      {Kind: Health, Level: 1.0, DecayPerHour: 0.0, UrgencyThreshold: 0.6, CriticalThresh: 0.3},
	Belonging:   {Kind: Belonging, Level: 0.6, DecayPerHour: 0.005, UrgencyThreshold: 0.4, CriticalThresh: 0.2},
	Achievement: {Kind: Achievement, Level: 0.5, DecayPerHour: 0.003, UrgencyThreshold: 0.3, CriticalThresh: 0.1},
	Autonomy:    {Kind: Autonomy, Level: 0.7, DecayPerHour: 0.002, UrgencyThreshold: 0.4, CriticalThresh: 0.2},
	Competence:  {Kind: Competence, Level: 0.5, DecayPerHour: 0.003, UrgencyThreshold: 0.3, CriticalThresh: 0.1},
	Curiosity:   {Kind: Curiosity, Level: 0.5, DecayPerHour: 0.01, UrgencyThreshold: 0.3, CriticalThresh: 0.1},
	Respect:     {Kind: Respect, Level: 0.6, DecayPerHour: 0.002, UrgencyThreshold: 0.4, CriticalThresh: 0.2},
	Intimacy:    {Kind: Intimacy, Level: 0.6, DecayPerHour: 0.005, UrgencyThreshold: 0.4, CriticalThresh: 0.2},
	Purpose:     {Kind: Purpose, Level: 0.7, DecayPerHour: 0.002, UrgencyThreshold: 0.4, CriticalThresh: 0.2},
}

// Drive is a coarse motivation activated by the urgency of the needs it
// satisfies.
type Drive struct {
	Name           string
	Intensity      float64
	SatisfiesNeeds []Kind
}

// Activation blends the drive's own intensity with the mean urgency of the
// needs it serves: intensity * (0.3 + 0.7*mean(urgency)).
func (d *Drive) Activation(l *Ladder) float64 {
	if len(d.SatisfiesNeeds) == 0 {
		return d.Intensity * 0.3
	}
	var sum float64
	for _, k := range d.SatisfiesNeeds {
		if n := l.Get(k); n != nil {
			sum += n.Urgency()
		}
	}
	mean := sum / float64(len(d.SatisfiesNeeds))
	return d.Intensity * (0.3 + 0.7*mean)
}

// IsStronglyActivated reports whether the drive exceeds the 0.6 threshold
// design doc Section 4.1 uses to trigger drive-derived goal creation.
func (d *Drive) IsStronglyActivated(l *Ladder) bool {
	return d.Activation(l) > 0.6
}

// DefaultDrives returns the compiled-in drive set, grounded on the
// original source's coarser survival/affiliation/autonomy motivations
// layered over the fine-grained need kinds.
func DefaultDrives() []*Drive {
	return []*Drive{
		{Name: "survival", Intensity: 0.8, SatisfiesNeeds: []Kind{Hunger, Thirst, Rest, Safety, Health}},
		{Name: "affiliation", Intensity: 0.6, SatisfiesNeeds: []Kind{Belonging, Intimacy, Respect}},
		{Name: "mastery", Intensity: 0.6, SatisfiesNeeds: []Kind{Achievement, Competence, Curiosity}},
		{Name: "autonomy", Intensity: 0.5, SatisfiesNeeds: []Kind{Autonomy, Purpose}},
	}
}
