// Package emotion implements the agent's emotion set, mood, appraisal, and
// the risk-tolerance/social modifiers derived from active emotions, per
// design doc Section 4.3: a single mood-tracking scalar generalized to a
// full valence/arousal pair and a Plutchik-plus-derived emotion table.
package emotion

// Kind enumerates emotion types: Plutchik primaries plus derived emotions.
type Kind uint8

const (
	Joy Kind = iota
	Trust
	Fear
	Surprise
	Sadness
	Disgust
	Anger
	Anticipation
	Anxiety
	Hope
	Despair
	Pride
	Shame
	Gratitude
	Loneliness
	Grief
	Frustration
	Guilt
)

var kindNames = map[Kind]string{
	Joy: "JOY", Trust: "TRUST", Fear: "FEAR", Surprise: "SURPRISE",
	Sadness: "SADNESS", Disgust: "DISGUST", Anger: "ANGER",
	Anticipation: "ANTICIPATION", Anxiety: "ANXIETY", Hope: "HOPE",
	Despair: "DESPAIR", Pride: "PRIDE", Shame: "SHAME", Gratitude: "GRATITUDE",
	Loneliness: "LONELINESS", Grief: "GRIEF", Frustration: "FRUSTRATION", Guilt: "GUILT",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// ActiveThreshold is the minimum intensity for an emotion to count as
// active, per design doc Section 3.
const ActiveThreshold = 0.1

// valenceArousal is the fixed per-kind table used for mood-target
// aggregation. Values for the Plutchik primaries and the first six derived
// kinds come from original_source's emotion_valences table; LONELINESS,
// GRIEF, FRUSTRATION, and GUILT have no original counterpart and were
// chosen to sit in the same register as their nearest sibling (LONELINESS
// near SADNESS, GRIEF deeper than SADNESS, FRUSTRATION near ANGER but
// lower arousal, GUILT near SHAME).
var valenceArousal = map[Kind][2]float64{
	Joy:          {1.0, 0.5},
	Trust:        {0.7, 0.0},
	Fear:         {-0.7, 0.8},
	Surprise:     {0.0, 0.9},
	Sadness:      {-0.9, -0.5},
	Disgust:      {-0.6, 0.2},
	Anger:        {-0.8, 0.7},
	Anticipation: {0.3, 0.6},
	Anxiety:      {-0.6, 0.7},
	Hope:         {0.8, 0.4},
	Despair:      {-1.0, -0.3},
	Pride:        {0.9, 0.5},
	Shame:        {-0.8, -0.4},
	Gratitude:    {0.8, 0.2},
	Loneliness:   {-0.7, -0.4},
	Grief:        {-0.95, -0.4},
	Frustration:  {-0.6, 0.5},
	Guilt:        {-0.7, -0.3},
}

// DefaultDecayPerHour is the compiled-in decay rate shared by all kinds,
// matching original_source's uniform emotion decay_rate.
const DefaultDecayPerHour = 0.1

// Emotion is one active or dormant emotional state.
type Emotion struct {
	Kind         Kind
	Intensity    float64
	DecayPerHour float64
	Trigger      string
	TriggerTime  float64
}

// NewEmotion constructs an Emotion at zero intensity with the default decay.
func NewEmotion(k Kind) *Emotion {
	return &Emotion{Kind: k, DecayPerHour: DefaultDecayPerHour}
}

// TriggerWith raises intensity by amount (clamped at 1) and records the cause.
func (e *Emotion) TriggerWith(amount float64, trigger string, at float64) {
	e.Intensity += amount
	if e.Intensity > 1 {
		e.Intensity = 1
	}
	if e.Intensity < 0 {
		e.Intensity = 0
	}
	e.Trigger = trigger
	e.TriggerTime = at
}

// Decay reduces intensity by DecayPerHour*dt, clamped at 0. dt<=0 is a
// no-op.
func (e *Emotion) Decay(dt float64) {
	if dt <= 0 {
		return
	}
	e.Intensity -= e.DecayPerHour * dt
	if e.Intensity < 0 {
		e.Intensity = 0
	}
}

// IsActive reports whether intensity meets ActiveThreshold.
func (e *Emotion) IsActive() bool {
	return e.Intensity >= ActiveThreshold
}

// Set holds every emotion kind an agent tracks, keyed by kind.
type Set struct {
	emotions map[Kind]*Emotion
}

// NewSet builds a Set with every defined kind present at zero intensity.
func NewSet() *Set {
	s := &Set{emotions: make(map[Kind]*Emotion, len(valenceArousal))}
	for k := range valenceArousal {
		s.emotions[k] = NewEmotion(k)
	}
	return s
}

// Get returns the Emotion for kind, creating it if absent.
func (s *Set) Get(k Kind) *Emotion {
	e, ok := s.emotions[k]
	if !ok {
		e = NewEmotion(k)
		s.emotions[k] = e
	}
	return e
}

// DecayAll applies Decay(dt) to every tracked emotion.
func (s *Set) DecayAll(dt float64) {
	for _, e := range s.emotions {
		e.Decay(dt)
	}
}

// Active returns every currently active emotion.
func (s *Set) Active() []*Emotion {
	var out []*Emotion
	for _, k := range allKindsOrdered() {
		if e, ok := s.emotions[k]; ok && e.IsActive() {
			out = append(out, e)
		}
	}
	return out
}

func allKindsOrdered() []Kind {
	return []Kind{Joy, Trust, Fear, Surprise, Sadness, Disgust, Anger, Anticipation,
		Anxiety, Hope, Despair, Pride, Shame, Gratitude, Loneliness, Grief, Frustration, Guilt}
}

// Mood is the agent's slow-moving affective background.
type Mood struct {
	Valence    float64
	Arousal    float64
	ChangeRate float64
}

// NewMood returns a neutral mood with the default change rate.
func NewMood() *Mood {
	return &Mood{ChangeRate: 0.05}
}

// TargetFrom computes the intensity-weighted mean valence/arousal over
// active emotions using the fixed per-kind table.
func TargetFrom(active []*Emotion) (valence, arousal float64) {
	if len(active) == 0 {
		return 0, 0
	}
	var vSum, aSum, wSum float64
	for _, e := range active {
		va, ok := valenceArousal[e.Kind]
		if !ok {
			continue
		}
		vSum += va[0] * e.Intensity
		aSum += va[1] * e.Intensity
		wSum += e.Intensity
	}
	if wSum == 0 {
		return 0, 0
	}
	return vSum / wSum, aSum / wSum
}

// Update moves mood toward the target derived from active by ChangeRate.
func (m *Mood) Update(active []*Emotion) {
	tv, ta := TargetFrom(active)
	m.Valence += m.ChangeRate * (tv - m.Valence)
	m.Arousal += m.ChangeRate * (ta - m.Arousal)
	m.Valence = clamp(m.Valence, -1, 1)
	m.Arousal = clamp(m.Arousal, -1, 1)
}

// InfluencePerception modulates a raw event valence by the mood's own
// valence: v <- v + 0.2*mood.valence.
func (m *Mood) InfluencePerception(v float64) float64 {
	return clamp(v+0.2*m.Valence, -1, 1)
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

// Outcome classifies an appraised event for Appraise.
type Outcome uint8

const (
	Neutral Outcome = iota
	Positive
	Negative
)

// Appraise translates an (outcome, unexpectedness, personal_relevance)
// tuple into emotion triggers on set, per design doc Section 4.3 and
// original_source's appraise_event.
func Appraise(s *Set, outcome Outcome, unexpectedness, relevance float64, trigger string, at float64) {
	base := 0.3 + 0.7*relevance
	switch outcome {
	case Positive:
		s.Get(Joy).TriggerWith(base, trigger, at)
		if unexpectedness > 0.5 {
			s.Get(Surprise).TriggerWith(unexpectedness*0.6, trigger, at)
		}
	case Negative:
		s.Get(Sadness).TriggerWith(base, trigger, at)
		if unexpectedness > 0.5 {
			s.Get(Fear).TriggerWith(unexpectedness*0.5, trigger, at)
		}
	}
	if outcome != Positive && outcome != Negative && unexpectedness > 0.7 {
		s.Get(Surprise).TriggerWith(unexpectedness*0.8, trigger, at)
	}
}

// RiskTolerance derives a multiplicative risk-tolerance modifier from
// currently active emotions, clamped to [0.5, 1.5].
func RiskTolerance(s *Set) float64 {
	r := 1.0
	r -= s.Get(Fear).Intensity * 0.3
	r -= s.Get(Anxiety).Intensity * 0.2
	r += s.Get(Anger).Intensity * 0.2
	r += s.Get(Joy).Intensity * 0.15
	return clamp(r, 0.5, 1.5)
}

// SocialModifiers bundles the friendliness/openness/trust multipliers.
type SocialModifiers struct {
	Friendliness float64
	Openness     float64
	Trust        float64
}

// Social derives the social-behavior modifiers from currently active
// emotions, each clamped to [0.5, 1.5].
func Social(s *Set) SocialModifiers {
	friendliness := 1.0 + s.Get(Joy).Intensity*0.3 - s.Get(Anger).Intensity*0.4 - s.Get(Sadness).Intensity*0.2
	openness := 1.0 + s.Get(Joy).Intensity*0.2 - s.Get(Fear).Intensity*0.3 - s.Get(Sadness).Intensity*0.2
	trust := 1.0 + s.Get(Trust).Intensity*0.4 - s.Get(Fear).Intensity*0.4
	return SocialModifiers{
		Friendliness: clamp(friendliness, 0.5, 1.5),
		Openness:     clamp(openness, 0.5, 1.5),
		Trust:        clamp(trust, 0.5, 1.5),
	}
}
