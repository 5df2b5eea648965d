// Package memory implements the episodic ring and semantic key-value store
// described in design doc Section 4.5: a fixed-size ring buffer of
// remembered events, generalized from recency-only eviction to the full
// importance/recency/emotional-intensity/access-count accessibility score.
package memory

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"
)

// Kind distinguishes episodic from semantic memories.
type Kind uint8

const (
	Episodic Kind = iota
	Semantic
)

// Memory is a single remembered item.
type Memory struct {
	ID                string
	Kind              Kind
	Content           string
	Timestamp         float64
	Location          string
	Participants      []string
	EmotionalValence  float64
	EmotionalIntensity float64
	Importance        float64
	AccessCount       int
	LastAccessed      float64
}

// NewID derives a stable id from content and timestamp, per design doc
// Section 4.5's hash(content || timestamp).
func NewID(content string, timestamp float64) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%f", content, timestamp)
	return fmt.Sprintf("%016x", h.Sum64())
}

// recency is 0.5^((now-lastAccessed)/24h).
func recency(now, lastAccessed float64) float64 {
	ageHours := now - lastAccessed
	if ageHours < 0 {
		ageHours = 0
	}
	return math.Pow(0.5, ageHours/24.0)
}

// Accessibility computes the composite recall score at time now.
func (m *Memory) Accessibility(now float64) float64 {
	r := recency(now, m.LastAccessed)
	accessTerm := math.Min(1, float64(m.AccessCount)/10.0)
	return 0.4*m.Importance + 0.3*r + 0.2*m.EmotionalIntensity + 0.1*accessTerm
}

// touch records an access: bumps access count, last-accessed time, and
// nudges importance up slightly, per design doc Section 4.5.
func (m *Memory) touch(now float64) {
	m.LastAccessed = now
	m.AccessCount++
	m.Importance = math.Min(1, m.Importance+0.01)
}

// Episodic is a capacity-bounded store of episodic memories.
type Episodic struct {
	capacity int
	items    []*Memory
}

// NewEpisodic returns an empty store capped at capacity entries.
func NewEpisodic(capacity int) *Episodic {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Episodic{capacity: capacity}
}

// Add inserts m, evicting the lowest-accessibility entries if the store
// exceeds capacity. Ties are broken in favor of the later LastAccessed.
func (e *Episodic) Add(m *Memory) {
	e.items = append(e.items, m)
	if len(e.items) > e.capacity {
		e.evict(m.Timestamp)
	}
}

func (e *Episodic) evict(now float64) {
	sort.SliceStable(e.items, func(i, j int) bool {
		ai, aj := e.items[i].Accessibility(now), e.items[j].Accessibility(now)
		if ai != aj {
			return ai > aj
		}
		return e.items[i].LastAccessed > e.items[j].LastAccessed
	})
	e.items = e.items[:e.capacity]
}

// Len returns the number of stored memories.
func (e *Episodic) Len() int { return len(e.items) }

// RecallRecent filters by timestamp >= now-hours, sorts by accessibility
// descending, returns the first limit entries, and touches each returned
// entry.
func (e *Episodic) RecallRecent(now, hours float64, limit int) []*Memory {
	var matches []*Memory
	cutoff := now - hours
	for _, m := range e.items {
		if m.Timestamp >= cutoff {
			matches = append(matches, m)
		}
	}
	return e.rankAndTouch(matches, now, limit)
}

// RecallAbout does a case-insensitive substring match over content,
// participants, and location.
func (e *Episodic) RecallAbout(now float64, subject string, limit int) []*Memory {
	needle := strings.ToLower(subject)
	var matches []*Memory
	for _, m := range e.items {
		if strings.Contains(strings.ToLower(m.Content), needle) ||
			strings.Contains(strings.ToLower(m.Location), needle) {
			matches = append(matches, m)
			continue
		}
		for _, p := range m.Participants {
			if strings.Contains(strings.ToLower(p), needle) {
				matches = append(matches, m)
				break
			}
		}
	}
	return e.rankAndTouch(matches, now, limit)
}

// RecallEmotional filters by minIntensity and an optional valence sign
// (positive: sign>0, negative: sign<0, either: sign==0), sorting by
// intensity*accessibility descending.
func (e *Episodic) RecallEmotional(now float64, signFilter int, minIntensity float64, limit int) []*Memory {
	var matches []*Memory
	for _, m := range e.items {
		if m.EmotionalIntensity < minIntensity {
			continue
		}
		switch {
		case signFilter > 0 && m.EmotionalValence <= 0:
			continue
		case signFilter < 0 && m.EmotionalValence >= 0:
			continue
		}
		matches = append(matches, m)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		si := matches[i].EmotionalIntensity * matches[i].Accessibility(now)
		sj := matches[j].EmotionalIntensity * matches[j].Accessibility(now)
		return si > sj
	})
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	for _, m := range matches {
		m.touch(now)
	}
	return matches
}

func (e *Episodic) rankAndTouch(matches []*Memory, now float64, limit int) []*Memory {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Accessibility(now) > matches[j].Accessibility(now)
	})
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	for _, m := range matches {
		m.touch(now)
	}
	return matches
}

// Semantic is an overwrite-by-topic store of learned facts.
type Semantic struct {
	byTopic map[string]*Memory
}

// NewSemantic returns an empty semantic store.
func NewSemantic() *Semantic {
	return &Semantic{byTopic: map[string]*Memory{}}
}

// Set writes or overwrites the memory for topic.
func (s *Semantic) Set(topic, content string, confidence, now float64) {
	s.byTopic[topic] = &Memory{
		ID:           NewID(content, now),
		Kind:         Semantic,
		Content:      content,
		Timestamp:    now,
		Importance:   confidence,
		LastAccessed: now,
	}
}

// Get returns the memory stored for topic, or nil.
func (s *Semantic) Get(topic string) *Memory {
	return s.byTopic[topic]
}
