// Package telemetry implements the observability channel described in
// design doc Section 7. None of the four error kinds below ever propagate
// as a Go error through the kernel's public API; instead they are recorded
// here so tests (and an embedding host) can observe what the core decided
// to do about a bad input.
//
// Structured after a Simulation.Events slice with EmitEvent/Subscribe
// pub-sub, trimmed to a plain bounded ring since no SSE/streaming
// transport is in scope for the cognitive core.
package telemetry

import "sync"

// Kind enumerates the telemetry-worthy conditions from design doc Section 7.
type Kind uint8

const (
	// InvariantViolation is a fatal condition clamp-and-logged in release mode.
	InvariantViolation Kind = iota
	// UnknownReference names an agent_id/goal_id/subject that does not exist.
	UnknownReference
	// ConflictingUpdate is a goal transition that violates the state machine.
	ConflictingUpdate
	// Starvation marks an agent with no open goals and no urgent needs.
	Starvation
)

func (k Kind) String() string {
	switch k {
	case InvariantViolation:
		return "invariant_violation"
	case UnknownReference:
		return "unknown_reference"
	case ConflictingUpdate:
		return "conflicting_update"
	case Starvation:
		return "starvation"
	default:
		return "unknown"
	}
}

// Event is one telemetry record.
type Event struct {
	Component string
	Kind      Kind
	Detail    string
	Tick      uint64
}

// Sink is a bounded, thread-safe ring buffer of telemetry events.
type Sink struct {
	mu       sync.Mutex
	events   []Event
	capacity int
	next     int
	full     bool
}

// NewSink creates a Sink that retains at most capacity events, dropping the
// oldest on overflow. capacity <= 0 is treated as 256.
func NewSink(capacity int) *Sink {
	if capacity <= 0 {
		capacity = 256
	}
	return &Sink{events: make([]Event, capacity), capacity: capacity}
}

// Emit records an event, overwriting the oldest entry if the sink is full.
// A nil Sink silently discards — callers need not nil-check before emitting.
func (s *Sink) Emit(e Event) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[s.next] = e
	s.next = (s.next + 1) % s.capacity
	if s.next == 0 {
		s.full = true
	}
}

// Recent returns up to n most recently emitted events, oldest first. n <= 0
// returns all retained events.
func (s *Sink) Recent(n int) []Event {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var ordered []Event
	if s.full {
		ordered = append(ordered, s.events[s.next:]...)
		ordered = append(ordered, s.events[:s.next]...)
	} else {
		ordered = append(ordered, s.events[:s.next]...)
	}

	if n <= 0 || n >= len(ordered) {
		return ordered
	}
	return ordered[len(ordered)-n:]
}

// Count returns the number of events emitted with the given kind currently
// retained in the sink. Useful for assertions in tests.
func (s *Sink) Count(k Kind) int {
	n := 0
	for _, e := range s.Recent(0) {
		if e.Kind == k {
			n++
		}
	}
	return n
}
