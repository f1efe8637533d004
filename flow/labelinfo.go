package flow

import (
	"github.com/probekit/jvm-flow/bytecode"
)

// Info holds the control-flow properties computed for one label. Records
// live for the duration of a single method analysis and are owned
// exclusively by the Store that created them.
type Info struct {
	invocationLine int
	hasInvocation  bool
	target         bool
	multiTarget    bool
	successor      bool

	// done guards against counting a label twice within one switch
	// statement. Valid only between ResetDedup and the end of that
	// switch's processing.
	done bool
}

// Target reports whether any control-flow edge designates this label as a
// destination.
func (i *Info) Target() bool {
	return i != nil && i.target
}

// MultiTarget reports whether this label is targeted by more than one
// distinct control-flow edge, making it a join point.
func (i *Info) MultiTarget() bool {
	return i != nil && i.multiTarget
}

// Successor reports whether this label is reachable by falling through
// from the instruction immediately before it.
func (i *Info) Successor() bool {
	return i != nil && i.successor
}

// InvocationLine returns the source line of the most recent method
// invocation at or before this label, if one was recorded.
func (i *Info) InvocationLine() (int, bool) {
	if i == nil {
		return 0, false
	}
	return i.invocationLine, i.hasInvocation
}

// Store is the per-analysis attribute table keyed by label identity. One
// Store belongs to exactly one analysis run; it is never shared across
// concurrent runs.
type Store struct {
	infos map[*bytecode.Label]*Info
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{infos: make(map[*bytecode.Label]*Info)}
}

// Get returns the record for a label, or nil if the analysis never touched
// it. The returned record must not be retained past the store's lifetime.
func (s *Store) Get(l *bytecode.Label) *Info {
	return s.infos[l]
}

// Len returns the number of labels with recorded properties.
func (s *Store) Len() int {
	return len(s.infos)
}

func (s *Store) info(l *bytecode.Label) *Info {
	i, ok := s.infos[l]
	if !ok {
		i = &Info{}
		s.infos[l] = i
	}
	return i
}

// MarkTarget records one incoming control-flow edge. The second distinct
// marking of the same label promotes it to a multitarget.
func (s *Store) MarkTarget(l *bytecode.Label) {
	i := s.info(l)
	if i.target {
		i.multiTarget = true
	} else {
		i.target = true
	}
}

// MarkSuccessor records that the label is reachable by fall-through.
func (s *Store) MarkSuccessor(l *bytecode.Label) {
	s.info(l).successor = true
}

// SetInvocationLine records the source line of a method invocation whose
// active line marker starts at this label.
func (s *Store) SetInvocationLine(l *bytecode.Label, line int) {
	i := s.info(l)
	i.invocationLine = line
	i.hasInvocation = true
}

// ResetDedup clears the per-switch dedup flag on the given labels. Called
// once for all destinations of a switch before that switch is processed.
func (s *Store) ResetDedup(labels ...*bytecode.Label) {
	for _, l := range labels {
		s.info(l).done = false
	}
}

// IsDedupMarked reports whether the label was already counted within the
// switch currently being processed.
func (s *Store) IsDedupMarked(l *bytecode.Label) bool {
	return s.info(l).done
}

// MarkDedup marks the label as counted within the current switch.
func (s *Store) MarkDedup(l *bytecode.Label) {
	s.info(l).done = true
}
