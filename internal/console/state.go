// Package console implements the append/scroll state machine behind the
// output console: fragment normalization with deferred trailing newlines and
// the follow-the-output scroll decisions.
//
// Nothing in this package is safe for concurrent use. Callers confine a
// Console to a single goroutine (the Bubble Tea update loop) and hand it
// fragments through an ordered queue.
package console

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// snapshotVersion is bumped when Snapshot gains fields that change meaning.
const snapshotVersion = 1

// State is the logical console state shared by Buffer and Coordinator.
type State struct {
	// PendingNewline is set when the last appended fragment ended in a line
	// terminator that was withheld from display.
	PendingNewline bool

	// ScrolledToBottom reports whether, as of the last geometry-affecting
	// event, the viewport bottom coincided with the content bottom.
	ScrolledToBottom bool
}

// NewState returns the state of a fresh console. follow selects whether an
// empty console starts out following new output.
func NewState(follow bool) *State {
	return &State{ScrolledToBottom: follow}
}

// Snapshot is the serializable form of State handed to the host across
// transient view teardown.
type Snapshot struct {
	Version          int  `yaml:"version"`
	PendingNewline   bool `yaml:"pending_newline"`
	ScrolledToBottom bool `yaml:"scrolled_to_bottom"`
}

// Snapshot copies the state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Version:          snapshotVersion,
		PendingNewline:   s.PendingNewline,
		ScrolledToBottom: s.ScrolledToBottom,
	}
}

// Restore overwrites the state with a snapshot.
func (s *State) Restore(snap Snapshot) {
	s.PendingNewline = snap.PendingNewline
	s.ScrolledToBottom = snap.ScrolledToBottom
}

// EncodeSnapshot marshals a snapshot to YAML.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot unmarshals a snapshot produced by EncodeSnapshot.
// Snapshots written by a newer version are rejected.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version > snapshotVersion {
		return Snapshot{}, fmt.Errorf("decoding snapshot: unsupported version %d", snap.Version)
	}
	return snap, nil
}
