// Package composite implements the hierarchical sensor/group aggregation
// tree described in spec §3/§4.3: a process-singleton root group holding
// leaves (one per sensor serial) and nested groups, each carrying
// aggregated statistics derived from the leaves beneath it.
package composite

import (
	"sync"

	"nrgchamp/sensormon/internal/record"
)

// Node is the tagged-variant contract both Leaf and Group satisfy. Go has
// no sum types, so the tag is expressed as an interface implemented by
// exactly two concrete types; callers that need to distinguish them do so
// with a type switch (see Visitor dispatch in manager.go), never with a
// third implementation.
type Node interface {
	// NodeName returns the node's display name.
	NodeName() string
	// AddData attempts to fold r into this node's state, recursing into
	// children for a Group. Returns whether any leaf accepted the record.
	AddData(r record.Record) bool
	// Stats returns this node's aggregated statistics.
	Stats() Stats
}

// Leaf holds the append-only history of a single sensor.
type Leaf struct {
	mu      sync.Mutex
	Serial  string
	Name    string
	Type    record.Type
	History []record.Record
}

// NewLeaf returns a Leaf for serial with no history yet.
func NewLeaf(serial string) *Leaf {
	return &Leaf{Serial: serial, Name: serial, Type: record.TypeUnknown}
}

func (l *Leaf) NodeName() string { return l.Name }

// AddData appends r to the leaf's history and refreshes its type, but only
// when r.Serial matches the leaf's serial; a mismatched record is rejected.
func (l *Leaf) AddData(r record.Record) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if r.Serial != l.Serial {
		return false
	}
	l.History = append(l.History, r)
	if r.Type != "" {
		l.Type = r.Type
	}
	return true
}

func (l *Leaf) snapshot() (record.Type, []record.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	hist := make([]record.Record, len(l.History))
	copy(hist, l.History)
	return l.Type, hist
}

// Group holds an ordered, set-like collection of child nodes.
type Group struct {
	mu       sync.Mutex
	Name     string
	Type     record.Type
	Children []Node
}

// NewGroup returns an empty Group named name with the given type tag.
func NewGroup(name string, typ record.Type) *Group {
	return &Group{Name: name, Type: typ}
}

func (g *Group) NodeName() string { return g.Name }

// AddChild appends child if it is not already present (identity-based
// de-dup). Returns whether the child was newly inserted.
func (g *Group) AddChild(child Node) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range g.Children {
		if c == child {
			return false
		}
	}
	g.Children = append(g.Children, child)
	return true
}

func (g *Group) childSnapshot() []Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Node, len(g.Children))
	copy(out, g.Children)
	return out
}

// AddData fans r to every child in insertion order; returns true if any
// child (transitively, any leaf) accepted it.
func (g *Group) AddData(r record.Record) bool {
	accepted := false
	for _, c := range g.childSnapshot() {
		if c.AddData(r) {
			accepted = true
		}
	}
	return accepted
}
