// Package graph owns the canonical node and edge collections of a board.
package graph

import (
	"errors"
	"fmt"

	"github.com/flowboard/flowboard/model"
)

var (
	// ErrDuplicateNode is returned when adding a node whose id already exists.
	ErrDuplicateNode = errors.New("graph: node id already exists")
	// ErrDuplicateEdge is returned when adding an edge whose id already exists.
	ErrDuplicateEdge = errors.New("graph: edge id already exists")
	// ErrNodeNotFound is returned when an edge endpoint references no node.
	ErrNodeNotFound = errors.New("graph: node not found")
	// ErrPayloadKind is returned when a payload variant does not match the
	// node's type tag. The type tag never changes after creation.
	ErrPayloadKind = errors.New("graph: payload kind does not match node type")
)

// Store is the single owner of a board's nodes and edges. Insertion order is
// display order. The store expects one logical owner processing mutations in
// event order; callers touching it from multiple goroutines must serialize
// access themselves.
type Store struct {
	nodes []model.Node
	edges []model.Edge
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the store contents with the given records, validating them
// through the same rules as AddNode and AddEdge.
func (s *Store) Load(nodes []model.Node, edges []model.Edge) error {
	fresh := &Store{}
	for _, n := range nodes {
		if err := fresh.AddNode(n); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if err := fresh.AddEdge(e); err != nil {
			return err
		}
	}
	*s = *fresh
	return nil
}

// Nodes returns a copy of the node list in display order.
func (s *Store) Nodes() []model.Node {
	out := make([]model.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Edges returns a copy of the edge list in display order.
func (s *Store) Edges() []model.Edge {
	out := make([]model.Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Node returns the node with the given id.
func (s *Store) Node(id string) (model.Node, bool) {
	if i := s.nodeIndex(id); i >= 0 {
		return s.nodes[i], true
	}
	return model.Node{}, false
}

// Edge returns the first edge with the given id.
func (s *Store) Edge(id string) (model.Edge, bool) {
	if i := s.edgeIndex(id); i >= 0 {
		return s.edges[i], true
	}
	return model.Edge{}, false
}

// AddNode appends a node. The id must be new across the whole node set and
// the payload variant must match the type tag.
func (s *Store) AddNode(n model.Node) error {
	if n.Data != nil && n.Data.Kind() != n.Type {
		return fmt.Errorf("add node %q: %s payload on %s node: %w", n.ID, n.Data.Kind(), n.Type, ErrPayloadKind)
	}
	if s.nodeIndex(n.ID) >= 0 {
		return fmt.Errorf("add node %q: %w", n.ID, ErrDuplicateNode)
	}
	s.nodes = append(s.nodes, n)
	return nil
}

// RemoveNode removes the node with the given id and every edge whose source
// or target references it. Removing an unknown id is a no-op. This cascade is
// the only place referential integrity is actively restored.
func (s *Store) RemoveNode(id string) {
	i := s.nodeIndex(id)
	if i < 0 {
		return
	}
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)

	kept := s.edges[:0]
	for _, e := range s.edges {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	s.edges = kept
}

// AddEdge appends an edge. The id must be new and both endpoints must exist.
func (s *Store) AddEdge(e model.Edge) error {
	if s.edgeIndex(e.ID) >= 0 {
		return fmt.Errorf("add edge %q: %w", e.ID, ErrDuplicateEdge)
	}
	if s.nodeIndex(e.Source) < 0 {
		return fmt.Errorf("add edge %q: source %q: %w", e.ID, e.Source, ErrNodeNotFound)
	}
	if s.nodeIndex(e.Target) < 0 {
		return fmt.Errorf("add edge %q: target %q: %w", e.ID, e.Target, ErrNodeNotFound)
	}
	s.edges = append(s.edges, e)
	return nil
}

// RemoveEdge removes the first edge with the given id. Removing an unknown id
// is a no-op.
func (s *Store) RemoveEdge(id string) {
	i := s.edgeIndex(id)
	if i < 0 {
		return
	}
	s.edges = append(s.edges[:i], s.edges[i+1:]...)
}

// UpdateNodeData replaces the payload of the node with the given id
// wholesale. A node with an unmatched id is left untouched. The payload
// variant must match the node's type tag; the tag itself never changes.
func (s *Store) UpdateNodeData(id string, data model.CardData) error {
	i := s.nodeIndex(id)
	if i < 0 {
		return nil
	}
	if data != nil && data.Kind() != s.nodes[i].Type {
		return fmt.Errorf("update node %q: %s payload on %s node: %w", id, data.Kind(), s.nodes[i].Type, ErrPayloadKind)
	}
	s.nodes[i].Data = data
	return nil
}

// ApplyNodeChanges applies a batched canvas change list. Position and
// selection deltas touch only geometry flags, never Data. Remove changes go
// through RemoveNode so the edge cascade still runs.
func (s *Store) ApplyNodeChanges(changes []model.NodeChange) {
	for _, c := range changes {
		switch c := c.(type) {
		case model.NodePositionChange:
			if i := s.nodeIndex(c.ID); i >= 0 {
				s.nodes[i].Position = c.Position
			}
		case model.NodeSelectionChange:
			if i := s.nodeIndex(c.ID); i >= 0 {
				s.nodes[i].Selected = c.Selected
			}
		case model.NodeRemoveChange:
			s.RemoveNode(c.ID)
		}
	}
}

// ApplyEdgeChanges applies the edge-scoped canvas change list.
func (s *Store) ApplyEdgeChanges(changes []model.EdgeChange) {
	for _, c := range changes {
		switch c := c.(type) {
		case model.EdgeSelectionChange:
			if i := s.edgeIndex(c.ID); i >= 0 {
				s.edges[i].Selected = c.Selected
			}
		case model.EdgeRemoveChange:
			s.RemoveEdge(c.ID)
		}
	}
}

func (s *Store) nodeIndex(id string) int {
	for i, n := range s.nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) edgeIndex(id string) int {
	for i, e := range s.edges {
		if e.ID == id {
			return i
		}
	}
	return -1
}
