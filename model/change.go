package model

// NodeChange is a structural or geometric delta reported by the canvas
// collaborator in batched form. Changes never carry card payloads; applying
// a batch must leave every node's Data untouched.
type NodeChange interface {
	isNodeChange()
}

// NodePositionChange moves a node. Dragging reports an in-flight drag so
// hosts can distinguish intermediate positions from the final drop.
type NodePositionChange struct {
	ID       string
	Position Position
	Dragging bool
}

// NodeSelectionChange toggles a node's selected flag.
type NodeSelectionChange struct {
	ID       string
	Selected bool
}

// NodeRemoveChange removes a node through the canvas's default delete
// gesture. Edge cleanup follows the same cascade as an explicit delete.
type NodeRemoveChange struct {
	ID string
}

func (NodePositionChange) isNodeChange()  {}
func (NodeSelectionChange) isNodeChange() {}
func (NodeRemoveChange) isNodeChange()    {}

// EdgeChange is the edge-scoped counterpart of NodeChange.
type EdgeChange interface {
	isEdgeChange()
}

// EdgeSelectionChange toggles an edge's selected flag.
type EdgeSelectionChange struct {
	ID       string
	Selected bool
}

// EdgeRemoveChange removes an edge through the canvas's default gesture.
type EdgeRemoveChange struct {
	ID string
}

func (EdgeSelectionChange) isEdgeChange() {}
func (EdgeRemoveChange) isEdgeChange()    {}
