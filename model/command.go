package model

// Command is a mutation request emitted by a card widget or the edge
// renderer and consumed exactly once by the graph owner. Commands are
// fire-and-forget: unknown ids degrade to no-ops on the consuming side.
type Command interface {
	isCommand()
}

// UpdateNode replaces the full payload of the node with the given id. Widgets
// always send the whole payload, never a field delta.
type UpdateNode struct {
	ID   string
	Data CardData
}

// DuplicateNode requests a new sibling node cloned from the node with the
// given id. Data is the emitting widget's shadow copy, which may be newer
// than the canonical payload.
type DuplicateNode struct {
	ID   string
	Type NodeType
	Data CardData
}

// DeleteNode requests removal of a node and, through the store's cascade,
// every edge attached to it.
type DeleteNode struct {
	ID string
}

// DeleteEdge requests removal of a single edge.
type DeleteEdge struct {
	ID string
}

func (UpdateNode) isCommand()    {}
func (DuplicateNode) isCommand() {}
func (DeleteNode) isCommand()    {}
func (DeleteEdge) isCommand()    {}
