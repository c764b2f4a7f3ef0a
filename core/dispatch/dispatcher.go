// Package dispatch carries mutation commands from card widgets to the graph
// owner. Widgets never hold a store reference; they are handed a Dispatcher
// at construction and stay reusable, store-agnostic renderers.
package dispatch

import (
	"log/slog"

	"github.com/flowboard/flowboard/core/cards"
	"github.com/flowboard/flowboard/core/graph"
	"github.com/flowboard/flowboard/model"
)

// Dispatcher delivers mutation commands to whoever owns the canonical graph.
type Dispatcher interface {
	Dispatch(cmd model.Command)
}

// StoreDispatcher is the single consumer of the command channel. It applies
// commands to the store strictly in arrival order. Commands are
// fire-and-forget: unknown ids and store rejections degrade to logged no-ops,
// never errors surfaced to the emitting widget.
type StoreDispatcher struct {
	store *graph.Store
	log   *slog.Logger
}

// NewStoreDispatcher binds the dispatcher to its store.
func NewStoreDispatcher(store *graph.Store, logger *slog.Logger) *StoreDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreDispatcher{store: store, log: logger}
}

// Dispatch applies one command to the store.
func (d *StoreDispatcher) Dispatch(cmd model.Command) {
	switch cmd := cmd.(type) {
	case model.UpdateNode:
		if err := d.store.UpdateNodeData(cmd.ID, cmd.Data); err != nil {
			d.log.Warn("dropped update command", "node", cmd.ID, "error", err.Error())
		}
	case model.DuplicateNode:
		src, ok := d.store.Node(cmd.ID)
		if !ok {
			d.log.Warn("dropped duplicate command", "node", cmd.ID, "reason", "source node unknown")
			return
		}
		dup := cards.Duplicate(src, cmd.Type, cmd.Data)
		if err := d.store.AddNode(dup); err != nil {
			d.log.Warn("dropped duplicate command", "node", cmd.ID, "error", err.Error())
			return
		}
		d.log.Info("duplicated node", "source", cmd.ID, "node", dup.ID)
	case model.DeleteNode:
		d.store.RemoveNode(cmd.ID)
	case model.DeleteEdge:
		d.store.RemoveEdge(cmd.ID)
	}
}
