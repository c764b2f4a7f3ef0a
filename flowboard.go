// Package flowboard implements the graph core of an interactive strategy
// board: typed cards (bets, work items, metrics) connected by weighted
// edges, mutated through a typed command channel consumed by a single graph
// store.
package flowboard

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/flowboard/flowboard/core/cards"
	"github.com/flowboard/flowboard/core/connect"
	"github.com/flowboard/flowboard/core/dispatch"
	"github.com/flowboard/flowboard/core/graph"
	"github.com/flowboard/flowboard/core/render"
	"github.com/flowboard/flowboard/helper"
	"github.com/flowboard/flowboard/model"
)

// Board wires the graph store, command dispatcher, connection creator and
// edge renderer for one strategy board.
type Board struct {
	Store      *graph.Store
	Dispatcher dispatch.Dispatcher
	Connector  *connect.Connector
	Renderer   *render.Renderer
	// Logging
	log *slog.Logger
}

type options struct {
	logger  *slog.Logger
	weights connect.WeightProvider
	paths   render.PathBuilder
	nodes   []model.Node
	edges   []model.Edge
	seeded  bool
}

// Option configures a Board.
type Option func(*options)

// WithLogger replaces the default pretty logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithWeightProvider replaces the placeholder weight sampling used for new
// connections.
func WithWeightProvider(weights connect.WeightProvider) Option {
	return func(o *options) { o.weights = weights }
}

// WithPathBuilder replaces the default bezier curve primitive.
func WithPathBuilder(paths render.PathBuilder) Option {
	return func(o *options) { o.paths = paths }
}

// WithBoard seeds the store with the given records.
func WithBoard(nodes []model.Node, edges []model.Edge) Option {
	return func(o *options) {
		o.nodes, o.edges, o.seeded = nodes, edges, true
	}
}

// WithSeedBoard seeds the store with the starter dataset.
func WithSeedBoard() Option {
	return func(o *options) {
		o.nodes, o.edges = Seed()
		o.seeded = true
	}
}

// New creates a board. Without options it starts empty, logs through the
// pretty handler at info level and assigns placeholder weights to new
// connections.
func New(opts ...Option) (*Board, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		prettyOpts := helper.PrettyHandlerOptions{
			SlogOpts: slog.HandlerOptions{Level: slog.LevelInfo},
		}
		logger = slog.New(helper.NewPrettyHandler(os.Stdout, prettyOpts))
	}

	store := graph.NewStore()
	if o.seeded {
		if err := store.Load(o.nodes, o.edges); err != nil {
			return nil, helper.NewError("load board", err)
		}
	}

	dispatcher := dispatch.NewStoreDispatcher(store, logger)

	return &Board{
		Store:      store,
		Dispatcher: dispatcher,
		Connector:  connect.NewConnector(store, o.weights),
		Renderer:   render.NewRenderer(o.paths, dispatcher),
		log:        logger,
	}, nil
}

// NewCard builds the widget seam for the node with the given id, bound to
// the board's dispatcher. The widget starts with a shadow copy of the
// current canonical payload.
func (b *Board) NewCard(id string) (dispatch.Card, error) {
	node, ok := b.Store.Node(id)
	if !ok {
		return nil, helper.NewError("create card", fmt.Errorf("node %q not found", id))
	}
	return dispatch.NewCard(node, b.Dispatcher)
}

// CreateNode adds a toolbar-created card of the given type at the origin.
func (b *Board) CreateNode(t model.NodeType) (model.Node, error) {
	node := cards.NewNode(t)
	if node.Data == nil {
		return model.Node{}, fmt.Errorf("unknown node type %q", t)
	}
	if err := b.Store.AddNode(node); err != nil {
		return model.Node{}, err
	}
	b.log.Info("created node", "node", node.ID, "type", string(node.Type))
	return node, nil
}

// Connect handles a completed connection gesture reported by the canvas.
func (b *Board) Connect(conn model.Connection) (model.Edge, error) {
	edge, err := b.Connector.Connect(conn)
	if err != nil {
		return model.Edge{}, err
	}
	b.log.Info("connected", "edge", edge.ID)
	return edge, nil
}
