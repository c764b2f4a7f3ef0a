// Command server exposes one board to a canvas frontend over HTTP: snapshot
// reads, the mutation command channel, canvas change lists and connection
// gestures.
package main

import (
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/gofiber/fiber/v3"

	"github.com/flowboard/flowboard"
	"github.com/flowboard/flowboard/core/graph"
	"github.com/flowboard/flowboard/helper"
	"github.com/flowboard/flowboard/model"
)

// boardJSON is the snapshot shape the canvas re-renders from.
type boardJSON struct {
	Nodes []model.Node `json:"nodes"`
	Edges []model.Edge `json:"edges"`
}

type createNodeJSON struct {
	Type string `json:"type"`
}

type updateNodeJSON struct {
	Data json.RawMessage `json:"data"`
}

// nodeChangeJSON is the wire form of one canvas node delta.
type nodeChangeJSON struct {
	Type     string          `json:"type"`
	ID       string          `json:"id"`
	Position *model.Position `json:"position,omitempty"`
	Dragging bool            `json:"dragging,omitempty"`
	Selected bool            `json:"selected,omitempty"`
}

type edgeChangeJSON struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Selected bool   `json:"selected,omitempty"`
}

func main() {
	config, err := helper.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	prettyOpts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: config.LogLevel},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, prettyOpts))

	board, err := flowboard.New(
		flowboard.WithLogger(logger),
		flowboard.WithSeedBoard(),
	)
	if err != nil {
		log.Fatalf("board: %v", err)
	}

	// The core is single-owner by contract; fiber handlers run concurrently,
	// so all board access goes through one mutex.
	var mu sync.Mutex

	app := fiber.New()

	// ── Board ─────────────────────────────────────────────────────────
	app.Get("/board", func(c fiber.Ctx) error {
		mu.Lock()
		snapshot := boardJSON{Nodes: board.Store.Nodes(), Edges: board.Store.Edges()}
		mu.Unlock()
		return c.JSON(snapshot)
	})

	// ── Nodes ─────────────────────────────────────────────────────────
	app.Post("/nodes", func(c fiber.Ctx) error {
		var body createNodeJSON
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		nodeType, err := model.ParseNodeType(body.Type)
		if err != nil {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		mu.Lock()
		node, err := board.CreateNode(nodeType)
		mu.Unlock()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(node)
	})

	app.Put("/nodes/:id", func(c fiber.Ctx) error {
		var body updateNodeJSON
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		mu.Lock()
		defer mu.Unlock()
		node, ok := board.Store.Node(c.Params("id"))
		if !ok {
			// Commands tolerate unknown ids; a direct API call reports them.
			return c.Status(404).JSON(fiber.Map{"error": "node not found"})
		}
		data, err := model.DecodeCardData(node.Type, body.Data)
		if err != nil {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		board.Dispatcher.Dispatch(model.UpdateNode{ID: node.ID, Data: data})
		return c.SendStatus(202)
	})

	app.Post("/nodes/:id/duplicate", func(c fiber.Ctx) error {
		mu.Lock()
		defer mu.Unlock()
		node, ok := board.Store.Node(c.Params("id"))
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "node not found"})
		}
		board.Dispatcher.Dispatch(model.DuplicateNode{ID: node.ID, Type: node.Type, Data: node.Data})
		return c.SendStatus(202)
	})

	app.Delete("/nodes/:id", func(c fiber.Ctx) error {
		mu.Lock()
		board.Dispatcher.Dispatch(model.DeleteNode{ID: c.Params("id")})
		mu.Unlock()
		return c.SendStatus(202)
	})

	// ── Edges ─────────────────────────────────────────────────────────
	app.Delete("/edges/:id", func(c fiber.Ctx) error {
		mu.Lock()
		board.Dispatcher.Dispatch(model.DeleteEdge{ID: c.Params("id")})
		mu.Unlock()
		return c.SendStatus(202)
	})

	app.Post("/connect", func(c fiber.Ctx) error {
		var conn model.Connection
		if err := c.Bind().JSON(&conn); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		mu.Lock()
		edge, err := board.Connect(conn)
		mu.Unlock()
		if errors.Is(err, graph.ErrNodeNotFound) {
			return c.Status(422).JSON(fiber.Map{"error": "unknown endpoint"})
		}
		if errors.Is(err, graph.ErrDuplicateEdge) {
			return c.Status(409).JSON(fiber.Map{"error": "edge already exists"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(edge)
	})

	// ── Canvas change lists ───────────────────────────────────────────
	app.Post("/changes/nodes", func(c fiber.Ctx) error {
		var body []nodeChangeJSON
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		changes := make([]model.NodeChange, 0, len(body))
		for _, ch := range body {
			switch ch.Type {
			case "position":
				if ch.Position == nil {
					return c.Status(400).JSON(fiber.Map{"error": "position change without position"})
				}
				changes = append(changes, model.NodePositionChange{ID: ch.ID, Position: *ch.Position, Dragging: ch.Dragging})
			case "select":
				changes = append(changes, model.NodeSelectionChange{ID: ch.ID, Selected: ch.Selected})
			case "remove":
				changes = append(changes, model.NodeRemoveChange{ID: ch.ID})
			default:
				return c.Status(400).JSON(fiber.Map{"error": "unknown change type " + ch.Type})
			}
		}
		mu.Lock()
		board.Store.ApplyNodeChanges(changes)
		mu.Unlock()
		return c.SendStatus(204)
	})

	app.Post("/changes/edges", func(c fiber.Ctx) error {
		var body []edgeChangeJSON
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		changes := make([]model.EdgeChange, 0, len(body))
		for _, ch := range body {
			switch ch.Type {
			case "select":
				changes = append(changes, model.EdgeSelectionChange{ID: ch.ID, Selected: ch.Selected})
			case "remove":
				changes = append(changes, model.EdgeRemoveChange{ID: ch.ID})
			default:
				return c.Status(400).JSON(fiber.Map{"error": "unknown change type " + ch.Type})
			}
		}
		mu.Lock()
		board.Store.ApplyEdgeChanges(changes)
		mu.Unlock()
		return c.SendStatus(204)
	})

	log.Fatal(app.Listen(config.Addr))
}
