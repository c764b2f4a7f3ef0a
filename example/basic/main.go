package main

import (
	"fmt"
	"log"

	"github.com/flowboard/flowboard"
	"github.com/flowboard/flowboard/core/dispatch"
	"github.com/flowboard/flowboard/core/render"
	"github.com/flowboard/flowboard/model"
)

func main() {
	// Create a board preloaded with the starter dataset
	board, err := flowboard.New(flowboard.WithSeedBoard())
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}
	fmt.Printf("Seeded board: %d nodes, %d edges\n", len(board.Store.Nodes()), len(board.Store.Edges()))

	// Edit a work card the way a widget would: through its shadow copy
	card, err := board.NewCard("work-2")
	if err != nil {
		log.Fatalf("Failed to create card: %v", err)
	}
	work := card.(*dispatch.WorkCard)
	work.SetName("Social + email notifications")
	work.SetProgress("75")
	work.SetIssues("not a number") // coerces to 0

	node, _ := board.Store.Node("work-2")
	fmt.Printf("Canonical payload after edits: %+v\n", node.Data)

	// Duplicate and create through the command channel and toolbar
	work.Duplicate()
	if _, err := board.CreateNode(model.NodeTypeBet); err != nil {
		log.Fatalf("Failed to create node: %v", err)
	}
	fmt.Printf("After duplicate + create: %d nodes\n", len(board.Store.Nodes()))

	// Draw a new connection between two metrics
	edge, err := board.Connect(model.Connection{
		Source:       "metric-6",
		Target:       "metric-8",
		SourceHandle: model.HandleBottom,
		TargetHandle: model.HandleTop,
	})
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	fmt.Printf("New edge %s with value %.3f\n", edge.ID, *edge.Value())

	// Render it with live anchor coordinates from the canvas
	params := render.EdgeParams{
		ID:             edge.ID,
		SourceX:        1300,
		SourceY:        150,
		TargetX:        1300,
		TargetY:        900,
		SourcePosition: model.HandleBottom,
		TargetPosition: model.HandleTop,
		Value:          edge.Value(),
	}
	rendered := board.Renderer.Render(params)
	fmt.Printf("Edge path %q, label %q on %s\n", rendered.Path, rendered.Label.Text, rendered.Stroke)

	// Hover the edge and activate its delete control
	control := board.Renderer.PointerEnter(params)
	fmt.Printf("Delete control at (%g, %g)\n", control.X, control.Y)
	board.Renderer.ActivateDelete(edge.ID)
	fmt.Printf("After delete: %d edges\n", len(board.Store.Edges()))
}
