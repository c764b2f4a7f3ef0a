package flowboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowboard/flowboard/core/dispatch"
	"github.com/flowboard/flowboard/core/render"
	"github.com/flowboard/flowboard/model"
)

type fixedWeights struct {
	value float64
}

func (w fixedWeights) Weight(_, _ string) float64 { return w.value }

func TestNew(t *testing.T) {
	t.Run("Starts empty without options", func(t *testing.T) {
		board, err := New()
		require.NoError(t, err)

		assert.Empty(t, board.Store.Nodes())
		assert.Empty(t, board.Store.Edges())
	})

	t.Run("Seeds the starter board", func(t *testing.T) {
		board, err := New(WithSeedBoard())
		require.NoError(t, err)

		assert.Len(t, board.Store.Nodes(), 15)
		assert.Len(t, board.Store.Edges(), 15)
	})

	t.Run("Rejects an inconsistent board", func(t *testing.T) {
		_, err := New(WithBoard(nil, []model.Edge{{ID: "A-B", Source: "A", Target: "B"}}))
		assert.Error(t, err, "Expected seeding to go through store validation")
	})
}

func TestSeed(t *testing.T) {
	t.Run("Returns fresh copies", func(t *testing.T) {
		nodes, _ := Seed()
		nodes[0].ID = "tampered"

		again, _ := Seed()
		assert.Equal(t, "bet-1", again[0].ID)
	})

	t.Run("Metric links carry correlation values", func(t *testing.T) {
		_, edges := Seed()

		var valued, unevaluated int
		for _, e := range edges {
			if e.Value() != nil {
				valued++
			} else {
				unevaluated++
			}
		}
		assert.Equal(t, 7, valued, "Expected every metric-to-metric link to be evaluated")
		assert.Equal(t, 8, unevaluated)
	})
}

func TestBoardCardFlow(t *testing.T) {
	board, err := New(WithSeedBoard())
	require.NoError(t, err)

	card, err := board.NewCard("work-2")
	require.NoError(t, err)
	work, ok := card.(*dispatch.WorkCard)
	require.True(t, ok)

	work.SetName("Social + email notifications")
	work.SetProgress("75")

	node, ok := board.Store.Node("work-2")
	require.True(t, ok)
	data := node.Data.(model.WorkData)
	assert.Equal(t, "Social + email notifications", data.Name, "Expected widget edits to reach the canonical payload")
	assert.Equal(t, 75, data.Progress)
	assert.Equal(t, "web", data.Source, "Expected untouched fields to survive the whole-payload update")

	t.Run("Duplicate lands beside the source", func(t *testing.T) {
		work.Duplicate()

		nodes := board.Store.Nodes()
		require.Len(t, nodes, 16)
		src, _ := board.Store.Node("work-2")
		dup := nodes[15]
		assert.Equal(t, src.Position.X+50, dup.Position.X)
		assert.Equal(t, src.Position.Y+50, dup.Position.Y)
		assert.Equal(t, src.Data, dup.Data)
	})

	t.Run("Delete cascades to edges", func(t *testing.T) {
		work.Delete()

		_, ok := board.Store.Node("work-2")
		assert.False(t, ok)
		for _, e := range board.Store.Edges() {
			assert.NotEqual(t, "work-2", e.Source)
			assert.NotEqual(t, "work-2", e.Target)
		}
	})

	t.Run("Unknown id has no card", func(t *testing.T) {
		_, err := board.NewCard("ghost")
		assert.Error(t, err)
	})
}

func TestBoardCreateNode(t *testing.T) {
	board, err := New()
	require.NoError(t, err)

	node, err := board.CreateNode(model.NodeTypeMetric)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(node.ID, "metric-"))
	assert.Equal(t, model.Position{X: 0, Y: 0}, node.Position, "Expected toolbar cards to land at the origin")
	stored, ok := board.Store.Node(node.ID)
	require.True(t, ok)
	assert.Equal(t, node, stored)

	t.Run("Rejects an unknown type", func(t *testing.T) {
		_, err := board.CreateNode("gauge")
		assert.Error(t, err)
	})
}

func TestBoardConnect(t *testing.T) {
	board, err := New(
		WithSeedBoard(),
		WithWeightProvider(fixedWeights{value: 0.123456}),
	)
	require.NoError(t, err)

	edge, err := board.Connect(model.Connection{
		Source:       "metric-6",
		Target:       "metric-8",
		SourceHandle: model.HandleBottom,
		TargetHandle: model.HandleTop,
	})
	require.NoError(t, err)

	assert.Equal(t, "metric-6-metric-8-bottom-top", edge.ID)
	require.NotNil(t, edge.Value())
	assert.Equal(t, 0.123, *edge.Value())
	assert.Len(t, board.Store.Edges(), 16)

	t.Run("Renderer delete removes the stored edge", func(t *testing.T) {
		params := render.EdgeParams{
			ID:      edge.ID,
			SourceX: 1300, SourceY: 150, TargetX: 1300, TargetY: 900,
			SourcePosition: model.HandleBottom,
			TargetPosition: model.HandleTop,
			Value:          edge.Value(),
		}
		rendered := board.Renderer.Render(params)
		require.NotNil(t, rendered.Label)
		assert.Equal(t, "0.123", rendered.Label.Text)

		board.Renderer.PointerEnter(params)
		stop := board.Renderer.ActivateDelete(edge.ID)

		assert.True(t, stop)
		_, ok := board.Store.Edge(edge.ID)
		assert.False(t, ok)
	})

	t.Run("Rejects unknown endpoints", func(t *testing.T) {
		_, err := board.Connect(model.Connection{Source: "ghost", Target: "metric-8"})
		assert.Error(t, err)
	})
}
