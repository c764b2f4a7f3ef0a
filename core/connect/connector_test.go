package connect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowboard/flowboard/core/graph"
	"github.com/flowboard/flowboard/model"
)

// fixedWeightProvider always returns the same value.
type fixedWeightProvider struct {
	value float64
}

func (p fixedWeightProvider) Weight(_, _ string) float64 { return p.value }

func connectStore(t *testing.T) *graph.Store {
	t.Helper()
	store := graph.NewStore()
	require.NoError(t, store.AddNode(model.Node{
		ID: "B", Type: model.NodeTypeWork, Draggable: true,
		Data: model.WorkData{Source: "web", Name: "Work B", Status: "In progress"},
	}))
	require.NoError(t, store.AddNode(model.Node{
		ID: "C", Type: model.NodeTypeMetric, Draggable: true,
		Data: model.MetricData{Name: "Metric C", Metrics: []model.MetricPeriod{}, Aggregation: "Sum"},
	}))
	return store
}

func TestConnect(t *testing.T) {
	t.Run("Synthesizes the edge id from endpoints and handles", func(t *testing.T) {
		store := connectStore(t)
		connector := NewConnector(store, fixedWeightProvider{value: 0.5})

		edge, err := connector.Connect(model.Connection{
			Source: "B", Target: "C",
			SourceHandle: model.HandleRight, TargetHandle: model.HandleLeft,
		})

		require.NoError(t, err)
		assert.Equal(t, "B-C-right-left", edge.ID)
		assert.Equal(t, "B", edge.Source)
		assert.Equal(t, "C", edge.Target)
	})

	t.Run("Absent handles join as empty strings", func(t *testing.T) {
		store := connectStore(t)
		connector := NewConnector(store, fixedWeightProvider{value: 0.5})

		edge, err := connector.Connect(model.Connection{Source: "B", Target: "C"})

		require.NoError(t, err)
		assert.Equal(t, "B-C--", edge.ID)
	})

	t.Run("Rounds the value to 3 decimal places", func(t *testing.T) {
		store := connectStore(t)
		connector := NewConnector(store, fixedWeightProvider{value: 0.123456})

		edge, err := connector.Connect(model.Connection{
			Source: "B", Target: "C",
			SourceHandle: model.HandleRight, TargetHandle: model.HandleLeft,
		})

		require.NoError(t, err)
		require.NotNil(t, edge.Value())
		assert.Equal(t, 0.123, *edge.Value())
	})

	t.Run("New edges are animated with the default style", func(t *testing.T) {
		store := connectStore(t)
		connector := NewConnector(store, fixedWeightProvider{value: -0.2})

		edge, err := connector.Connect(model.Connection{
			Source: "B", Target: "C",
			SourceHandle: model.HandleRight, TargetHandle: model.HandleLeft,
		})

		require.NoError(t, err)
		assert.True(t, edge.Animated)
		assert.Equal(t, model.DefaultEdgeStyle(), edge.Style)
	})

	t.Run("Appends the edge to the store", func(t *testing.T) {
		store := connectStore(t)
		connector := NewConnector(store, fixedWeightProvider{value: 0.5})

		edge, err := connector.Connect(model.Connection{
			Source: "B", Target: "C",
			SourceHandle: model.HandleRight, TargetHandle: model.HandleLeft,
		})

		require.NoError(t, err)
		stored, ok := store.Edge(edge.ID)
		require.True(t, ok)
		assert.Equal(t, edge, stored)
	})

	t.Run("Rejects unknown endpoints", func(t *testing.T) {
		store := connectStore(t)
		connector := NewConnector(store, fixedWeightProvider{value: 0.5})

		_, err := connector.Connect(model.Connection{Source: "ghost", Target: "C"})

		assert.ErrorIs(t, err, graph.ErrNodeNotFound)
		assert.Empty(t, store.Edges())
	})

	t.Run("Rejects a repeated identical gesture", func(t *testing.T) {
		store := connectStore(t)
		connector := NewConnector(store, fixedWeightProvider{value: 0.5})
		conn := model.Connection{
			Source: "B", Target: "C",
			SourceHandle: model.HandleRight, TargetHandle: model.HandleLeft,
		}

		_, err := connector.Connect(conn)
		require.NoError(t, err)
		_, err = connector.Connect(conn)

		assert.ErrorIs(t, err, graph.ErrDuplicateEdge)
		assert.Len(t, store.Edges(), 1)
	})
}

func TestRandomWeightProvider(t *testing.T) {
	provider := RandomWeightProvider{}
	for range 1000 {
		v := provider.Weight("B", "C")
		require.GreaterOrEqual(t, v, -0.3, "Expected samples to stay within the placeholder range")
		require.Less(t, v, 1.2)
	}
}
