// Package connect turns completed connection gestures into edge records.
package connect

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/flowboard/flowboard/core/graph"
	"github.com/flowboard/flowboard/model"
)

// WeightProvider supplies the correlation value assigned to a freshly drawn
// connection. The default provider samples a placeholder; a real computation
// can replace it without touching the connector.
type WeightProvider interface {
	Weight(source, target string) float64
}

// RandomWeightProvider samples uniformly from [-0.3, 1.2). The result is a
// placeholder correlation strength, not a meaningful statistic.
type RandomWeightProvider struct{}

func (RandomWeightProvider) Weight(_, _ string) float64 {
	return rand.Float64()*1.5 - 0.3
}

// Connector creates edges for user-drawn connections.
type Connector struct {
	store   *graph.Store
	weights WeightProvider
}

// NewConnector binds the connector to its store. A nil provider falls back to
// the random placeholder.
func NewConnector(store *graph.Store, weights WeightProvider) *Connector {
	if weights == nil {
		weights = RandomWeightProvider{}
	}
	return &Connector{store: store, weights: weights}
}

// Connect synthesizes an edge for the gesture and appends it to the store.
// The id joins source, target and both handles with "-"; absent handles join
// as empty strings. The value is rounded to 3 decimal places and the edge
// gets the default dashed styling.
func (c *Connector) Connect(conn model.Connection) (model.Edge, error) {
	value := round3(c.weights.Weight(conn.Source, conn.Target))
	edge := model.Edge{
		ID:           connectionID(conn),
		Source:       conn.Source,
		Target:       conn.Target,
		SourceHandle: conn.SourceHandle,
		TargetHandle: conn.TargetHandle,
		Animated:     true,
		Data:         model.NewEdgeData(value),
		Style:        model.DefaultEdgeStyle(),
	}
	if err := c.store.AddEdge(edge); err != nil {
		return model.Edge{}, err
	}
	return edge, nil
}

func connectionID(conn model.Connection) string {
	return fmt.Sprintf("%s-%s-%s-%s", conn.Source, conn.Target, conn.SourceHandle, conn.TargetHandle)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
