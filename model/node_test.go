package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeType(t *testing.T) {
	t.Run("Accepts the three card types", func(t *testing.T) {
		for _, s := range []string{"bet", "work", "metric"} {
			parsed, err := ParseNodeType(s)
			require.NoError(t, err)
			assert.Equal(t, NodeType(s), parsed)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		_, err := ParseNodeType("gauge")
		assert.Error(t, err)
	})
}

func TestNodeUnmarshal(t *testing.T) {
	t.Run("Selects the payload variant by type tag", func(t *testing.T) {
		raw := `{
			"id": "work-1",
			"type": "work",
			"position": {"x": -600, "y": 0},
			"draggable": true,
			"data": {"sourceName": "web", "name": "New marketing campaign", "issues": 5, "progress": 67, "status": "In progress"}
		}`

		var node Node
		require.NoError(t, json.Unmarshal([]byte(raw), &node))

		assert.Equal(t, "work-1", node.ID)
		assert.Equal(t, NodeTypeWork, node.Type)
		assert.Equal(t, Position{X: -600, Y: 0}, node.Position)
		data, ok := node.Data.(WorkData)
		require.True(t, ok, "Expected a typed payload, not a raw map")
		assert.Equal(t, "web", data.Source)
		assert.Equal(t, 67, data.Progress)
	})

	t.Run("Bet payload keeps its experiments", func(t *testing.T) {
		raw := `{
			"id": "bet-1",
			"type": "bet",
			"position": {"x": 0, "y": 0},
			"draggable": true,
			"data": {"name": "Launch push notifications", "hypothesis": "h", "status": "Active", "comments": 0, "experiments": [{"name": "Ivory slot"}]}
		}`

		var node Node
		require.NoError(t, json.Unmarshal([]byte(raw), &node))

		data, ok := node.Data.(BetData)
		require.True(t, ok)
		require.Len(t, data.Experiments, 1)
		assert.Equal(t, "Ivory slot", data.Experiments[0].Name)
	})

	t.Run("Round-trips through Marshal", func(t *testing.T) {
		node := Node{
			ID: "metric-1", Type: NodeTypeMetric, Position: Position{X: 0, Y: 450}, Draggable: true,
			Data: MetricData{
				Name: "ARR",
				Metrics: []MetricPeriod{
					{Period: "Past 7 days", Value: "0", Change: 100},
					{Period: "Past 6 weeks", Value: "-US$7,344"},
					{Period: "Past 12 months", Value: "-US$51,240", Change: -159.32},
				},
				Aggregation: "Amount increased",
			},
		}

		b, err := json.Marshal(node)
		require.NoError(t, err)
		var decoded Node
		require.NoError(t, json.Unmarshal(b, &decoded))

		assert.Equal(t, node, decoded)
	})

	t.Run("Rejects an unknown type tag", func(t *testing.T) {
		raw := `{"id": "x-1", "type": "gauge", "position": {"x": 0, "y": 0}, "data": {"name": "?"}}`

		var node Node
		err := json.Unmarshal([]byte(raw), &node)

		assert.Error(t, err, "Expected unknown tags to fail instead of producing an untyped payload")
	})

	t.Run("Tolerates a null payload", func(t *testing.T) {
		raw := `{"id": "work-9", "type": "work", "position": {"x": 0, "y": 0}, "draggable": true, "data": null}`

		var node Node
		require.NoError(t, json.Unmarshal([]byte(raw), &node))

		assert.Nil(t, node.Data)
	})
}

func TestCardDataClone(t *testing.T) {
	t.Run("Bet clone owns its experiments", func(t *testing.T) {
		src := BetData{Name: "b", Experiments: []Experiment{{Name: "Ivory slot"}}}

		clone := src.Clone().(BetData)
		clone.Experiments[0].Name = "tampered"

		assert.Equal(t, "Ivory slot", src.Experiments[0].Name)
	})

	t.Run("Metric clone owns its snapshots", func(t *testing.T) {
		src := MetricData{Name: "m", Metrics: []MetricPeriod{{Period: "MTD", Value: "0"}}}

		clone := src.Clone().(MetricData)
		clone.Metrics[0].Value = "tampered"

		assert.Equal(t, "0", src.Metrics[0].Value)
	})

	t.Run("Kind matches the variant", func(t *testing.T) {
		assert.Equal(t, NodeTypeBet, BetData{}.Kind())
		assert.Equal(t, NodeTypeWork, WorkData{}.Kind())
		assert.Equal(t, NodeTypeMetric, MetricData{}.Kind())
	})
}
