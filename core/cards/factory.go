// Package cards defines the per-type card factories used by toolbar creation
// and duplication.
package cards

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/flowboard/flowboard/model"
)

// duplicateOffset is how far a duplicated card lands from its source, on both
// axes.
const duplicateOffset = 50

// DefaultData returns the payload a freshly created card of the given type
// starts with. Unknown types return nil.
func DefaultData(t model.NodeType) model.CardData {
	switch t {
	case model.NodeTypeBet:
		return model.BetData{
			Name:        "New Bet",
			Hypothesis:  "Enter your hypothesis here",
			Status:      "Draft",
			Experiments: []model.Experiment{},
		}
	case model.NodeTypeWork:
		return model.WorkData{
			Source: "web",
			Name:   "New Task",
			Status: "To Do",
		}
	case model.NodeTypeMetric:
		return model.MetricData{
			Name: "New Metric",
			Metrics: []model.MetricPeriod{
				{Period: "Past 7 days", Value: "0"},
				{Period: "Past 6 weeks", Value: "0"},
				{Period: "Past 12 months", Value: "0"},
			},
			Aggregation: "Sum",
		}
	}
	return nil
}

// NewNode creates a toolbar card of the given type. New cards always land at
// the origin, not the viewport center.
func NewNode(t model.NodeType) model.Node {
	return model.Node{
		ID:        NewID(t),
		Type:      t,
		Position:  model.Position{},
		Draggable: true,
		Data:      DefaultData(t),
	}
}

// NewID synthesizes a card id in the <type>-<disambiguator> format.
func NewID(t model.NodeType) string {
	return fmt.Sprintf("%s-%s", t, uuid.NewString()[:8])
}

// Duplicate clones a node as a sibling: fresh id, position offset by
// (+50,+50), and a deep copy of the payload. data is the emitting widget's
// shadow copy; when nil the canonical payload is used instead.
func Duplicate(src model.Node, t model.NodeType, data model.CardData) model.Node {
	if t == "" {
		t = src.Type
	}
	if data == nil {
		data = src.Data
	}
	if data != nil {
		data = data.Clone()
	}
	return model.Node{
		ID:   NewID(t),
		Type: t,
		Position: model.Position{
			X: src.Position.X + duplicateOffset,
			Y: src.Position.Y + duplicateOffset,
		},
		Draggable: true,
		Data:      data,
	}
}
