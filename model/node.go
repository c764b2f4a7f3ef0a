package model

import (
	"encoding/json"
	"fmt"
)

// NodeType identifies which card variant a node carries.
type NodeType string

const (
	NodeTypeBet    NodeType = "bet"
	NodeTypeWork   NodeType = "work"
	NodeTypeMetric NodeType = "metric"
)

// ParseNodeType validates a type tag coming off the wire.
func ParseNodeType(s string) (NodeType, error) {
	switch t := NodeType(s); t {
	case NodeTypeBet, NodeTypeWork, NodeTypeMetric:
		return t, nil
	}
	return "", fmt.Errorf("unknown node type %q", s)
}

// Position is a canvas coordinate anchored at the card's top-left corner.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a positioned, typed card on the board. The Type tag is immutable
// after creation and selects the CardData variant carried in Data.
type Node struct {
	ID        string   `json:"id"`
	Type      NodeType `json:"type"`
	Position  Position `json:"position"`
	Draggable bool     `json:"draggable"`
	Selected  bool     `json:"selected,omitempty"`
	Data      CardData `json:"data"`
}

// nodeJSON mirrors Node with the payload kept raw until the type tag is known.
type nodeJSON struct {
	ID        string          `json:"id"`
	Type      NodeType        `json:"type"`
	Position  Position        `json:"position"`
	Draggable bool            `json:"draggable"`
	Selected  bool            `json:"selected,omitempty"`
	Data      json.RawMessage `json:"data"`
}

// UnmarshalJSON decodes a node, selecting the payload variant by type tag.
// Unknown tags are an error rather than a silently untyped payload.
func (n *Node) UnmarshalJSON(b []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	n.ID = raw.ID
	n.Type = raw.Type
	n.Position = raw.Position
	n.Draggable = raw.Draggable
	n.Selected = raw.Selected
	n.Data = nil
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		if _, err := ParseNodeType(string(raw.Type)); err != nil {
			return err
		}
		return nil
	}
	data, err := DecodeCardData(raw.Type, raw.Data)
	if err != nil {
		return err
	}
	n.Data = data
	return nil
}

// DecodeCardData unmarshals a raw payload into the variant selected by the
// given type tag.
func DecodeCardData(t NodeType, raw []byte) (CardData, error) {
	switch t {
	case NodeTypeBet:
		var d BetData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case NodeTypeWork:
		var d WorkData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	case NodeTypeMetric:
		var d MetricData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, fmt.Errorf("unknown node type %q", t)
}
