package model

// HandlePosition names an anchor on a card where an edge can leave or enter.
type HandlePosition string

const (
	HandleTop    HandlePosition = "top"
	HandleLeft   HandlePosition = "left"
	HandleRight  HandlePosition = "right"
	HandleBottom HandlePosition = "bottom"
)

// EdgeData carries the semantic annotation of an edge. A nil Value means the
// connection has not been evaluated and renders without a label.
type EdgeData struct {
	Value *float64 `json:"value,omitempty"`
}

// NewEdgeData wraps a correlation value.
func NewEdgeData(value float64) *EdgeData {
	return &EdgeData{Value: &value}
}

// EdgeStyle holds presentation-only stroke attributes. It is not part of the
// semantic model and is never inspected by the store.
type EdgeStyle struct {
	StrokeWidth     float64 `json:"strokeWidth,omitempty"`
	Stroke          string  `json:"stroke,omitempty"`
	StrokeDasharray string  `json:"strokeDasharray,omitempty"`
	StrokeOpacity   float64 `json:"strokeOpacity,omitempty"`
}

// DefaultEdgeStyle is the dashed neutral styling applied to freshly drawn
// connections.
func DefaultEdgeStyle() EdgeStyle {
	return EdgeStyle{
		StrokeWidth:     2,
		Stroke:          "#666",
		StrokeDasharray: "4 4",
	}
}

// Edge is a directed connection between two cards, optionally annotated with
// a correlation value.
type Edge struct {
	ID           string         `json:"id"`
	Source       string         `json:"source"`
	Target       string         `json:"target"`
	SourceHandle HandlePosition `json:"sourceHandle,omitempty"`
	TargetHandle HandlePosition `json:"targetHandle,omitempty"`
	Animated     bool           `json:"animated,omitempty"`
	Selected     bool           `json:"selected,omitempty"`
	Data         *EdgeData      `json:"data,omitempty"`
	Style        EdgeStyle      `json:"style,omitempty"`
}

// Value returns the edge's correlation value, or nil when the edge carries no
// annotation.
func (e Edge) Value() *float64 {
	if e.Data == nil {
		return nil
	}
	return e.Data.Value
}

// Connection is a completed user connection gesture as reported by the
// canvas collaborator.
type Connection struct {
	Source       string         `json:"source"`
	Target       string         `json:"target"`
	SourceHandle HandlePosition `json:"sourceHandle"`
	TargetHandle HandlePosition `json:"targetHandle"`
}
