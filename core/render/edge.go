// Package render computes the visual model of custom edges: curve geometry,
// the floating value label, and the transient delete affordance.
package render

import (
	"strconv"

	"github.com/flowboard/flowboard/model"
)

// Stroke colors applied by the value policy.
const (
	ColorPositive = "#4CD964"
	ColorNegative = "#E53E3E"
	ColorNeutral  = "#666"
)

// Dispatcher is the command sink the renderer emits edge deletes into.
type Dispatcher interface {
	Dispatch(cmd model.Command)
}

// EdgeParams is the per-frame render input: the live anchor screen
// coordinates with their handle orientations, supplied by the canvas, plus
// the edge's current value.
type EdgeParams struct {
	ID             string
	SourceX        float64
	SourceY        float64
	TargetX        float64
	TargetY        float64
	SourcePosition model.HandlePosition
	TargetPosition model.HandlePosition
	Value          *float64
}

// EdgeLabel is the floating value annotation placed at the curve midpoint.
// It renders above the canvas transform layer with pointer events enabled so
// it never blocks clicking the edge itself.
type EdgeLabel struct {
	Text       string
	X          float64
	Y          float64
	Background string
	ZIndex     int
}

// RenderedEdge is everything the canvas needs to draw one edge. Label is nil
// for edges without a value; those render as neutral, non-evaluated
// connectors.
type RenderedEdge struct {
	Path          string
	Stroke        string
	StrokeWidth   float64
	StrokeOpacity float64
	Label         *EdgeLabel
}

// DeleteControl is the transient delete affordance shown while the pointer
// is over an edge: a 20x20 control centered on the straight-line midpoint of
// the anchors, lifted 20 above the edge.
type DeleteControl struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Renderer draws custom edges and owns their hover state.
type Renderer struct {
	paths      PathBuilder
	dispatcher Dispatcher
	hovered    map[string]bool
}

// NewRenderer builds a renderer. A nil builder falls back to the cubic
// bezier default.
func NewRenderer(paths PathBuilder, dispatcher Dispatcher) *Renderer {
	if paths == nil {
		paths = BezierPathBuilder{}
	}
	return &Renderer{paths: paths, dispatcher: dispatcher, hovered: map[string]bool{}}
}

// Render is a pure function of the edge's value and the anchor coordinates
// the canvas supplies each frame. Stroke and label background are green when
// the value is >= 0 and red when it is < 0; edges without a value render as
// neutral connectors with no label.
func (r *Renderer) Render(p EdgeParams) RenderedEdge {
	path, labelX, labelY := r.paths.Path(p)
	out := RenderedEdge{
		Path:          path,
		Stroke:        ColorNeutral,
		StrokeWidth:   2,
		StrokeOpacity: 0.7,
	}
	if p.Value == nil {
		return out
	}
	stroke := ColorPositive
	if *p.Value < 0 {
		stroke = ColorNegative
	}
	out.Stroke = stroke
	out.Label = &EdgeLabel{
		Text:       strconv.FormatFloat(*p.Value, 'f', 3, 64),
		X:          labelX,
		Y:          labelY,
		Background: stroke,
		ZIndex:     10,
	}
	return out
}

// PointerEnter marks the edge as hovered and returns its delete control
// geometry.
func (r *Renderer) PointerEnter(p EdgeParams) DeleteControl {
	r.hovered[p.ID] = true
	return deleteControl(p)
}

// PointerLeave hides the delete control again.
func (r *Renderer) PointerLeave(id string) {
	delete(r.hovered, id)
}

// Hovered reports whether the delete control for the edge is visible.
func (r *Renderer) Hovered(id string) bool {
	return r.hovered[id]
}

// ActivateDelete emits the edge-scoped delete command. It reports true so
// the host stops the click from reaching the canvas underneath, which would
// otherwise start a connection drag or change the selection.
func (r *Renderer) ActivateDelete(id string) (stopPropagation bool) {
	delete(r.hovered, id)
	if r.dispatcher != nil {
		r.dispatcher.Dispatch(model.DeleteEdge{ID: id})
	}
	return true
}

func deleteControl(p EdgeParams) DeleteControl {
	mx, my := StraightMidpoint(p)
	return DeleteControl{X: mx - 10, Y: my - 30, Width: 20, Height: 20}
}
