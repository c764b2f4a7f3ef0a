package render

import (
	"fmt"
	"math"

	"github.com/flowboard/flowboard/model"
)

// defaultCurvature matches the canvas collaborator's curve primitive.
const defaultCurvature = 0.25

// PathBuilder computes the drawn path between two anchors and the coordinate
// where the value label sits. The canvas collaborator may supply its own
// primitive; BezierPathBuilder mirrors the default one.
type PathBuilder interface {
	Path(p EdgeParams) (path string, labelX, labelY float64)
}

// BezierPathBuilder draws a cubic curve whose control points leave and enter
// the anchors along their handle orientations.
type BezierPathBuilder struct {
	// Curvature scales how far control points extend from their anchors.
	// Zero means the default of 0.25.
	Curvature float64
}

// Path returns the SVG path string and the curve midpoint (t = 0.5), which
// is where the label is placed.
func (b BezierPathBuilder) Path(p EdgeParams) (string, float64, float64) {
	curvature := b.Curvature
	if curvature == 0 {
		curvature = defaultCurvature
	}
	scx, scy := controlPoint(p.SourcePosition, p.SourceX, p.SourceY, p.TargetX, p.TargetY, curvature)
	tcx, tcy := controlPoint(p.TargetPosition, p.TargetX, p.TargetY, p.SourceX, p.SourceY, curvature)

	path := fmt.Sprintf("M%g,%g C%g,%g %g,%g %g,%g",
		p.SourceX, p.SourceY, scx, scy, tcx, tcy, p.TargetX, p.TargetY)

	labelX := p.SourceX*0.125 + scx*0.375 + tcx*0.375 + p.TargetX*0.125
	labelY := p.SourceY*0.125 + scy*0.375 + tcy*0.375 + p.TargetY*0.125
	return path, labelX, labelY
}

// controlPoint extends an anchor along its handle orientation towards the
// opposite anchor at (ox, oy).
func controlPoint(pos model.HandlePosition, x, y, ox, oy, curvature float64) (float64, float64) {
	switch pos {
	case model.HandleLeft:
		return x - controlOffset(x-ox, curvature), y
	case model.HandleRight:
		return x + controlOffset(ox-x, curvature), y
	case model.HandleTop:
		return x, y - controlOffset(y-oy, curvature)
	default:
		return x, y + controlOffset(oy-y, curvature)
	}
}

// controlOffset grows linearly with forward distance and like a square root
// when the curve has to double back past its anchor.
func controlOffset(distance, curvature float64) float64 {
	if distance >= 0 {
		return 0.5 * distance
	}
	return curvature * 25 * math.Sqrt(-distance)
}

// StraightMidpoint is the geometric midpoint of the straight line between
// the anchors, regardless of how the curve bends.
func StraightMidpoint(p EdgeParams) (float64, float64) {
	return (p.SourceX + p.TargetX) / 2, (p.SourceY + p.TargetY) / 2
}
