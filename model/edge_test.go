package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeValue(t *testing.T) {
	t.Run("Nil data means unevaluated", func(t *testing.T) {
		assert.Nil(t, Edge{ID: "A-B"}.Value())
	})

	t.Run("Returns the wrapped value", func(t *testing.T) {
		edge := Edge{ID: "A-B", Data: NewEdgeData(0.711)}

		v := edge.Value()

		assert.NotNil(t, v)
		assert.Equal(t, 0.711, *v)
	})
}

func TestDefaultEdgeStyle(t *testing.T) {
	style := DefaultEdgeStyle()

	assert.Equal(t, 2.0, style.StrokeWidth)
	assert.Equal(t, "#666", style.Stroke)
	assert.Equal(t, "4 4", style.StrokeDasharray, "Expected new connections to render dashed")
}
