package properties

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var bases = []Fl{0, -250, 1, 200, math.MaxFloat32, -math.MaxFloat32}

func TestResolveLength(t *testing.T) {
	for _, value := range []Fl{0, 12.5, -4} {
		for _, base := range bases {
			assert.Equal(t, value, NewLength(value).Resolve(base))
			assert.Equal(t, value, NewLP(LPLength, value).Resolve(base))
		}
	}
}

func TestResolvePercentage(t *testing.T) {
	tests := []struct {
		value, base, exp Fl
	}{
		{50, 200, 100},
		{100, 0, 0},
		{-10, 100, -10},
		{25, -80, -20},
		{200, 10, 20},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.exp, NewPercentage(tt.value).Resolve(tt.base), 1e-5)
		assert.InDelta(t, tt.exp, NewLP(LPPercentage, tt.value).Resolve(tt.base), 1e-5)
	}
	assert.Equal(t, Fl(100), NewPercentage(50).Resolve(200))
}

func TestResolveAuto(t *testing.T) {
	for _, base := range bases {
		assert.Equal(t, Fl(0), AutoLPA().Resolve(base))
		// the payload is ignored
		assert.Equal(t, Fl(0), LengthPercentageAuto{Kind: LPAAuto, Value: 7}.Resolve(base))
	}
}

func TestResolveProperty(t *testing.T) {
	assert.Equal(t, Fl(5), ResolveProperty(NewLength(5), 100))
	assert.Equal(t, Fl(0), ResolveProperty(AutoLPA(), 100))
	assert.InDelta(t, 30, ResolveProperty(NewLP(LPPercentage, 30), 100), 1e-5)
}

func TestResolveBox(t *testing.T) {
	cv := NewComputedValues()
	cv.MarginTop = NewPercentage(10)
	cv.MarginLeft = AutoLPA()
	cv.MarginRight = AutoLPA()
	cv.MarginBottom = NewLength(4)
	cv.PaddingLeft = NewLP(LPPercentage, 5)
	cv.PaddingTop = NewLP(LPLength, 2)
	cv.BorderLeftWidth = 3

	margins, isAuto := cv.ResolveMargins(200)
	assert.InDelta(t, 20, margins[STop], 1e-5)
	assert.Equal(t, Fl(4), margins[SBottom])
	assert.Equal(t, [4]bool{false, true, false, true}, isAuto)

	padding := cv.ResolvePadding(200)
	assert.InDelta(t, 10, padding[SLeft], 1e-5)
	assert.InDelta(t, 12, padding.Horizontal()+padding.Vertical(), 1e-5)

	assert.Equal(t, Edges{0, 0, 0, 3}, cv.BorderWidths())

	x, y, z := cv.ResolveTransformOrigin(100, 40)
	assert.InDelta(t, 50, x, 1e-5)
	assert.InDelta(t, 20, y, 1e-5)
	assert.Equal(t, Fl(0), z)

	px, py := cv.ResolvePerspectiveOrigin(10, 20)
	assert.InDelta(t, 5, px, 1e-5)
	assert.InDelta(t, 10, py, 1e-5)
}
