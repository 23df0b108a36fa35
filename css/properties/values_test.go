package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValues(t *testing.T) {
	var lpa LengthPercentageAuto
	assert.Equal(t, LPALength, lpa.Kind)
	assert.Equal(t, Fl(0), lpa.Value)

	var lp LengthPercentage
	assert.Equal(t, LPLength, lp.Kind)
	assert.Equal(t, Fl(0), lp.Value)

	var na NumberAuto
	assert.Equal(t, NANumber, na.Kind)
	assert.Equal(t, Fl(0), na.Value)
}

func TestTaggedRoundTrip(t *testing.T) {
	for _, kind := range []LengthPercentageAutoKind{LPALength, LPAPercentage, LPAAuto} {
		for _, value := range []Fl{0, -3.5, 42, 1e9} {
			v := LengthPercentageAuto{Kind: kind, Value: value}
			assert.Equal(t, kind, v.Kind)
			assert.Equal(t, value, v.Value)
		}
	}
	assert.Equal(t, LengthPercentageAuto{LPALength, 3}, NewLength(3))
	assert.Equal(t, LengthPercentageAuto{LPAPercentage, 3}, NewPercentage(3))
	assert.True(t, AutoLPA().IsAuto())
	assert.False(t, NewLength(0).IsAuto())
	assert.True(t, AutoNumber().IsAuto())
	assert.Equal(t, NumberAuto{NANumber, -2}, NewNumber(-2))
}

func TestToLPA(t *testing.T) {
	assert.Equal(t, NewLength(4), NewLP(LPLength, 4).ToLPA())
	assert.Equal(t, NewPercentage(25), NewLP(LPPercentage, 25).ToLPA())
}

func TestValuesString(t *testing.T) {
	tests := map[string]interface{ String() string }{
		"12px":  NewLength(12),
		"50%":   NewPercentage(50),
		"auto":  AutoLPA(),
		"2.5px": NewLP(LPLength, 2.5),
		"100%":  NewLP(LPPercentage, 100),
		"-1":    NewNumber(-1),
	}
	for exp, v := range tests {
		assert.Equal(t, exp, v.String())
	}
	assert.Equal(t, "auto", AutoNumber().String())
}
