package properties

import "fmt"

// Clip is the number of ancestors clipping the element, with
// two special values : [ClipNone] and [ClipAuto].
// Check the sign (or use [Clip.Number]) before using it as a number.
type Clip int

const (
	ClipNone        Clip = -1
	ClipAuto        Clip = 0
	ClipNumberStart Clip = 1 // first literal value
)

func (c Clip) IsNone() bool { return c < 0 }

func (c Clip) IsAuto() bool { return c == ClipAuto }

// Number returns the literal value, or false for 'none' and 'auto'.
func (c Clip) Number() (int, bool) {
	if c < ClipNumberStart {
		return 0, false
	}
	return int(c), true
}

func (c Clip) String() string {
	switch {
	case c < 0:
		return "none"
	case c == 0:
		return "auto"
	default:
		return fmt.Sprintf("%d", int(c))
	}
}

type VerticalAlignKind uint8

const (
	VABaseline VerticalAlignKind = iota
	VAMiddle
	VASub
	VASuper
	VATextTop
	VATextBottom
	VATop
	VABottom
	VALength
)

var verticalAlignKeywords = [...]string{
	VABaseline: "baseline", VAMiddle: "middle", VASub: "sub", VASuper: "super",
	VATextTop: "text-top", VATextBottom: "text-bottom", VATop: "top", VABottom: "bottom",
}

// VerticalAlign is a keyword, or a length when Kind is [VALength].
type VerticalAlign struct {
	Kind  VerticalAlignKind
	Value Fl // only valid for VALength
}

func NewVerticalAlignLength(v Fl) VerticalAlign { return VerticalAlign{VALength, v} }

func (va VerticalAlign) String() string {
	if va.Kind == VALength {
		return fmt.Sprintf("%gpx", va.Value)
	}
	return keywordString(va.Kind, verticalAlignKeywords[:])
}

// ParseVerticalAlign classifies a keyword. Lengths are built
// with [NewVerticalAlignLength].
func ParseVerticalAlign(s string) (VerticalAlign, bool) {
	kind, ok := parseKeyword[VerticalAlignKind]("vertical-align", s, verticalAlignKeywords[:])
	return VerticalAlign{Kind: kind}, ok
}

// LineHeightInheritKind tells how children compute their line height.
type LineHeightInheritKind uint8

const (
	InheritNumber LineHeightInheritKind = iota // InheritValue is a multiplier of the font size
	InheritLength                              // InheritValue is an absolute length
)

// LineHeight stores the computed line height (Value), together with the
// specified value children inherit. A unitless number is inherited as a
// multiplier, which is why both are kept.
// The two halves are filled by the cascade, and never derived one from another
// by ComputedValues.
type LineHeight struct {
	Value        Fl
	InheritKind  LineHeightInheritKind
	InheritValue Fl
}

// LineHeightNumber returns the line height for a unitless number [factor].
func LineHeightNumber(fontSize, factor Fl) LineHeight {
	return LineHeight{Value: fontSize * factor, InheritKind: InheritNumber, InheritValue: factor}
}

// LineHeightLength returns the line height for an absolute length.
func LineHeightLength(length Fl) LineHeight {
	return LineHeight{Value: length, InheritKind: InheritLength, InheritValue: length}
}

// Inherit returns the line height of a child with font size [childFontSize]
// inheriting from [lh].
func (lh LineHeight) Inherit(childFontSize Fl) LineHeight {
	if lh.InheritKind == InheritNumber {
		return LineHeightNumber(childFontSize, lh.InheritValue)
	}
	return LineHeightLength(lh.InheritValue)
}
