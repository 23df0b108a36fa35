package properties

import (
	"fmt"
	"unicode"

	"github.com/benoitkugler/rstyle/matrix"
	"github.com/mitchellh/hashstructure"
	"golang.org/x/text/language"
)

// ComputedValues is the computed style of one element, produced by the cascade.
// See the CSS specifications for the meaning of each property.
//
// Once handed to the layout, a ComputedValues must be considered immutable :
// a new style version is built with [ComputedValues.Clone] and replaces
// the previous one as a whole.
//
// Transform, Transition and Animation are shared with the animation engine :
// they are never copied by this package, and a nil pointer means 'none'.
type ComputedValues struct {
	MarginTop, MarginRight, MarginBottom, MarginLeft     LengthPercentageAuto
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft LengthPercentage
	BorderTopWidth, BorderRightWidth                     Fl
	BorderBottomWidth, BorderLeftWidth                   Fl
	BorderTopColor, BorderRightColor                     Color
	BorderBottomColor, BorderLeftColor                   Color

	Display  Display
	Position Position

	Top, Right, Bottom, Left LengthPercentageAuto

	Float Float
	Clear Clear

	ZIndex NumberAuto

	Width                LengthPercentageAuto
	MinWidth, MaxWidth   LengthPercentage
	Height               LengthPercentageAuto
	MinHeight, MaxHeight LengthPercentage

	LineHeight    LineHeight
	VerticalAlign VerticalAlign

	OverflowX, OverflowY Overflow
	Clip                 Clip

	Visibility Visibility

	BackgroundColor Color
	Color           Color
	ImageColor      Color
	Opacity         Fl

	FontFamily  string
	FontCharset string // empty means DefaultCharset
	FontStyle   FontStyle
	FontWeight  FontWeight
	FontSize    Fl

	TextAlign      TextAlign
	TextDecoration TextDecoration
	TextTransform  TextTransform
	WhiteSpace     WhiteSpace

	Cursor string

	Drag            Drag
	TabIndex        TabIndex
	Focus           Focus
	ScrollbarMargin Fl
	PointerEvents   PointerEvents

	Perspective                            Fl
	PerspectiveOriginX, PerspectiveOriginY LengthPercentage

	Transform                          *Transform
	TransformOriginX, TransformOriginY LengthPercentage
	TransformOriginZ                   Fl

	Transition *TransitionList
	Animation  *AnimationList
}

const (
	// DefaultFontSize is the initial value of font-size.
	DefaultFontSize Fl = 12
	// DefaultLineHeightFactor is the initial line-height, as a multiplier of the font size.
	DefaultLineHeightFactor Fl = 1.2
)

var (
	white       = Color{255, 255, 255, 255}
	transparent = Color{255, 255, 255, 0}
	center      = NewLP(LPPercentage, 50)
)

// NewComputedValues returns the initial values of every property.
// Elements which do not set a property (and do not inherit it) use these values.
func NewComputedValues() *ComputedValues {
	return &ComputedValues{
		BorderTopColor:    white,
		BorderRightColor:  white,
		BorderBottomColor: white,
		BorderLeftColor:   white,

		Display:  DisplayInline,
		Position: PositionStatic,

		Top:    AutoLPA(),
		Right:  AutoLPA(),
		Bottom: AutoLPA(),
		Left:   AutoLPA(),

		Float: FloatNone,
		Clear: ClearNone,

		ZIndex: AutoNumber(),

		Width:  AutoLPA(),
		Height: AutoLPA(),

		LineHeight:    LineHeightNumber(DefaultFontSize, DefaultLineHeightFactor),
		VerticalAlign: VerticalAlign{Kind: VABaseline},

		OverflowX: OverflowVisible,
		OverflowY: OverflowVisible,
		Clip:      ClipAuto,

		Visibility: VisibilityVisible,

		BackgroundColor: transparent,
		Color:           white,
		ImageColor:      white,
		Opacity:         1,

		FontStyle:  FontStyleNormal,
		FontWeight: FontWeightNormal,
		FontSize:   DefaultFontSize,

		TextAlign:      TextAlignLeft,
		TextDecoration: TextDecorationNone,
		TextTransform:  TextTransformNone,
		WhiteSpace:     WhiteSpaceNormal,

		Drag:          DragNone,
		TabIndex:      TabIndexNone,
		Focus:         FocusAuto,
		PointerEvents: PointerEventsAuto,

		PerspectiveOriginX: center,
		PerspectiveOriginY: center,

		TransformOriginX: center,
		TransformOriginY: center,
	}
}

// Clone returns a shallow copy, sharing the transform,
// transition and animation values with [cv].
func (cv *ComputedValues) Clone() *ComputedValues {
	out := *cv
	return &out
}

// Equal compares every field. Shared values are compared by identity.
func (cv *ComputedValues) Equal(other *ComputedValues) bool {
	return *cv == *other
}

// Fingerprint returns a hash of the content of [cv], following shared values,
// suitable as a style cache key.
func (cv *ComputedValues) Fingerprint() (uint64, error) {
	h, err := hashstructure.Hash(cv, nil)
	if err != nil {
		return 0, fmt.Errorf("hashing computed values: %s", err)
	}
	return h, nil
}

// FontCharsetTable returns the code points covered by the font-charset property.
func (cv *ComputedValues) FontCharsetTable() (*unicode.RangeTable, error) {
	return ParseCharset(cv.FontCharset)
}

// ApplyTextTransform applies the text-transform property to [s].
func (cv *ComputedValues) ApplyTextTransform(s string, lang language.Tag) string {
	return cv.TextTransform.Apply(s, lang)
}

// TransformMatrix returns the transformation of a box with the given border
// box size, applied around its transform origin. The origin is relative to
// the top left corner of the box. Without transform, the identity is returned.
func (cv *ComputedValues) TransformMatrix(width, height Fl) matrix.Transform {
	if cv.Transform == nil {
		return matrix.Identity()
	}
	ox, oy, _ := cv.ResolveTransformOrigin(width, height)
	return cv.Transform.Matrix(width, height).Around(ox, oy)
}

// IsFloated returns true for elements with a float.
func (cv *ComputedValues) IsFloated() bool { return cv.Float != FloatNone }

// IsAbsolutelyPositioned returns true for absolute and fixed positions.
func (cv *ComputedValues) IsAbsolutelyPositioned() bool {
	return cv.Position == PositionAbsolute || cv.Position == PositionFixed
}

// IsInNormalFlow returns true if the element is neither floated nor
// absolutely positioned.
func (cv *ComputedValues) IsInNormalFlow() bool {
	return !cv.IsFloated() && !cv.IsAbsolutelyPositioned()
}
