package properties

import (
	"strings"

	"github.com/benoitkugler/rstyle/logger"
)

// Keyword properties. For each one, the first constant is the zero value
// of the type; the initial values used by ComputedValues are listed
// in [NewComputedValues].

type Display uint8

const (
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
	DisplayInlineBlock
)

type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

type Float uint8

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

type Clear uint8

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

type Visibility uint8

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
)

type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

type FontWeight uint8

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

type TextDecoration uint8

const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
)

type TextTransform uint8

const (
	TextTransformNone TextTransform = iota
	TextTransformCapitalize
	TextTransformUppercase
	TextTransformLowercase
)

type WhiteSpace uint8

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpacePre
	WhiteSpaceNowrap
	WhiteSpacePrewrap
	WhiteSpacePreline
)

// Drag is the behaviour of an element when the user drags it.
type Drag uint8

const (
	DragNone Drag = iota
	DragDrag
	DragDragDrop
	DragBlock
	DragClone
)

type TabIndex uint8

const (
	TabIndexNone TabIndex = iota
	TabIndexAuto
)

type Focus uint8

const (
	FocusNone Focus = iota
	FocusAuto
)

type PointerEvents uint8

const (
	PointerEventsNone PointerEvents = iota
	PointerEventsAuto
)

// OriginX is a keyword of the horizontal axis of an origin.
type OriginX uint8

const (
	OriginXLeft OriginX = iota
	OriginXCenter
	OriginXRight
)

// OriginY is a keyword of the vertical axis of an origin.
type OriginY uint8

const (
	OriginYTop OriginY = iota
	OriginYCenter
	OriginYBottom
)

var (
	displayKeywords        = [...]string{DisplayNone: "none", DisplayBlock: "block", DisplayInline: "inline", DisplayInlineBlock: "inline-block"}
	positionKeywords       = [...]string{PositionStatic: "static", PositionRelative: "relative", PositionAbsolute: "absolute", PositionFixed: "fixed"}
	floatKeywords          = [...]string{FloatNone: "none", FloatLeft: "left", FloatRight: "right"}
	clearKeywords          = [...]string{ClearNone: "none", ClearLeft: "left", ClearRight: "right", ClearBoth: "both"}
	overflowKeywords       = [...]string{OverflowVisible: "visible", OverflowHidden: "hidden", OverflowAuto: "auto", OverflowScroll: "scroll"}
	visibilityKeywords     = [...]string{VisibilityVisible: "visible", VisibilityHidden: "hidden"}
	fontStyleKeywords      = [...]string{FontStyleNormal: "normal", FontStyleItalic: "italic"}
	fontWeightKeywords     = [...]string{FontWeightNormal: "normal", FontWeightBold: "bold"}
	textAlignKeywords      = [...]string{TextAlignLeft: "left", TextAlignRight: "right", TextAlignCenter: "center", TextAlignJustify: "justify"}
	textDecorationKeywords = [...]string{TextDecorationNone: "none", TextDecorationUnderline: "underline"}
	textTransformKeywords  = [...]string{TextTransformNone: "none", TextTransformCapitalize: "capitalize", TextTransformUppercase: "uppercase", TextTransformLowercase: "lowercase"}
	whiteSpaceKeywords     = [...]string{WhiteSpaceNormal: "normal", WhiteSpacePre: "pre", WhiteSpaceNowrap: "nowrap", WhiteSpacePrewrap: "pre-wrap", WhiteSpacePreline: "pre-line"}
	dragKeywords           = [...]string{DragNone: "none", DragDrag: "drag", DragDragDrop: "drag-drop", DragBlock: "block", DragClone: "clone"}
	tabIndexKeywords       = [...]string{TabIndexNone: "none", TabIndexAuto: "auto"}
	focusKeywords          = [...]string{FocusNone: "none", FocusAuto: "auto"}
	pointerEventsKeywords  = [...]string{PointerEventsNone: "none", PointerEventsAuto: "auto"}
	originXKeywords        = [...]string{OriginXLeft: "left", OriginXCenter: "center", OriginXRight: "right"}
	originYKeywords        = [...]string{OriginYTop: "top", OriginYCenter: "center", OriginYBottom: "bottom"}
)

func keywordString[T ~uint8](v T, table []string) string {
	if int(v) < len(table) {
		return table[v]
	}
	return "<invalid keyword>"
}

// parseKeyword performs an ASCII case-insensitive lookup,
// logging a warning when [s] is not in [table].
func parseKeyword[T ~uint8](property, s string, table []string) (T, bool) {
	for i, kw := range table {
		if strings.EqualFold(kw, s) {
			return T(i), true
		}
	}
	logger.WarningLogger.Printf("Ignored unknown keyword %q for %s", s, property)
	return 0, false
}

func (v Display) String() string        { return keywordString(v, displayKeywords[:]) }
func (v Position) String() string       { return keywordString(v, positionKeywords[:]) }
func (v Float) String() string          { return keywordString(v, floatKeywords[:]) }
func (v Clear) String() string          { return keywordString(v, clearKeywords[:]) }
func (v Overflow) String() string       { return keywordString(v, overflowKeywords[:]) }
func (v Visibility) String() string     { return keywordString(v, visibilityKeywords[:]) }
func (v FontStyle) String() string      { return keywordString(v, fontStyleKeywords[:]) }
func (v FontWeight) String() string     { return keywordString(v, fontWeightKeywords[:]) }
func (v TextAlign) String() string      { return keywordString(v, textAlignKeywords[:]) }
func (v TextDecoration) String() string { return keywordString(v, textDecorationKeywords[:]) }
func (v TextTransform) String() string  { return keywordString(v, textTransformKeywords[:]) }
func (v WhiteSpace) String() string     { return keywordString(v, whiteSpaceKeywords[:]) }
func (v Drag) String() string           { return keywordString(v, dragKeywords[:]) }
func (v TabIndex) String() string       { return keywordString(v, tabIndexKeywords[:]) }
func (v Focus) String() string          { return keywordString(v, focusKeywords[:]) }
func (v PointerEvents) String() string  { return keywordString(v, pointerEventsKeywords[:]) }
func (v OriginX) String() string        { return keywordString(v, originXKeywords[:]) }
func (v OriginY) String() string        { return keywordString(v, originYKeywords[:]) }

// The ParseXXX functions classify a CSS keyword. They return false
// for unknown keywords.

func ParseDisplay(s string) (Display, bool) {
	return parseKeyword[Display]("display", s, displayKeywords[:])
}

func ParsePosition(s string) (Position, bool) {
	return parseKeyword[Position]("position", s, positionKeywords[:])
}

func ParseFloat(s string) (Float, bool) { return parseKeyword[Float]("float", s, floatKeywords[:]) }

func ParseClear(s string) (Clear, bool) { return parseKeyword[Clear]("clear", s, clearKeywords[:]) }

func ParseOverflow(s string) (Overflow, bool) {
	return parseKeyword[Overflow]("overflow", s, overflowKeywords[:])
}

func ParseVisibility(s string) (Visibility, bool) {
	return parseKeyword[Visibility]("visibility", s, visibilityKeywords[:])
}

func ParseFontStyle(s string) (FontStyle, bool) {
	return parseKeyword[FontStyle]("font-style", s, fontStyleKeywords[:])
}

func ParseFontWeight(s string) (FontWeight, bool) {
	return parseKeyword[FontWeight]("font-weight", s, fontWeightKeywords[:])
}

func ParseTextAlign(s string) (TextAlign, bool) {
	return parseKeyword[TextAlign]("text-align", s, textAlignKeywords[:])
}

func ParseTextDecoration(s string) (TextDecoration, bool) {
	return parseKeyword[TextDecoration]("text-decoration", s, textDecorationKeywords[:])
}

func ParseTextTransform(s string) (TextTransform, bool) {
	return parseKeyword[TextTransform]("text-transform", s, textTransformKeywords[:])
}

func ParseWhiteSpace(s string) (WhiteSpace, bool) {
	return parseKeyword[WhiteSpace]("white-space", s, whiteSpaceKeywords[:])
}

func ParseDrag(s string) (Drag, bool) { return parseKeyword[Drag]("drag", s, dragKeywords[:]) }

func ParseTabIndex(s string) (TabIndex, bool) {
	return parseKeyword[TabIndex]("tab-index", s, tabIndexKeywords[:])
}

func ParseFocus(s string) (Focus, bool) { return parseKeyword[Focus]("focus", s, focusKeywords[:]) }

func ParsePointerEvents(s string) (PointerEvents, bool) {
	return parseKeyword[PointerEvents]("pointer-events", s, pointerEventsKeywords[:])
}

func ParseOriginX(s string) (OriginX, bool) {
	return parseKeyword[OriginX]("origin-x", s, originXKeywords[:])
}

func ParseOriginY(s string) (OriginY, bool) {
	return parseKeyword[OriginY]("origin-y", s, originYKeywords[:])
}

// Percentage returns the position of the anchor along its axis.
func (o OriginX) Percentage() LengthPercentage {
	return NewLP(LPPercentage, 50*Fl(o))
}

// Percentage returns the position of the anchor along its axis.
func (o OriginY) Percentage() LengthPercentage {
	return NewLP(LPPercentage, 50*Fl(o))
}
