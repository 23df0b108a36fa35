package properties

// Resolve returns the absolute value of [v], resolving a
// percentage against [base].
//
// 'auto' resolves to 0. This is a placeholder : the meaning of 'auto'
// depends on the layout context (centering margins, shrink-to-fit widths,
// static positions), so callers must check [LengthPercentageAuto.IsAuto]
// first and only call Resolve when 'auto' is ruled out or degenerates to zero.
func (v LengthPercentageAuto) Resolve(base Fl) Fl {
	switch v.Kind {
	case LPALength:
		return v.Value
	case LPAPercentage:
		return v.Value * 0.01 * base
	}
	return 0
}

// Resolve returns the absolute value of [v], resolving a
// percentage against [base].
func (v LengthPercentage) Resolve(base Fl) Fl {
	if v.Kind == LPPercentage {
		return v.Value * 0.01 * base
	}
	return v.Value
}

// Resolvable is implemented by the values accepting percentages.
type Resolvable interface {
	LengthPercentageAuto | LengthPercentage
}

// ResolveProperty is the function form of the Resolve methods.
func ResolveProperty[T Resolvable](v T, base Fl) Fl {
	switch v := any(v).(type) {
	case LengthPercentageAuto:
		return v.Resolve(base)
	case LengthPercentage:
		return v.Resolve(base)
	}
	return 0
}

// Edges stores the used values of a box side property,
// in top, right, bottom, left order.
type Edges [4]Fl

// Sides indexes an [Edges].
const (
	STop = iota
	SRight
	SBottom
	SLeft
)

// Horizontal returns left + right.
func (e Edges) Horizontal() Fl { return e[SLeft] + e[SRight] }

// Vertical returns top + bottom.
func (e Edges) Vertical() Fl { return e[STop] + e[SBottom] }

// ResolveMargins resolves the four margins. Following CSS, the vertical
// margins also refer to the width of the containing block.
// [isAuto] reports the sides set to 'auto', which are resolved to 0
// and must be handled by the layout.
func (cv *ComputedValues) ResolveMargins(cbWidth Fl) (margins Edges, isAuto [4]bool) {
	for i, m := range [4]LengthPercentageAuto{cv.MarginTop, cv.MarginRight, cv.MarginBottom, cv.MarginLeft} {
		margins[i] = m.Resolve(cbWidth)
		isAuto[i] = m.IsAuto()
	}
	return margins, isAuto
}

// ResolvePadding resolves the four paddings against the width of the containing block.
func (cv *ComputedValues) ResolvePadding(cbWidth Fl) Edges {
	return Edges{
		cv.PaddingTop.Resolve(cbWidth),
		cv.PaddingRight.Resolve(cbWidth),
		cv.PaddingBottom.Resolve(cbWidth),
		cv.PaddingLeft.Resolve(cbWidth),
	}
}

// BorderWidths returns the border widths : used value == computed value.
func (cv *ComputedValues) BorderWidths() Edges {
	return Edges{cv.BorderTopWidth, cv.BorderRightWidth, cv.BorderBottomWidth, cv.BorderLeftWidth}
}

// ResolveTransformOrigin returns the transform origin of a box with
// the given border box size, relative to its top left corner.
func (cv *ComputedValues) ResolveTransformOrigin(width, height Fl) (x, y, z Fl) {
	return cv.TransformOriginX.Resolve(width), cv.TransformOriginY.Resolve(height), cv.TransformOriginZ
}

// ResolvePerspectiveOrigin is the same as [ResolveTransformOrigin], for the perspective origin.
func (cv *ComputedValues) ResolvePerspectiveOrigin(width, height Fl) (x, y Fl) {
	return cv.PerspectiveOriginX.Resolve(width), cv.PerspectiveOriginY.Resolve(height)
}
