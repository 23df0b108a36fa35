package properties

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/rstyle/matrix"
	"github.com/benoitkugler/rstyle/utils"
)

type TransformKind uint8

const (
	TransformTranslate TransformKind = iota
	TransformScale
	TransformRotate
	TransformSkew
	TransformMatrix
)

// TransformPrimitive is one function of a transform list.
//   - TransformTranslate uses Lengths
//   - TransformScale uses Values[0:2]
//   - TransformRotate uses Values[0], in degrees
//   - TransformSkew uses Values[0:2], in degrees
//   - TransformMatrix uses Values
type TransformPrimitive struct {
	Lengths [2]LengthPercentage
	Values  [6]Fl
	Kind    TransformKind
}

func Translate(x, y LengthPercentage) TransformPrimitive {
	return TransformPrimitive{Kind: TransformTranslate, Lengths: [2]LengthPercentage{x, y}}
}

func Scale(sx, sy Fl) TransformPrimitive {
	return TransformPrimitive{Kind: TransformScale, Values: [6]Fl{sx, sy}}
}

func Rotate(degrees Fl) TransformPrimitive {
	return TransformPrimitive{Kind: TransformRotate, Values: [6]Fl{degrees}}
}

func Skew(ax, ay Fl) TransformPrimitive {
	return TransformPrimitive{Kind: TransformSkew, Values: [6]Fl{ax, ay}}
}

func Matrix(a, b, c, d, e, f Fl) TransformPrimitive {
	return TransformPrimitive{Kind: TransformMatrix, Values: [6]Fl{a, b, c, d, e, f}}
}

// matrix resolves the translations against the border box size.
func (p TransformPrimitive) matrix(width, height Fl) matrix.Transform {
	v := p.Values
	switch p.Kind {
	case TransformTranslate:
		return matrix.Translation(p.Lengths[0].Resolve(width), p.Lengths[1].Resolve(height))
	case TransformScale:
		return matrix.Scaling(v[0], v[1])
	case TransformRotate:
		return matrix.Rotation(utils.Radians(v[0]))
	case TransformSkew:
		return matrix.Skew(utils.Radians(v[0]), utils.Radians(v[1]))
	case TransformMatrix:
		return matrix.New(v[0], v[1], v[2], v[3], v[4], v[5])
	default:
		return matrix.Identity()
	}
}

func (p TransformPrimitive) String() string {
	v := p.Values
	switch p.Kind {
	case TransformTranslate:
		return fmt.Sprintf("translate(%s, %s)", p.Lengths[0], p.Lengths[1])
	case TransformScale:
		return fmt.Sprintf("scale(%g, %g)", v[0], v[1])
	case TransformRotate:
		return fmt.Sprintf("rotate(%gdeg)", v[0])
	case TransformSkew:
		return fmt.Sprintf("skew(%gdeg, %gdeg)", v[0], v[1])
	case TransformMatrix:
		return fmt.Sprintf("matrix(%g, %g, %g, %g, %g, %g)", v[0], v[1], v[2], v[3], v[4], v[5])
	default:
		return "<invalid transform>"
	}
}

// Transform is the value of the transform property. It is shared
// between the computed values and the animation engine, and
// referenced by pointer : a nil *Transform means 'none'.
type Transform struct {
	Primitives []TransformPrimitive
}

func NewTransform(primitives ...TransformPrimitive) *Transform {
	return &Transform{Primitives: primitives}
}

// Matrix composes the primitives, from left to right, for a box with the given
// border box size. The origin is not applied, see [ComputedValues.TransformMatrix].
// A nil transform returns the identity.
func (t *Transform) Matrix(width, height Fl) matrix.Transform {
	out := matrix.Identity()
	if t == nil {
		return out
	}
	for _, p := range t.Primitives {
		out.RightMultBy(p.matrix(width, height))
	}
	return out
}

func (t *Transform) String() string {
	if t == nil || len(t.Primitives) == 0 {
		return "none"
	}
	chunks := make([]string, len(t.Primitives))
	for i, p := range t.Primitives {
		chunks[i] = p.String()
	}
	return strings.Join(chunks, " ")
}
