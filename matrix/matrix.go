// Package matrix provides the 2D affine transformations
// used to resolve the CSS transform property.
package matrix

import (
	"errors"
	"math"

	"github.com/benoitkugler/rstyle/utils"
)

type fl = utils.Fl

// Transform is a CSS matrix(a, b, c, d, e, f), mapping
//
//	x' = a * x + c * y + e
//	y' = b * x + d * y + f
type Transform struct {
	A, B, C, D, E, F fl
}

func New(a, b, c, d, e, f fl) Transform {
	return Transform{A: a, B: b, C: c, D: d, E: e, F: f}
}

func Identity() Transform { return New(1, 0, 0, 1, 0, 0) }

func Translation(tx, ty fl) Transform { return Transform{1, 0, 0, 1, tx, ty} }

func Scaling(sx, sy fl) Transform { return Transform{sx, 0, 0, sy, 0, 0} }

// Rotation returns a clockwise rotation (in the y-down CSS
// coordinate system) of [radians].
func Rotation(radians fl) Transform {
	cos, sin := fl(math.Cos(float64(radians))), fl(math.Sin(float64(radians)))
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Skew follows CSS skew(ax, ay), with angles in radians.
func Skew(ax, ay fl) Transform {
	return Transform{1, fl(math.Tan(float64(ay))), fl(math.Tan(float64(ax))), 1, 0, 0}
}

func (t Transform) Determinant() fl { return t.A*t.D - t.B*t.C }

// Mul returns t * u, which applies u, then t.
func Mul(t, u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

// RightMultBy updates t in place with t * u, so that u is applied first.
// This is the order of a CSS transform list, read from left to right.
func (t *Transform) RightMultBy(u Transform) { *t = Mul(*t, u) }

// Around returns the transformation applied with its origin moved to (x, y),
// that is Translation(x, y) * t * Translation(-x, -y).
func (t Transform) Around(x, y fl) Transform {
	return Mul(Translation(x, y), Mul(t, Translation(-x, -y)))
}

// Apply maps the point (x, y).
func (t Transform) Apply(x, y fl) (fl, fl) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// Invert modifies the matrix in place, or returns an error
// if the transformation is degenerate (like scale(0)).
func (t *Transform) Invert() error {
	det := t.Determinant()
	if det == 0 {
		return errors.New("transformation is not invertible")
	}
	a, b, c, d, e, f := t.A, t.B, t.C, t.D, t.E, t.F
	t.A, t.B, t.C, t.D = d/det, -b/det, -c/det, a/det
	t.E = -(t.A*e + t.C*f)
	t.F = -(t.B*e + t.D*f)
	return nil
}
