package utils

import "math"

// Fl is the floating point type used for every CSS quantity.
type Fl = float32

// RoundPrec rounds f with n digits precision
func RoundPrec(f Fl, n int) Fl {
	n10 := math.Pow10(n)
	return Fl(math.Round(float64(f)*n10) / n10)
}

// Radians converts an angle in degrees.
func Radians(deg Fl) Fl {
	return deg * math.Pi / 180
}
