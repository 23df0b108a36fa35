package properties

import (
	"fmt"
	"image/color"
)

// Color is a non premultiplied RGBA color, with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// NewColor returns an opaque color.
func NewColor(r, g, b uint8) Color { return Color{r, g, b, 255} }

// IsTransparent returns true if the alpha channel is zero.
func (c Color) IsTransparent() bool { return c.A == 0 }

// RGBA implements [color.Color], returning alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// WithOpacity scales the alpha channel by [opacity], expected in [0, 1].
func (c Color) WithOpacity(opacity Fl) Color {
	c.A = uint8(Fl(c.A)*opacity + 0.5)
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}
