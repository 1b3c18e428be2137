package gamedraw

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Blank is the fully transparent color. Lines drawn with it are invisible.
var Blank = color.RGBA{}

// Black is the opaque black used as the default fill color.
var Black = colornames.Black

// roundToEven rounds a coordinate to the nearest integer, halves going to
// the even neighbour (0.5 -> 0, 1.5 -> 2).
func roundToEven(v float32) int {
	return int(math.RoundToEven(float64(v)))
}
