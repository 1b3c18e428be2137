package gamedraw

import "image/color"

const defaultLineSize = 1

// Style holds the colors and line thickness used by drawing operations.
// No field is validated: a negative line size is kept and handed to the
// paint engine as is.
type Style struct {
	FillColor color.RGBA
	LineColor color.RGBA
	LineSize  float32
}

// DefaultStyle returns the style a new Painter starts with: black fill,
// no line color and a line size of 1.
func DefaultStyle() Style {
	return Style{
		FillColor: Black,
		LineColor: Blank,
		LineSize:  defaultLineSize,
	}
}
