package gamedraw

import (
	"image"
	"image/color"
)

// PaintEngine is the interface definition for drawing.
//
// It mirrors the primitive calls of the underlying rendering library.
// Rectangles and ellipse centres arrive already rounded, every other value
// is passed through untouched. Angles are in degrees.
type PaintEngine interface {
	Begin() error
	DrawLine(start, end Vector2, thick float32, c color.RGBA) error
	DrawDisc(center Vector2, radius float32, c color.RGBA) error
	FillRectangle(rect image.Rectangle, c color.RGBA) error
	StrokeRectangle(rect image.Rectangle, thick float32, c color.RGBA) error
	FillEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error
	StrokeEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error
	DrawRing(center Vector2, innerRadius, outerRadius, startAngle, endAngle float32, segments int32, c color.RGBA) error
	End() error
}

// roundedRect converts a float position and size to an integer rectangle.
// The rectangle is not canonicalized, a negative size stays negative.
func roundedRect(position, size Vector2) image.Rectangle {
	x := roundToEven(position.X)
	y := roundToEven(position.Y)
	w := roundToEven(size.X)
	h := roundToEven(size.Y)
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + w, Y: y + h},
	}
}

func roundedPoint(position Vector2) image.Point {
	return image.Point{
		X: roundToEven(position.X),
		Y: roundToEven(position.Y),
	}
}
