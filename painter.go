// Package gamedraw draws styled primitive shapes on top of a rendering
// library. A Painter keeps the current fill color, line color and line size;
// each shape can also be built as a DrawOperation with an explicit Style.
package gamedraw

import "image/color"

// Painter draws shapes with its current style on a paint engine.
// A Painter is not safe for concurrent use; call it from the thread that
// owns the rendering context.
type Painter struct {
	paintEngine PaintEngine
	style       Style
}

// NewPainter creates a Painter using DefaultStyle.
func NewPainter(paintEngine PaintEngine) *Painter {
	return &Painter{
		paintEngine: paintEngine,
		style:       DefaultStyle(),
	}
}

// PaintEngine returns the engine the painter draws on.
func (p *Painter) PaintEngine() PaintEngine {
	return p.paintEngine
}

// Style returns the current style.
func (p *Painter) Style() Style {
	return p.style
}

// SetStyle replaces the current style.
func (p *Painter) SetStyle(style Style) {
	p.style = style
}

// FillColor returns the color used to fill shapes.
func (p *Painter) FillColor() color.RGBA {
	return p.style.FillColor
}

// SetFillColor sets the color used to fill shapes.
func (p *Painter) SetFillColor(c color.RGBA) {
	p.style.FillColor = c
}

// LineColor returns the color used for lines and outlines.
func (p *Painter) LineColor() color.RGBA {
	return p.style.LineColor
}

// SetLineColor sets the color used for lines and outlines.
func (p *Painter) SetLineColor(c color.RGBA) {
	p.style.LineColor = c
}

// LineSize returns the thickness of lines and outlines.
func (p *Painter) LineSize() float32 {
	return p.style.LineSize
}

// SetLineSize sets the thickness of lines and outlines.
func (p *Painter) SetLineSize(size float32) {
	p.style.LineSize = size
}

// Draw draws the operation on the painter's engine.
func (p *Painter) Draw(operation DrawOperation) error {
	return operation.Draw(p.paintEngine)
}

// Line draws a line from start to end.
func (p *Painter) Line(start, end Vector2) error {
	return p.Draw(NewLineDrawOperation(start, end, p.style))
}

// LineXY draws a line from (x0, y0) to (x1, y1).
func (p *Painter) LineXY(x0, y0, x1, y1 float32) error {
	return p.Line(Vec2(x0, y0), Vec2(x1, y1))
}

// LineRounded draws a line from start to end with rounded ends.
func (p *Painter) LineRounded(start, end Vector2) error {
	return p.Draw(NewRoundedLineDrawOperation(start, end, p.style))
}

// LineRoundedXY draws a line from (x0, y0) to (x1, y1) with rounded ends.
func (p *Painter) LineRoundedXY(x0, y0, x1, y1 float32) error {
	return p.LineRounded(Vec2(x0, y0), Vec2(x1, y1))
}

// Rectangle fills a rectangle whose upper-left corner is position.
func (p *Painter) Rectangle(position, size Vector2) error {
	return p.Draw(NewRectangleDrawOperation(position, size, p.style))
}

// RectangleXY fills a rectangle whose upper-left corner is (x, y).
func (p *Painter) RectangleXY(x, y, w, h float32) error {
	return p.Rectangle(Vec2(x, y), Vec2(w, h))
}

// RectangleOutline strokes a rectangle whose upper-left corner is position.
func (p *Painter) RectangleOutline(position, size Vector2) error {
	return p.Draw(NewRectangleOutlineDrawOperation(position, size, p.style))
}

// RectangleOutlineXY strokes a rectangle whose upper-left corner is (x, y).
func (p *Painter) RectangleOutlineXY(x, y, w, h float32) error {
	return p.RectangleOutline(Vec2(x, y), Vec2(w, h))
}

// RectangleBordered fills and then strokes a rectangle whose upper-left
// corner is position.
func (p *Painter) RectangleBordered(position, size Vector2) error {
	return p.Draw(NewRectangleBorderedDrawOperation(position, size, p.style))
}

// RectangleBorderedXY fills and then strokes a rectangle whose upper-left
// corner is (x, y).
func (p *Painter) RectangleBorderedXY(x, y, w, h float32) error {
	return p.RectangleBordered(Vec2(x, y), Vec2(w, h))
}

// RectangleBorderedCentered fills and then strokes a rectangle centred at
// position.
func (p *Painter) RectangleBorderedCentered(position, size Vector2) error {
	return p.Draw(NewRectangleBorderedCenteredDrawOperation(position, size, p.style))
}

// RectangleBorderedCenteredXY fills and then strokes a rectangle centred at
// (x, y).
func (p *Painter) RectangleBorderedCenteredXY(x, y, w, h float32) error {
	return p.RectangleBorderedCentered(Vec2(x, y), Vec2(w, h))
}

// Ellipse fills an ellipse centred at position.
func (p *Painter) Ellipse(position, size Vector2) error {
	return p.Draw(NewEllipseDrawOperation(position, size, p.style))
}

// EllipseXY fills an ellipse centred at (x, y).
func (p *Painter) EllipseXY(x, y, w, h float32) error {
	return p.Ellipse(Vec2(x, y), Vec2(w, h))
}

// EllipseOutline draws the outline of an ellipse centred at position.
func (p *Painter) EllipseOutline(position, size Vector2) error {
	return p.Draw(NewEllipseOutlineDrawOperation(position, size, p.style))
}

// EllipseOutlineXY draws the outline of an ellipse centred at (x, y).
func (p *Painter) EllipseOutlineXY(x, y, w, h float32) error {
	return p.EllipseOutline(Vec2(x, y), Vec2(w, h))
}

// EllipseBordered fills an ellipse centred at position and draws its outline.
func (p *Painter) EllipseBordered(position, size Vector2) error {
	return p.Draw(NewEllipseBorderedDrawOperation(position, size, p.style))
}

// EllipseBorderedXY fills an ellipse centred at (x, y) and draws its outline.
func (p *Painter) EllipseBorderedXY(x, y, w, h float32) error {
	return p.EllipseBordered(Vec2(x, y), Vec2(w, h))
}

// Circle fills a circle centred at position.
func (p *Painter) Circle(position Vector2, radius float32) error {
	return p.Draw(NewCircleDrawOperation(position, radius, p.style))
}

// CircleXY fills a circle centred at (x, y).
func (p *Painter) CircleXY(x, y, radius float32) error {
	return p.Circle(Vec2(x, y), radius)
}

// CircleOutline draws the outline of a circle centred at position.
func (p *Painter) CircleOutline(position Vector2, radius float32) error {
	return p.Draw(NewCircleOutlineDrawOperation(position, radius, p.style))
}

// CircleOutlineXY draws the outline of a circle centred at (x, y).
func (p *Painter) CircleOutlineXY(x, y, radius float32) error {
	return p.CircleOutline(Vec2(x, y), radius)
}

// CircleBordered fills a circle centred at position and draws its outline.
func (p *Painter) CircleBordered(position Vector2, radius float32) error {
	return p.Draw(NewCircleBorderedDrawOperation(position, radius, p.style))
}

// CircleBorderedXY fills a circle centred at (x, y) and draws its outline.
func (p *Painter) CircleBorderedXY(x, y, radius float32) error {
	return p.CircleBordered(Vec2(x, y), radius)
}
