package gamedraw

type rectangleOperation struct {
	position Vector2
	size     Vector2
	style    Style
}

func (o *rectangleOperation) Draw(paintEngine PaintEngine) error {
	return paintEngine.FillRectangle(roundedRect(o.position, o.size), o.style.FillColor)
}

// NewRectangleDrawOperation creates an operation to fill a rectangle.
// The position is the upper-left corner and the size expands right and down.
// Both are rounded half to even before drawing.
func NewRectangleDrawOperation(position, size Vector2, style Style) DrawOperation {
	return &rectangleOperation{
		position: position,
		size:     size,
		style:    style,
	}
}

type rectangleOutlineOperation struct {
	position Vector2
	size     Vector2
	style    Style
}

func (o *rectangleOutlineOperation) Draw(paintEngine PaintEngine) error {
	rect := roundedRect(o.position, o.size)
	return paintEngine.StrokeRectangle(rect, o.style.LineSize, o.style.LineColor)
}

// NewRectangleOutlineDrawOperation creates an operation to stroke the outline
// of a rectangle. Rounding is the same as for NewRectangleDrawOperation.
func NewRectangleOutlineDrawOperation(position, size Vector2, style Style) DrawOperation {
	return &rectangleOutlineOperation{
		position: position,
		size:     size,
		style:    style,
	}
}

// NewRectangleBorderedDrawOperation creates an operation to fill a rectangle
// and then stroke its outline.
func NewRectangleBorderedDrawOperation(position, size Vector2, style Style) DrawOperation {
	return &borderedOperation{
		fill:    NewRectangleDrawOperation(position, size, style),
		outline: NewRectangleOutlineDrawOperation(position, size, style),
	}
}

// NewRectangleBorderedCenteredDrawOperation is NewRectangleBorderedDrawOperation
// with position being the centre of the rectangle.
func NewRectangleBorderedCenteredDrawOperation(position, size Vector2, style Style) DrawOperation {
	topLeft := Vector2{
		X: position.X - size.X/2,
		Y: position.Y - size.Y/2,
	}
	return NewRectangleBorderedDrawOperation(topLeft, size, style)
}

// borderedOperation draws the fill first so the outline is never covered.
type borderedOperation struct {
	fill    DrawOperation
	outline DrawOperation
}

func (o *borderedOperation) Draw(paintEngine PaintEngine) error {
	return drawAll(paintEngine, o.fill, o.outline)
}
