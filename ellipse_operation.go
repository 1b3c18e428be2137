package gamedraw

type ellipseOperation struct {
	position Vector2
	size     Vector2
	style    Style
}

func (o *ellipseOperation) Draw(paintEngine PaintEngine) error {
	semiAxes := o.size.Half()
	return paintEngine.FillEllipse(roundedPoint(o.position), semiAxes.X, semiAxes.Y, o.style.FillColor)
}

// NewEllipseDrawOperation creates an operation to fill an ellipse centred at
// position. The centre is rounded half to even; the size is the full width
// and height and is not rounded.
func NewEllipseDrawOperation(position, size Vector2, style Style) DrawOperation {
	return &ellipseOperation{
		position: position,
		size:     size,
		style:    style,
	}
}

type ellipseOutlineOperation struct {
	position Vector2
	size     Vector2
	style    Style
}

// Draw strokes the ellipse line once per (i, j) pair in [0, LineSize)²,
// shrinking the semi-axes by i and j. Overlapping passes are expected.
func (o *ellipseOutlineOperation) Draw(paintEngine PaintEngine) error {
	center := roundedPoint(o.position)
	semiAxes := o.size.Half()
	lineSize := o.style.LineSize
	for i := 0; float32(i) < lineSize; i++ {
		for j := 0; float32(j) < lineSize; j++ {
			radiusH := semiAxes.X - float32(i)
			radiusV := semiAxes.Y - float32(j)
			if err := paintEngine.StrokeEllipse(center, radiusH, radiusV, o.style.LineColor); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewEllipseOutlineDrawOperation creates an operation to approximate the
// outline of an ellipse with repeated ellipse lines. A line size of zero or
// less draws nothing.
func NewEllipseOutlineDrawOperation(position, size Vector2, style Style) DrawOperation {
	return &ellipseOutlineOperation{
		position: position,
		size:     size,
		style:    style,
	}
}

// NewEllipseBorderedDrawOperation creates an operation to fill an ellipse and
// then draw its outline.
func NewEllipseBorderedDrawOperation(position, size Vector2, style Style) DrawOperation {
	return &borderedOperation{
		fill:    NewEllipseDrawOperation(position, size, style),
		outline: NewEllipseOutlineDrawOperation(position, size, style),
	}
}
