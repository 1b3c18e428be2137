package gamedraw

type lineOperation struct {
	start Vector2
	end   Vector2
	style Style
}

func (o *lineOperation) Draw(paintEngine PaintEngine) error {
	return paintEngine.DrawLine(o.start, o.end, o.style.LineSize, o.style.LineColor)
}

// NewLineDrawOperation creates an operation to draw a straight line from
// start to end with the style's line size and line color.
func NewLineDrawOperation(start, end Vector2, style Style) DrawOperation {
	return &lineOperation{
		start: start,
		end:   end,
		style: style,
	}
}

type roundedLineOperation struct {
	lineOperation
}

func (o *roundedLineOperation) Draw(paintEngine PaintEngine) error {
	if err := o.lineOperation.Draw(paintEngine); err != nil {
		return err
	}

	// Cap both ends with a disc
	radius := o.style.LineSize / 2
	if err := paintEngine.DrawDisc(o.start, radius, o.style.LineColor); err != nil {
		return err
	}
	return paintEngine.DrawDisc(o.end, radius, o.style.LineColor)
}

// NewRoundedLineDrawOperation creates an operation to draw a line whose ends
// are capped by discs of half the line size.
func NewRoundedLineDrawOperation(start, end Vector2, style Style) DrawOperation {
	return &roundedLineOperation{lineOperation{
		start: start,
		end:   end,
		style: style,
	}}
}
