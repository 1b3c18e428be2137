package gamedraw

const (
	ringStartAngle = 0
	ringEndAngle   = 360
	// ring segments per unit of radius
	ringSegmentDensity = 4
)

type circleOperation struct {
	position Vector2
	radius   float32
	style    Style
}

func (o *circleOperation) Draw(paintEngine PaintEngine) error {
	return paintEngine.DrawDisc(o.position, o.radius, o.style.FillColor)
}

// NewCircleDrawOperation creates an operation to fill a circle.
// Neither the centre nor the radius is rounded.
func NewCircleDrawOperation(position Vector2, radius float32, style Style) DrawOperation {
	return &circleOperation{
		position: position,
		radius:   radius,
		style:    style,
	}
}

type circleOutlineOperation struct {
	position Vector2
	radius   float32
	style    Style
}

func (o *circleOutlineOperation) Draw(paintEngine PaintEngine) error {
	innerRadius := o.radius - o.style.LineSize
	outerRadius := o.radius
	segments := int32(o.radius * ringSegmentDensity)
	return paintEngine.DrawRing(o.position, innerRadius, outerRadius,
		ringStartAngle, ringEndAngle, segments, o.style.LineColor)
}

// NewCircleOutlineDrawOperation creates an operation to draw a ring from
// radius-LineSize out to radius. The ring gets radius*4 segments.
// A line size larger than the radius is handed to the engine unchanged.
func NewCircleOutlineDrawOperation(position Vector2, radius float32, style Style) DrawOperation {
	return &circleOutlineOperation{
		position: position,
		radius:   radius,
		style:    style,
	}
}

// NewCircleBorderedDrawOperation creates an operation to fill a circle and
// then draw its outline.
func NewCircleBorderedDrawOperation(position Vector2, radius float32, style Style) DrawOperation {
	return &borderedOperation{
		fill:    NewCircleDrawOperation(position, radius, style),
		outline: NewCircleOutlineDrawOperation(position, radius, style),
	}
}
