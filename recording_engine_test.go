package gamedraw_test

import (
	"errors"
	"image"
	"image/color"

	"github.com/rmcsoft/gamedraw"
)

// call is one primitive issued to a recordingEngine.
type call struct {
	Primitive string
	Start     gamedraw.Vector2
	End       gamedraw.Vector2
	Rect      image.Rectangle
	Center    image.Point
	Radii     [2]float32
	Angles    [2]float32
	Segments  int32
	Thick     float32
	Color     color.RGBA
}

type recordingEngine struct {
	calls  []call
	failOn string
}

var errPrimitive = errors.New("primitive failed")

func (e *recordingEngine) record(c call) error {
	e.calls = append(e.calls, c)
	if c.Primitive == e.failOn {
		return errPrimitive
	}
	return nil
}

func (e *recordingEngine) Begin() error {
	return e.record(call{Primitive: "begin"})
}

func (e *recordingEngine) DrawLine(start, end gamedraw.Vector2, thick float32, c color.RGBA) error {
	return e.record(call{Primitive: "line", Start: start, End: end, Thick: thick, Color: c})
}

func (e *recordingEngine) DrawDisc(center gamedraw.Vector2, radius float32, c color.RGBA) error {
	return e.record(call{Primitive: "disc", Start: center, Radii: [2]float32{radius, radius}, Color: c})
}

func (e *recordingEngine) FillRectangle(rect image.Rectangle, c color.RGBA) error {
	return e.record(call{Primitive: "fillRect", Rect: rect, Color: c})
}

func (e *recordingEngine) StrokeRectangle(rect image.Rectangle, thick float32, c color.RGBA) error {
	return e.record(call{Primitive: "strokeRect", Rect: rect, Thick: thick, Color: c})
}

func (e *recordingEngine) FillEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error {
	return e.record(call{Primitive: "fillEllipse", Center: center, Radii: [2]float32{radiusH, radiusV}, Color: c})
}

func (e *recordingEngine) StrokeEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error {
	return e.record(call{Primitive: "strokeEllipse", Center: center, Radii: [2]float32{radiusH, radiusV}, Color: c})
}

func (e *recordingEngine) DrawRing(center gamedraw.Vector2, innerRadius, outerRadius, startAngle, endAngle float32, segments int32, c color.RGBA) error {
	return e.record(call{
		Primitive: "ring",
		Start:     center,
		Radii:     [2]float32{innerRadius, outerRadius},
		Angles:    [2]float32{startAngle, endAngle},
		Segments:  segments,
		Color:     c,
	})
}

func (e *recordingEngine) End() error {
	return e.record(call{Primitive: "end"})
}

func primitives(calls []call) []string {
	names := make([]string, 0, len(calls))
	for _, c := range calls {
		names = append(names, c.Primitive)
	}
	return names
}

func rect(x, y, w, h int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+w, y+h)}
}

var _ gamedraw.PaintEngine = (*recordingEngine)(nil)
