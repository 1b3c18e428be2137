package gamedraw

import (
	"image"
	"image/color"

	"github.com/sirupsen/logrus"
)

type nullPaintEngine struct {
}

// NullPaintEngine returns null paint engine.
// Every call succeeds and is traced at debug level.
func NullPaintEngine() PaintEngine {
	return nullPaintEngine{}
}

func (nullPaintEngine) trace(primitive string, fields logrus.Fields) {
	Logger().WithFields(fields).Debug(primitive)
}

func (e nullPaintEngine) Begin() error {
	e.trace("begin", nil)
	return nil
}

func (e nullPaintEngine) DrawLine(start, end Vector2, thick float32, c color.RGBA) error {
	e.trace("line", logrus.Fields{"start": start, "end": end, "thick": thick, "color": c})
	return nil
}

func (e nullPaintEngine) DrawDisc(center Vector2, radius float32, c color.RGBA) error {
	e.trace("disc", logrus.Fields{"center": center, "radius": radius, "color": c})
	return nil
}

func (e nullPaintEngine) FillRectangle(rect image.Rectangle, c color.RGBA) error {
	e.trace("fill rectangle", logrus.Fields{"rect": rect, "color": c})
	return nil
}

func (e nullPaintEngine) StrokeRectangle(rect image.Rectangle, thick float32, c color.RGBA) error {
	e.trace("stroke rectangle", logrus.Fields{"rect": rect, "thick": thick, "color": c})
	return nil
}

func (e nullPaintEngine) FillEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error {
	e.trace("fill ellipse", logrus.Fields{"center": center, "radiusH": radiusH, "radiusV": radiusV, "color": c})
	return nil
}

func (e nullPaintEngine) StrokeEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error {
	e.trace("stroke ellipse", logrus.Fields{"center": center, "radiusH": radiusH, "radiusV": radiusV, "color": c})
	return nil
}

func (e nullPaintEngine) DrawRing(center Vector2, innerRadius, outerRadius, startAngle, endAngle float32, segments int32, c color.RGBA) error {
	e.trace("ring", logrus.Fields{
		"center":   center,
		"inner":    innerRadius,
		"outer":    outerRadius,
		"start":    startAngle,
		"end":      endAngle,
		"segments": segments,
		"color":    c,
	})
	return nil
}

func (e nullPaintEngine) End() error {
	e.trace("end", nil)
	return nil
}
