package main

import (
	"math"

	"github.com/rmcsoft/gamedraw"
	"golang.org/x/image/colornames"
)

// drawScene draws one frame of the shape showcase. The user style is used
// for the first row, the rest changes the painter style as it goes and
// restores it at the end.
func drawScene(painter *gamedraw.Painter, frame int) error {
	userStyle := painter.Style()
	defer painter.SetStyle(userStyle)

	// Row 1: user style
	if err := painter.RectangleBorderedXY(20, 20, 120, 80); err != nil {
		return err
	}
	if err := painter.EllipseBorderedXY(230, 60, 140, 80); err != nil {
		return err
	}
	if err := painter.CircleBorderedXY(380, 60, 40); err != nil {
		return err
	}

	// Row 2: outlines
	painter.SetLineColor(colornames.Darkslateblue)
	painter.SetLineSize(4)
	if err := painter.RectangleOutline(gamedraw.Vec2(20, 140), gamedraw.Vec2(120, 80)); err != nil {
		return err
	}
	if err := painter.EllipseOutline(gamedraw.Vec2(230, 180), gamedraw.Vec2(140, 80)); err != nil {
		return err
	}
	if err := painter.CircleOutline(gamedraw.Vec2(380, 180), 40); err != nil {
		return err
	}

	// Row 3: lines, one of them spinning
	painter.SetLineColor(colornames.Crimson)
	painter.SetLineSize(10)
	if err := painter.LineXY(20, 280, 140, 320); err != nil {
		return err
	}
	angle := float64(frame) * math.Pi / 90
	center := gamedraw.Vec2(230, 300)
	tip := gamedraw.Vec2(
		center.X+float32(60*math.Cos(angle)),
		center.Y+float32(60*math.Sin(angle)),
	)
	if err := painter.LineRounded(center, tip); err != nil {
		return err
	}

	// Row 4: explicit style, no painter state involved
	badge := gamedraw.Style{
		FillColor: colornames.Gold,
		LineColor: colornames.Black,
		LineSize:  2,
	}
	return painter.Draw(gamedraw.NewRectangleBorderedCenteredDrawOperation(
		gamedraw.Vec2(380, 300), gamedraw.Vec2(60, 30), badge))
}
