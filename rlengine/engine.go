// Package rlengine draws gamedraw shapes with raylib.
package rlengine

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rmcsoft/gamedraw"
	"github.com/sirupsen/logrus"
)

// Engine is a gamedraw.PaintEngine backed by a raylib window.
// raylib reports no errors, so every primitive returns nil.
type Engine struct {
	background color.RGBA
}

// New opens a raylib window and returns an engine drawing into it.
func New(width, height int, title string, background color.RGBA) *Engine {
	rl.InitWindow(int32(width), int32(height), title)
	gamedraw.Logger().WithFields(logrus.Fields{
		"backend": "raylib",
		"width":   width,
		"height":  height,
	}).Info("window opened")
	return &Engine{background: background}
}

// SetTargetFPS caps the frame rate of the window loop.
func (e *Engine) SetTargetFPS(fps int) {
	rl.SetTargetFPS(int32(fps))
}

// ShouldClose reports whether the user asked to close the window.
func (e *Engine) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Close closes the window.
func (e *Engine) Close() error {
	rl.CloseWindow()
	gamedraw.Logger().WithField("backend", "raylib").Info("window closed")
	return nil
}

func (e *Engine) Begin() error {
	rl.BeginDrawing()
	rl.ClearBackground(e.background)
	return nil
}

func (e *Engine) DrawLine(start, end gamedraw.Vector2, thick float32, c color.RGBA) error {
	rl.DrawLineEx(toVector2(start), toVector2(end), thick, c)
	return nil
}

func (e *Engine) DrawDisc(center gamedraw.Vector2, radius float32, c color.RGBA) error {
	rl.DrawCircleV(toVector2(center), radius, c)
	return nil
}

func (e *Engine) FillRectangle(rect image.Rectangle, c color.RGBA) error {
	rl.DrawRectangle(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()), c)
	return nil
}

func (e *Engine) StrokeRectangle(rect image.Rectangle, thick float32, c color.RGBA) error {
	rl.DrawRectangleLinesEx(toRectangle(rect), thick, c)
	return nil
}

func (e *Engine) FillEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error {
	rl.DrawEllipse(int32(center.X), int32(center.Y), radiusH, radiusV, c)
	return nil
}

func (e *Engine) StrokeEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error {
	rl.DrawEllipseLines(int32(center.X), int32(center.Y), radiusH, radiusV, c)
	return nil
}

func (e *Engine) DrawRing(center gamedraw.Vector2, innerRadius, outerRadius, startAngle, endAngle float32, segments int32, c color.RGBA) error {
	rl.DrawRing(toVector2(center), innerRadius, outerRadius, startAngle, endAngle, segments, c)
	return nil
}

func (e *Engine) End() error {
	rl.EndDrawing()
	return nil
}

func toVector2(v gamedraw.Vector2) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Y}
}

// toRectangle keeps the width and height signed, as image.Rectangle.Dx does.
func toRectangle(rect image.Rectangle) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(rect.Min.X),
		Y:      float32(rect.Min.Y),
		Width:  float32(rect.Dx()),
		Height: float32(rect.Dy()),
	}
}

var _ gamedraw.PaintEngine = (*Engine)(nil)
