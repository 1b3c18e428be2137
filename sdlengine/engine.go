// Package sdlengine draws gamedraw shapes with SDL2 and SDL2_gfx.
package sdlengine

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/rmcsoft/gamedraw"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

const minRingSegments = 4

var mutexSdlInit = sync.Mutex{}
var sdlInited = false

func initSdl() error {
	mutexSdlInit.Lock()
	defer mutexSdlInit.Unlock()

	if !sdlInited {
		if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
			return fmt.Errorf("sdlengine: init: %w", err)
		}
		sdlInited = true
	}
	return nil
}

// Engine is a gamedraw.PaintEngine backed by an SDL window and renderer.
type Engine struct {
	window     *sdl.Window
	renderer   *sdl.Renderer
	background color.RGBA
	quit       bool
}

// New creates a window with a renderer and returns an engine drawing into it.
func New(width, height int, title string, background color.RGBA) (*Engine, error) {
	if err := initSdl(); err != nil {
		return nil, err
	}

	window, renderer, err := sdl.CreateWindowAndRenderer(int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdlengine: create window: %w", err)
	}
	window.SetTitle(title)

	// Transparent colors must not paint anything
	if err := renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("sdlengine: blend mode: %w", err)
	}

	gamedraw.Logger().WithFields(logrus.Fields{
		"backend": "sdl",
		"width":   width,
		"height":  height,
	}).Info("window opened")
	return &Engine{
		window:     window,
		renderer:   renderer,
		background: background,
	}, nil
}

// ShouldClose drains pending events and reports whether a quit event arrived.
func (e *Engine) ShouldClose() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			e.quit = true
		}
	}
	return e.quit
}

// Close destroys the renderer and the window.
func (e *Engine) Close() error {
	log := gamedraw.Logger().WithField("backend", "sdl")
	if err := e.renderer.Destroy(); err != nil {
		log.WithError(err).Warn("could not destroy renderer")
	}
	if err := e.window.Destroy(); err != nil {
		return fmt.Errorf("sdlengine: destroy window: %w", err)
	}
	log.Info("window closed")
	return nil
}

func (e *Engine) Begin() error {
	if err := e.setDrawColor(e.background); err != nil {
		return err
	}
	return e.renderer.Clear()
}

func (e *Engine) DrawLine(start, end gamedraw.Vector2, thick float32, c color.RGBA) error {
	ok := gfx.ThickLineColor(e.renderer,
		round(start.X), round(start.Y), round(end.X), round(end.Y),
		round(thick), toSDLColor(c))
	return check(ok, "thick line")
}

func (e *Engine) DrawDisc(center gamedraw.Vector2, radius float32, c color.RGBA) error {
	ok := gfx.FilledCircleColor(e.renderer, round(center.X), round(center.Y), round(radius), toSDLColor(c))
	return check(ok, "filled circle")
}

func (e *Engine) FillRectangle(rect image.Rectangle, c color.RGBA) error {
	if err := e.setDrawColor(c); err != nil {
		return err
	}
	sdlRect := toSDLRect(rect)
	return e.renderer.FillRect(&sdlRect)
}

// StrokeRectangle draws the outline inside the rectangle bounds.
func (e *Engine) StrokeRectangle(rect image.Rectangle, thick float32, c color.RGBA) error {
	if err := e.setDrawColor(c); err != nil {
		return err
	}
	return e.renderer.FillRects(outlineRects(toSDLRect(rect), round(thick)))
}

func (e *Engine) FillEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error {
	ok := gfx.FilledEllipseColor(e.renderer, int32(center.X), int32(center.Y),
		round(radiusH), round(radiusV), toSDLColor(c))
	return check(ok, "filled ellipse")
}

func (e *Engine) StrokeEllipse(center image.Point, radiusH, radiusV float32, c color.RGBA) error {
	ok := gfx.EllipseColor(e.renderer, int32(center.X), int32(center.Y),
		round(radiusH), round(radiusV), toSDLColor(c))
	return check(ok, "ellipse")
}

// DrawRing fills the ring one quad per segment.
func (e *Engine) DrawRing(center gamedraw.Vector2, innerRadius, outerRadius, startAngle, endAngle float32, segments int32, c color.RGBA) error {
	sdlColor := toSDLColor(c)
	for _, q := range ringQuads(center, innerRadius, outerRadius, startAngle, endAngle, segments) {
		if ok := gfx.FilledPolygonColor(e.renderer, q.vx[:], q.vy[:], sdlColor); !ok {
			return check(ok, "ring segment")
		}
	}
	return nil
}

func (e *Engine) End() error {
	e.renderer.Present()
	return nil
}

func (e *Engine) setDrawColor(c color.RGBA) error {
	return e.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func check(ok bool, primitive string) error {
	if ok {
		return nil
	}
	if err := sdl.GetError(); err != nil {
		return fmt.Errorf("sdlengine: %s: %w", primitive, err)
	}
	return fmt.Errorf("sdlengine: %s failed", primitive)
}

func round(v float32) int32 {
	return int32(math.Round(float64(v)))
}

func toSDLColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toSDLRect(rect image.Rectangle) sdl.Rect {
	return sdl.Rect{
		X: int32(rect.Min.X),
		Y: int32(rect.Min.Y),
		W: int32(rect.Dx()),
		H: int32(rect.Dy()),
	}
}

// outlineRects returns the four edges of rect, each thick pixels wide and
// lying inside rect. The thickness is capped to half the shorter side.
func outlineRects(rect sdl.Rect, thick int32) []sdl.Rect {
	if thick > rect.W || thick > rect.H {
		if rect.W >= rect.H {
			thick = rect.H / 2
		} else {
			thick = rect.W / 2
		}
	}
	return []sdl.Rect{
		{X: rect.X, Y: rect.Y, W: rect.W, H: thick},
		{X: rect.X, Y: rect.Y + rect.H - thick, W: rect.W, H: thick},
		{X: rect.X, Y: rect.Y + thick, W: thick, H: rect.H - thick*2},
		{X: rect.X + rect.W - thick, Y: rect.Y + thick, W: thick, H: rect.H - thick*2},
	}
}

type quad struct {
	vx [4]int16
	vy [4]int16
}

// ringQuads splits the ring between startAngle and endAngle (degrees) into
// segments quads, outer edge first.
func ringQuads(center gamedraw.Vector2, innerRadius, outerRadius, startAngle, endAngle float32, segments int32) []quad {
	if startAngle == endAngle {
		return nil
	}
	if outerRadius < innerRadius {
		innerRadius, outerRadius = outerRadius, innerRadius
	}
	if segments < minRingSegments {
		segments = minRingSegments
	}

	step := float64(endAngle-startAngle) / float64(segments)
	point := func(radius float32, angle float64) (int16, int16) {
		rad := angle * math.Pi / 180
		x := float64(center.X) + float64(radius)*math.Cos(rad)
		y := float64(center.Y) + float64(radius)*math.Sin(rad)
		return int16(math.Round(x)), int16(math.Round(y))
	}

	quads := make([]quad, 0, segments)
	for i := int32(0); i < segments; i++ {
		a0 := float64(startAngle) + step*float64(i)
		a1 := a0 + step
		var q quad
		q.vx[0], q.vy[0] = point(outerRadius, a0)
		q.vx[1], q.vy[1] = point(outerRadius, a1)
		q.vx[2], q.vy[2] = point(innerRadius, a1)
		q.vx[3], q.vy[3] = point(innerRadius, a0)
		quads = append(quads, q)
	}
	return quads
}

var _ gamedraw.PaintEngine = (*Engine)(nil)
