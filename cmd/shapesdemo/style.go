package main

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
	"github.com/rmcsoft/gamedraw"
)

type styleFile struct {
	FillColor []int   `toml:"fill_color"`
	LineColor []int   `toml:"line_color"`
	LineSize  float32 `toml:"line_size"`
}

// loadStyle reads a TOML style file. Keys missing from the file keep the
// value from base.
func loadStyle(fileName string, base gamedraw.Style) (gamedraw.Style, error) {
	var file styleFile
	meta, err := toml.DecodeFile(fileName, &file)
	if err != nil {
		return base, fmt.Errorf("could not read style file '%s': %w", fileName, err)
	}

	style := base
	if meta.IsDefined("fill_color") {
		if style.FillColor, err = parseColor(file.FillColor); err != nil {
			return base, fmt.Errorf("fill_color: %w", err)
		}
	}
	if meta.IsDefined("line_color") {
		if style.LineColor, err = parseColor(file.LineColor); err != nil {
			return base, fmt.Errorf("line_color: %w", err)
		}
	}
	if meta.IsDefined("line_size") {
		style.LineSize = file.LineSize
	}
	return style, nil
}

// parseColor accepts [r, g, b] or [r, g, b, a] with channels in 0..255.
func parseColor(channels []int) (color.RGBA, error) {
	if len(channels) != 3 && len(channels) != 4 {
		return color.RGBA{}, fmt.Errorf("expected 3 or 4 channels, got %d", len(channels))
	}
	rgba := [4]uint8{0, 0, 0, 255}
	for i, channel := range channels {
		if channel < 0 || channel > 255 {
			return color.RGBA{}, fmt.Errorf("channel %d out of range: %d", i, channel)
		}
		rgba[i] = uint8(channel)
	}
	return color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
