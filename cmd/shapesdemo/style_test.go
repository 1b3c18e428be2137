package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmcsoft/gamedraw"
	"golang.org/x/image/colornames"
)

func writeStyleFile(t *testing.T, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(fileName, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fileName
}

func TestLoadStyle(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		fileName := writeStyleFile(t, `
fill_color = [255, 0, 0, 255]
line_color = [0, 0, 255]
line_size = 3.5
`)
		style, err := loadStyle(fileName, gamedraw.DefaultStyle())
		if err != nil {
			t.Fatal(err)
		}
		expected := gamedraw.Style{
			FillColor: color.RGBA{R: 255, A: 255},
			LineColor: color.RGBA{B: 255, A: 255},
			LineSize:  3.5,
		}
		if style != expected {
			t.Fatalf("expected %+v, got %+v", expected, style)
		}
	})
	t.Run("missing keys keep defaults", func(t *testing.T) {
		fileName := writeStyleFile(t, "line_size = 0.0\n")
		style, err := loadStyle(fileName, gamedraw.DefaultStyle())
		if err != nil {
			t.Fatal(err)
		}
		if style.FillColor != colornames.Black || style.LineColor != gamedraw.Blank {
			t.Fatalf("colors changed: %+v", style)
		}
		if style.LineSize != 0 {
			t.Fatalf("expected line size 0, got %v", style.LineSize)
		}
	})
	t.Run("bad channel", func(t *testing.T) {
		fileName := writeStyleFile(t, "fill_color = [256, 0, 0]\n")
		if _, err := loadStyle(fileName, gamedraw.DefaultStyle()); err == nil {
			t.Fatal("expected an error")
		}
	})
	t.Run("missing file", func(t *testing.T) {
		if _, err := loadStyle(filepath.Join(t.TempDir(), "none.toml"), gamedraw.DefaultStyle()); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestParseColor(t *testing.T) {
	if _, err := parseColor([]int{1, 2}); err == nil {
		t.Fatal("expected an error for two channels")
	}
	c, err := parseColor([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Fatalf("unexpected color %+v", c)
	}
}
