package main

import (
	"io"
	"testing"

	"github.com/rmcsoft/gamedraw"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

func TestDrawSceneRestoresStyle(t *testing.T) {
	painter := gamedraw.NewPainter(gamedraw.NullPaintEngine())
	painter.SetFillColor(colornames.Orange)
	before := painter.Style()

	for frame := 0; frame < 3; frame++ {
		if err := drawScene(painter, frame); err != nil {
			t.Fatal(err)
		}
	}
	if painter.Style() != before {
		t.Fatalf("expected %+v, got %+v", before, painter.Style())
	}
}

func TestRunHeadless(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	opts := options{Backend: "null", Frames: 2}
	if err := run(&opts, headlessWindow{gamedraw.NullPaintEngine()}, logger); err != nil {
		t.Fatal(err)
	}
}
