package main

import (
	"os"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jessevdk/go-flags"
	"github.com/rmcsoft/gamedraw"
	"github.com/rmcsoft/gamedraw/rlengine"
	"github.com/rmcsoft/gamedraw/sdlengine"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

type options struct {
	Backend   string `short:"b" long:"backend" choice:"raylib" choice:"sdl" choice:"null" default:"raylib" description:"The rendering backend"`
	Width     int    `short:"W" long:"width" default:"480" description:"The window width"`
	Height    int    `short:"H" long:"height" default:"360" description:"The window height"`
	Title     string `short:"t" long:"title" default:"gamedraw" description:"The window title"`
	StyleFile string `short:"s" long:"style" description:"TOML file with the initial style"`
	SoundFile string `long:"sound" description:"WAV file played once at start"`
	Frames    int    `short:"f" long:"frames" description:"Stop after this many frames, 0 runs until the window is closed"`
	FPS       int    `long:"fps" default:"60" description:"The target frame rate"`
	Verbose   bool   `short:"v" long:"verbose" description:"Log every primitive call"`
}

// window is a paint engine with a window loop around it
type window interface {
	gamedraw.PaintEngine
	ShouldClose() bool
	Close() error
}

type sound interface {
	Play() error
}

type headlessWindow struct {
	gamedraw.PaintEngine
}

func (headlessWindow) ShouldClose() bool { return false }
func (headlessWindow) Close() error      { return nil }

type raylibSound struct {
	rlengine.Sound
}

func (s raylibSound) Play() error {
	s.Sound.Play()
	return nil
}

var background = colornames.White

func init() {
	// SDL and raylib must be driven from the main thread
	runtime.LockOSThread()
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	if opts.Backend == "null" && opts.Frames == 0 {
		opts.Frames = 1
	}
	return opts
}

func setupLogger(opts *options) *logrus.Logger {
	logger := logrus.StandardLogger()
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	gamedraw.SetLogger(logger)
	return logger
}

func openWindow(opts *options) (window, error) {
	switch opts.Backend {
	case "sdl":
		return sdlengine.New(opts.Width, opts.Height, opts.Title, background)
	case "null":
		return headlessWindow{gamedraw.NullPaintEngine()}, nil
	default:
		engine := rlengine.New(opts.Width, opts.Height, opts.Title, background)
		engine.SetTargetFPS(opts.FPS)
		return engine, nil
	}
}

// openSound opens the audio device and loads the sound. The returned
// function releases both.
func openSound(opts *options) (sound, func(), error) {
	switch opts.Backend {
	case "sdl":
		if err := sdlengine.OpenAudio(); err != nil {
			return nil, nil, err
		}
		s, err := sdlengine.LoadSound(opts.SoundFile)
		if err != nil {
			sdlengine.CloseAudio()
			return nil, nil, err
		}
		return s, func() {
			s.Native().Free()
			sdlengine.CloseAudio()
		}, nil
	case "raylib":
		rlengine.InitAudio()
		s, err := rlengine.LoadSound(opts.SoundFile)
		if err != nil {
			rlengine.CloseAudio()
			return nil, nil, err
		}
		return raylibSound{s}, func() {
			rl.UnloadSound(s.Native())
			rlengine.CloseAudio()
		}, nil
	default:
		return nil, func() {}, nil
	}
}

func run(opts *options, w window, logger *logrus.Logger) error {
	painter := gamedraw.NewPainter(w)
	if opts.StyleFile != "" {
		style, err := loadStyle(opts.StyleFile, painter.Style())
		if err != nil {
			return err
		}
		painter.SetStyle(style)
	}

	var ticker *time.Ticker
	if opts.Backend == "sdl" && opts.FPS > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(opts.FPS))
		defer ticker.Stop()
	}

	frame := 0
	for !w.ShouldClose() && (opts.Frames == 0 || frame < opts.Frames) {
		if err := w.Begin(); err != nil {
			return err
		}
		if err := drawScene(painter, frame); err != nil {
			return err
		}
		if err := w.End(); err != nil {
			return err
		}
		frame++
		if ticker != nil {
			<-ticker.C
		}
	}
	logger.WithField("frames", frame).Info("done")
	return nil
}

func main() {
	opts := parseCmd()
	logger := setupLogger(&opts)

	w, err := openWindow(&opts)
	if err != nil {
		logger.WithError(err).Fatal("could not open window")
	}
	defer func() {
		if err := w.Close(); err != nil {
			logger.WithError(err).Warn("could not close window")
		}
	}()

	if opts.SoundFile != "" {
		s, release, err := openSound(&opts)
		if err != nil {
			logger.WithError(err).Fatal("could not load sound")
		}
		defer release()
		if s != nil {
			if err := s.Play(); err != nil {
				logger.WithError(err).Warn("could not play sound")
			}
		} else {
			logger.WithField("backend", opts.Backend).Warn("backend has no audio, sound ignored")
		}
	}

	if err := run(&opts, w, logger); err != nil {
		logger.WithError(err).Fatal("drawing failed")
	}
}
