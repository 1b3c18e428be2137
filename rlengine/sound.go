package rlengine

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rmcsoft/gamedraw"
)

// Sound wraps a raylib sound handle. It does not own the sound: unload it
// with rl.UnloadSound(s.Native()).
type Sound struct {
	native rl.Sound
}

// FromNative wraps a raylib sound.
func FromNative(native rl.Sound) Sound {
	return Sound{native: native}
}

// Native returns the wrapped raylib sound.
func (s Sound) Native() rl.Sound {
	return s.native
}

// Play starts playing the sound.
func (s Sound) Play() {
	rl.PlaySound(s.native)
}

// InitAudio opens the default audio device.
func InitAudio() {
	rl.InitAudioDevice()
	gamedraw.Logger().WithField("backend", "raylib").Info("audio device opened")
}

// CloseAudio closes the audio device opened by InitAudio.
func CloseAudio() {
	rl.CloseAudioDevice()
}

// LoadSound loads a sound file. InitAudio must have been called.
func LoadSound(fileName string) (Sound, error) {
	native := rl.LoadSound(fileName)
	if !rl.IsSoundValid(native) {
		return Sound{}, fmt.Errorf("rlengine: could not load sound '%s'", fileName)
	}
	return FromNative(native), nil
}
