package sdlengine

import (
	"fmt"

	"github.com/rmcsoft/gamedraw"
	"github.com/veandco/go-sdl2/mix"
)

const audioChunkSize = 4096

// Sound wraps an SDL_mixer chunk. It does not own the chunk: release it
// with s.Native().Free().
type Sound struct {
	native *mix.Chunk
}

// FromNative wraps an SDL_mixer chunk.
func FromNative(native *mix.Chunk) Sound {
	return Sound{native: native}
}

// Native returns the wrapped chunk.
func (s Sound) Native() *mix.Chunk {
	return s.native
}

// Play plays the sound once on the first free channel.
func (s Sound) Play() error {
	if _, err := s.native.Play(-1, 0); err != nil {
		return fmt.Errorf("sdlengine: play sound: %w", err)
	}
	return nil
}

// OpenAudio opens the default audio device for SDL_mixer.
func OpenAudio() error {
	if err := initSdl(); err != nil {
		return err
	}
	if err := mix.OpenAudio(mix.DEFAULT_FREQUENCY, mix.DEFAULT_FORMAT, mix.DEFAULT_CHANNELS, audioChunkSize); err != nil {
		return fmt.Errorf("sdlengine: open audio: %w", err)
	}
	gamedraw.Logger().WithField("backend", "sdl").Info("audio device opened")
	return nil
}

// CloseAudio closes the device opened by OpenAudio.
func CloseAudio() {
	mix.CloseAudio()
}

// LoadSound loads a WAV file. OpenAudio must have been called.
func LoadSound(fileName string) (Sound, error) {
	chunk, err := mix.LoadWAV(fileName)
	if err != nil {
		return Sound{}, fmt.Errorf("sdlengine: could not load sound '%s': %w", fileName, err)
	}
	return FromNative(chunk), nil
}
