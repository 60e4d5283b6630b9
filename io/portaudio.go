package io

import (
	"context"

	"github.com/gordonklaus/portaudio"

	"github.com/pfcm/wavetable"
)

// PlayPortAudio plays src on the default device using PortAudio.
func PlayPortAudio(ctx context.Context, src wavetable.Source, tap Tap) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	// A framesPerBuffer of 0 lets PortAudio pick; out is interleaved.
	stream, err := portaudio.OpenDefaultStream(0, src.Channels(), float64(src.SampleRate()), 0,
		func(out []float32) {
			pull(src, tap, out)
		})
	if err != nil {
		return err
	}
	defer stream.Close()
	if err := stream.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	return stream.Stop()
}
