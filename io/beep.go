package io

import (
	"context"
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/pfcm/wavetable"
)

// streamer adapts a Sampler to beep, which always works in stereo pairs of
// float64s.
type streamer struct {
	src    wavetable.Sampler
	stereo bool
	tap    Tap
	buf    []float32
}

// Streamer returns a beep.Streamer that never ends. Mono sources are copied to
// both channels. It panics on sources with more than two channels.
func Streamer(src wavetable.Source) beep.Streamer {
	return newStreamer(src, src.Channels(), nil)
}

func newStreamer(src wavetable.Sampler, channels int, tap Tap) *streamer {
	if channels < 1 || channels > 2 {
		panic(fmt.Errorf("beep can't handle %d channels", channels))
	}
	return &streamer{
		src:    src,
		stereo: channels == 2,
		tap:    tap,
		buf:    make([]float32, 2*blockSize),
	}
}

func (s *streamer) Stream(samples [][2]float64) (int, bool) {
	n := len(samples)
	if s.stereo {
		n *= 2
	}
	s.buf = grow(s.buf, n)
	pull(s.src, s.tap, s.buf)
	for i := range samples {
		if s.stereo {
			samples[i] = [2]float64{float64(s.buf[2*i]), float64(s.buf[2*i+1])}
		} else {
			v := float64(s.buf[i])
			samples[i] = [2]float64{v, v}
		}
	}
	return len(samples), true
}

func (*streamer) Err() error { return nil }

// PlayBeep plays src on the default device through beep's speaker.
func PlayBeep(ctx context.Context, src wavetable.Source, tap Tap) error {
	if c := src.Channels(); c > 2 {
		return fmt.Errorf("can't play %d channels", c)
	}
	sr := beep.SampleRate(src.SampleRate())
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return err
	}
	defer speaker.Close()
	speaker.Play(newStreamer(src, src.Channels(), tap))

	<-ctx.Done()

	speaker.Clear()
	return nil
}
