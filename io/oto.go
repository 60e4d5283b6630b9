package io

import (
	"context"
	stdio "io"

	"github.com/ebitengine/oto/v3"

	"github.com/pfcm/wavetable"
)

// reader turns a Source into little endian float32 bytes.
type reader struct {
	src      wavetable.Sampler
	tap      Tap
	frame    int // bytes
	channels int
	buf      []float32
}

// NewReader returns a reader that produces src as interleaved little endian
// float32s, the format oto and a lot of other things expect. Reads always
// return whole frames and never run out; tap may be nil.
func NewReader(src wavetable.Source, tap Tap) stdio.Reader {
	return &reader{
		src:      src,
		tap:      tap,
		frame:    4 * src.Channels(),
		channels: src.Channels(),
		buf:      make([]float32, blockSize*src.Channels()),
	}
}

func (r *reader) Read(p []byte) (int, error) {
	frames := len(p) / r.frame
	if frames == 0 {
		return 0, stdio.ErrShortBuffer
	}
	r.buf = grow(r.buf, frames*r.channels)
	pull(r.src, r.tap, r.buf)
	return len(encodeF32(p[:0], r.buf)), nil
}

// PlayOto plays src on the default device using oto. Only one oto context
// can exist per process.
func PlayOto(ctx context.Context, src wavetable.Source, tap Tap) error {
	c, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   src.SampleRate(),
		ChannelCount: src.Channels(),
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready

	p := c.NewPlayer(NewReader(src, tap))
	p.Play()

	<-ctx.Done()

	if err := p.Err(); err != nil {
		p.Close()
		return err
	}
	return p.Close()
}
