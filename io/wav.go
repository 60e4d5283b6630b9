package io

import (
	"fmt"
	stdio "io"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/pfcm/wavetable"
)

// wavPrecision is the number of bytes per sample in written wav files.
const wavPrecision = 2

func checkChannels(channels int) error {
	if channels < 1 || channels > 2 {
		return fmt.Errorf("wav: can't encode %d channels", channels)
	}
	return nil
}

func encode(w stdio.WriteSeeker, s beep.Streamer, samplerate, channels int) error {
	return wav.Encode(w, s, beep.Format{
		SampleRate:  beep.SampleRate(samplerate),
		NumChannels: channels,
		Precision:   wavPrecision,
	})
}

// WriteWAV renders the next frames frames of src to w as a 16 bit PCM wav
// file, without going anywhere near a sound card.
func WriteWAV(w stdio.WriteSeeker, src wavetable.Source, frames int) error {
	channels := src.Channels()
	if err := checkChannels(channels); err != nil {
		return err
	}
	s := beep.Take(frames, newStreamer(src, channels, nil))
	return encode(w, s, src.SampleRate(), channels)
}

// Recorder is a Tap that keeps a copy of everything it sees, up to a fixed
// length decided up front so that recording never allocates.
type Recorder struct {
	samplerate int
	channels   int

	mu  sync.Mutex
	buf []float32
}

var _ Tap = &Recorder{}

// NewRecorder makes a Recorder with room for d of s.
func NewRecorder(s wavetable.Stream, d time.Duration) *Recorder {
	frames := int(d.Seconds() * float64(s.SampleRate()))
	return &Recorder{
		samplerate: s.SampleRate(),
		channels:   s.Channels(),
		buf:        make([]float32, 0, frames*s.Channels()),
	}
}

// Tap records as much of samples as there is room for.
func (r *Recorder) Tap(samples []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := min(len(samples), cap(r.buf)-len(r.buf))
	r.buf = append(r.buf, samples[:n]...)
}

// Len returns the number of samples recorded so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buf)
}

// WriteWAV writes everything recorded so far to w as a 16 bit PCM wav file.
func (r *Recorder) WriteWAV(w stdio.WriteSeeker) error {
	if err := checkChannels(r.channels); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	frames := len(r.buf) / r.channels
	s := beep.Take(frames, newStreamer(&playback{samples: r.buf}, r.channels, nil))
	return encode(w, s, r.samplerate, r.channels)
}

// playback replays recorded samples, then silence.
type playback struct {
	samples []float32
	pos     int
}

func (p *playback) Sample() float32 {
	if p.pos >= len(p.samples) {
		return 0
	}
	s := p.samples[p.pos]
	p.pos++
	return s
}
