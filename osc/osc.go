// package osc provides oscillators.
package osc

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pfcm/wavetable"
	"github.com/pfcm/wavetable/interp"
	"github.com/pfcm/wavetable/table"
)

var (
	// ErrEmptyTable is returned by New for a table with no samples, which
	// would have nothing to index into.
	ErrEmptyTable = errors.New("osc: empty wave table")
	// ErrSampleRate is returned by New for a sample rate that isn't
	// positive.
	ErrSampleRate = errors.New("osc: sample rate must be positive")
)

// Oscillator is a wavetable oscillator. It steps through one period of a
// waveform at a rate set by the frequency, linearly interpolating between the
// two table entries on either side of its fractional position.
//
// An Oscillator is not safe for concurrent use: it should be owned by whatever
// is pulling samples from it.
type Oscillator struct {
	samplerate int
	tab        table.Table
	freq       float64

	// index is the position in tab, always in [0, len(tab)).
	index float64
	// step is how far index moves per output sample.
	step float64
}

var _ wavetable.Source = &Oscillator{}

// New creates an Oscillator that takes ownership of tab; the caller shouldn't
// touch the table after this. The oscillator starts at the beginning of the
// table and is silent (or rather, stuck on tab[0]) until a frequency is set.
func New(samplerate int, tab table.Table) (*Oscillator, error) {
	if len(tab) == 0 {
		return nil, ErrEmptyTable
	}
	if samplerate <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleRate, samplerate)
	}
	return &Oscillator{
		samplerate: samplerate,
		tab:        tab,
	}, nil
}

func (o *Oscillator) Channels() int                   { return 1 }
func (o *Oscillator) SampleRate() int                 { return o.samplerate }
func (o *Oscillator) Duration() (time.Duration, bool) { return 0, false }
func (o *Oscillator) FrameLen() (int, bool)           { return 0, false }
func (o *Oscillator) Frequency() float64              { return o.freq }

func (o *Oscillator) String() string {
	return fmt.Sprintf("osc.Oscillator(%d, %.2fHz)", len(o.tab), o.freq)
}

// SetFrequency sets the frequency in Hz, starting from the next sample. Zero
// holds the current position and negative frequencies play the table
// backwards. Nothing stops a frequency above Nyquist, it will just alias.
// Infinite or NaN frequencies freeze the oscillator like zero.
func (o *Oscillator) SetFrequency(f float64) {
	o.freq = f
	// f is in tables per second, so f*len(tab) is table samples per
	// second. Dividing by the output rate gives table samples per output
	// sample.
	o.step = f * float64(len(o.tab)) / float64(o.samplerate)
	if math.IsNaN(o.step) || math.IsInf(o.step, 0) {
		// There is no sensible position after an infinite step.
		o.step = 0
	}
}

// SetNote sets the frequency to that of a MIDI note, where 69 is A440. The
// note may be fractional.
func (o *Oscillator) SetNote(note float64) {
	o.SetFrequency(NoteFrequency(note))
}

// NoteFrequency returns the frequency in Hz of a (possibly fractional) MIDI
// note in twelve tone equal temperament.
func NoteFrequency(note float64) float64 {
	return math.Pow(2.0, (note-69)/12) * 440
}

// Sample returns the sample at the current position and then moves along.
// The first call after New always returns tab[0].
func (o *Oscillator) Sample() float32 {
	s := o.lerp()
	o.index = wrap(o.index+o.step, float64(len(o.tab)))
	return s
}

// Fill fills buf with the next len(buf) samples.
func (o *Oscillator) Fill(buf []float32) {
	for i := range buf {
		buf[i] = o.Sample()
	}
}

// lerp interpolates between the table entries either side of the current
// position. The entry after the last one is the first.
func (o *Oscillator) lerp() float32 {
	j := int(o.index)
	k := (j + 1) % len(o.tab)
	c := float32(o.index - float64(j))
	return interp.L(o.tab[j], o.tab[k], c)
}

// wrap returns x modulo n in [0, n), for x of either sign.
func wrap(x, n float64) float64 {
	x = math.Mod(x, n)
	if x < 0 {
		x += n
		// A tiny negative x rounds up to exactly n.
		if x >= n {
			x = 0
		}
	}
	return x
}
