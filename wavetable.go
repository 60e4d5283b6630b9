// package wavetable generates audio from single-cycle wave tables. This package
// holds the contracts between sample generators and whatever is playing them,
// plus a few small sources; the oscillator itself is in osc and the tables
// are built by package table.
package wavetable

import (
	"fmt"
	"time"

	"github.com/pfcm/wavetable/fix"
)

// Sampler is something that makes audio one sample at a time. There is no end:
// Sample can always be called again, and every call moves the generator along.
// Multi-channel samplers return their samples interleaved.
type Sampler interface {
	Sample() float32
}

// Stream describes a stream of samples well enough to open a device for it.
type Stream interface {
	// Channels returns the number of interleaved channels.
	Channels() int
	// SampleRate returns the number of frames per second.
	SampleRate() int
	// Duration returns the total length of the stream, or false if it goes
	// on forever.
	Duration() (time.Duration, bool)
	// FrameLen returns the number of samples the stream produces in one go,
	// or false if it has no preferred chunk size.
	FrameLen() (int, bool)
}

// Source is a Sampler that can also describe itself.
type Source interface {
	Sampler
	Stream
}

// Fill pulls len(buf) samples from s into buf.
func Fill(s Sampler, buf []float32) {
	for i := range buf {
		buf[i] = s.Sample()
	}
}

// Const is a mono Source that always produces the same value.
type Const struct {
	Val  float32
	Rate int
}

var _ Source = Const{}

func (c Const) Sample() float32               { return c.Val }
func (Const) Channels() int                   { return 1 }
func (c Const) SampleRate() int               { return c.Rate }
func (Const) Duration() (time.Duration, bool) { return 0, false }
func (Const) FrameLen() (int, bool)           { return 0, false }
func (c Const) String() string                { return fmt.Sprintf("Const(%v)", c.Val) }

// Scale multiplies its Source by a constant and shifts it by a constant.
type Scale struct {
	Source
	Mul   float32
	Shift float32
}

var _ Source = Scale{}

func (s Scale) Sample() float32 { return s.Source.Sample()*s.Mul + s.Shift }
func (s Scale) String() string  { return fmt.Sprintf("Scale(%v, %v)", s.Mul, s.Shift) }

// Crush squeezes every sample of its Source through a fix.S17, leaving 256
// possible levels. Anything outside [-1, 1) is clipped.
type Crush struct {
	Source
}

var _ Source = Crush{}

func (c Crush) Sample() float32 {
	return fix.Float[float32](fix.FromFloat(c.Source.Sample()))
}

func (c Crush) String() string { return "Crush" }
