package wavetable

import (
	"fmt"
	"time"
)

// every wraps a Source, calling a function at regular intervals.
type every struct {
	Source
	interval int
	samples  int
	calls    int
	f        func(int)
}

// Every returns a Source that calls f before the first sample it pulls from src
// and again every interval samples after that. f is passed the number of times
// it has been called before, so it can step through a sequence. f runs on
// whichever goroutine is pulling samples, which makes it a safe place to
// retune the source.
func Every(src Source, interval int, f func(int)) Source {
	if interval <= 0 {
		panic(fmt.Errorf("bad interval %d", interval))
	}
	return &every{
		Source:   src,
		interval: interval,
		f:        f,
	}
}

// EveryDuration is Every with the interval given as a duration at the
// source's sample rate.
func EveryDuration(src Source, d time.Duration, f func(int)) Source {
	return Every(src, max(1, int(d.Seconds()*float64(src.SampleRate()))), f)
}

func (e *every) Sample() float32 {
	if e.samples == 0 {
		e.f(e.calls)
		e.calls++
	}
	e.samples++
	if e.samples == e.interval {
		e.samples = 0
	}
	return e.Source.Sample()
}

func (e *every) String() string { return fmt.Sprintf("Every(%d)", e.interval) }
