// package io does audio out: it connects a wavetable.Source to a sound card,
// or to a file.
package io

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/pfcm/wavetable"
)

// blockSize is the number of samples preallocated for callbacks. Backends grow
// their buffers if a device asks for more, which should only happen once.
const blockSize = 4096

// ErrUnknownBackend is returned by Play for a backend that isn't in Backends.
var ErrUnknownBackend = errors.New("unknown audio backend")

// A Tap is shown every block of samples on its way to the device. It is called
// from the audio callback, so it mustn't block or hang on to the slice.
type Tap interface {
	Tap(samples []float32)
}

type taps []Tap

func (ts taps) Tap(samples []float32) {
	for _, t := range ts {
		t.Tap(samples)
	}
}

// Taps combines a number of Taps into one, ignoring nils.
func Taps(ts ...Tap) Tap {
	var all taps
	for _, t := range ts {
		if t != nil {
			all = append(all, t)
		}
	}
	return all
}

// A Backend plays src on the default output device until ctx is done,
// showing every block it plays to tap, which may be nil. src is only ever
// pulled from one goroutine at a time.
type Backend func(ctx context.Context, src wavetable.Source, tap Tap) error

// Backends are the available audio outputs by name.
var Backends = map[string]Backend{
	"malgo":     PlayMalgo,
	"oto":       PlayOto,
	"portaudio": PlayPortAudio,
	"beep":      PlayBeep,
}

// BackendNames returns the keys of Backends, sorted.
func BackendNames() []string {
	names := make([]string, 0, len(Backends))
	for n := range Backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Play plays src using the named backend until ctx is done.
func Play(ctx context.Context, backend string, src wavetable.Source, tap Tap) error {
	b, ok := Backends[backend]
	if !ok {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownBackend, backend, BackendNames())
	}
	if err := b(ctx, src, tap); err != nil {
		return fmt.Errorf("%s: %w", backend, err)
	}
	return nil
}

// pull fills buf from src and shows it to tap.
func pull(src wavetable.Sampler, tap Tap, buf []float32) {
	wavetable.Fill(src, buf)
	if tap != nil {
		tap.Tap(buf)
	}
}

// grow returns buf resized to n, reallocating only if it has to.
func grow(buf []float32, n int) []float32 {
	if cap(buf) < n {
		return make([]float32, n)
	}
	return buf[:n]
}

// encodeF32 appends samples to dst as little endian 32 bit floats.
func encodeF32(dst []byte, samples []float32) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(s))
	}
	return dst
}
