// package table builds single-cycle wave tables for the oscillators in osc.
// Every builder is pure and returns a fresh table, owned by whoever receives it.
package table

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultSize is the table length used when nobody asks for anything else.
const DefaultSize = 64

// Table is exactly one period of a waveform, nominally in [-1, 1]. Tables are
// not modified after they are built.
type Table []float32

// ErrUnknownShape is returned by ByName for shapes it doesn't know.
var ErrUnknownShape = errors.New("unknown wave shape")

// Shapes maps the names of the available waveforms to their builders.
var Shapes = map[string]func(n int) Table{
	"sine":     Sine,
	"square":   Square,
	"saw":      Saw,
	"triangle": Triangle,
	"noise":    Noise,
}

// Names returns the names in Shapes, sorted.
func Names() []string {
	names := make([]string, 0, len(Shapes))
	for n := range Shapes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByName builds a table of size n for the named shape.
func ByName(name string, n int) (Table, error) {
	f, ok := Shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownShape, name, Names())
	}
	return f(n), nil
}

func alloc(n int) Table {
	if n < 0 {
		panic(fmt.Errorf("negative table size %d", n))
	}
	return make(Table, n)
}

// Sine returns one period of a sine wave starting at phase zero, so the first
// sample is 0 and the wave rises from there.
func Sine(n int) Table {
	t := alloc(n)
	for i := range t {
		t[i] = float32(math.Sin(2 * math.Pi * float64(i) / float64(n)))
	}
	return t
}

// Square returns a naive square wave: -1 up to and including the sample at
// n/2, +1 after it. The midpoint sitting in the low half means the low part is
// one sample longer for even n.
func Square(n int) Table {
	t := alloc(n)
	for i := range t {
		if i > n/2 {
			t[i] = 1
		} else {
			t[i] = -1
		}
	}
	return t
}

// Saw returns a rising ramp from -1, stepping by 2/n.
func Saw(n int) Table {
	t := alloc(n)
	for i := range t {
		t[i] = -1 + 2*float32(i)/float32(n)
	}
	return t
}

// Triangle returns a triangle wave that starts at 0 and peaks at a quarter
// period, in phase with Sine.
func Triangle(n int) Table {
	t := alloc(n)
	for i := range t {
		p := float32(i) / float32(n)
		switch {
		case p < 0.25:
			t[i] = 4 * p
		case p < 0.75:
			t[i] = 2 - 4*p
		default:
			t[i] = 4*p - 4
		}
	}
	return t
}
