package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfcm/wavetable/osc"
	"github.com/pfcm/wavetable/table"
)

func render(t *testing.T, tab table.Table, samplerate int, freq float64, n int) []float32 {
	t.Helper()
	o, err := osc.New(samplerate, tab)
	require.NoError(t, err)
	o.SetFrequency(freq)
	buf := make([]float32, n)
	o.Fill(buf)
	return buf
}

func TestPeakSine(t *testing.T) {
	const (
		samplerate = 44100
		n          = 8192
	)
	binWidth := float64(samplerate) / n
	for _, f := range []float64{110, 220, 440, 1000, 3520} {
		got := Peak(render(t, table.Sine(64), samplerate, f, n), samplerate)
		assert.InDelta(t, f, got, binWidth/2, "sine at %v Hz", f)
	}
}

func TestPeakSquare(t *testing.T) {
	// A square wave's strongest partial is its fundamental.
	got := Peak(render(t, table.Square(64), 44100, 220, 8192), 44100)
	assert.InDelta(t, 220, got, 44100.0/8192)
}

func TestPeakReverse(t *testing.T) {
	// Playing a sine backwards flips its sign but not its pitch.
	got := Peak(render(t, table.Sine(64), 44100, -440, 8192), 44100)
	assert.InDelta(t, 440, got, 44100.0/8192)
}

func TestPeakDegenerate(t *testing.T) {
	assert.Zero(t, Peak(nil, 44100))
	assert.Zero(t, Peak([]float32{1, 2, 3}, 44100))
	assert.Zero(t, Peak(make([]float32, 64), 44100))
}

func TestMagnitudes(t *testing.T) {
	const n = 64
	x := make([]float32, n)
	for i := range x {
		x[i] = float32(math.Sin(2 * math.Pi * 8 * float64(i) / n))
	}
	mags := Magnitudes(x)
	require.Len(t, mags, n/2+1)
	best := 0
	for i, m := range mags {
		if m > mags[best] {
			best = i
		}
	}
	assert.Equal(t, 8, best)
}
