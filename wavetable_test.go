package wavetable_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfcm/wavetable"
	"github.com/pfcm/wavetable/osc"
	"github.com/pfcm/wavetable/table"
)

func TestConst(t *testing.T) {
	c := wavetable.Const{Val: 0.25, Rate: 8000}
	buf := make([]float32, 16)
	wavetable.Fill(c, buf)
	for _, s := range buf {
		assert.Equal(t, float32(0.25), s)
	}
	assert.Equal(t, 1, c.Channels())
	assert.Equal(t, 8000, c.SampleRate())
	_, ok := c.Duration()
	assert.False(t, ok)
}

func TestScale(t *testing.T) {
	s := wavetable.Scale{Source: wavetable.Const{Val: 0.5, Rate: 100}, Mul: 0.5, Shift: -0.25}
	assert.Equal(t, float32(0), s.Sample())
	assert.Equal(t, 100, s.SampleRate(), "metadata passes through")
}

func TestCrush(t *testing.T) {
	for _, c := range []struct {
		in, want float32
	}{
		{0, 0},
		{0.5, 0.5},
		{-0.3, -0.296875},
		{1, 0.9921875},
		{-1.5, -1},
	} {
		got := wavetable.Crush{Source: wavetable.Const{Val: c.in, Rate: 1}}.Sample()
		assert.Equal(t, c.want, got, "Crush(%v)", c.in)
	}
}

func TestCrushOscillator(t *testing.T) {
	o, err := osc.New(44100, table.Sine(64))
	require.NoError(t, err)
	o.SetFrequency(441)
	c := wavetable.Crush{Source: o}
	levels := make(map[float32]bool)
	for i := 0; i < 1000; i++ {
		s := c.Sample()
		// every output is a whole number of 128ths.
		assert.Equal(t, s*128, float32(int(s*128)))
		levels[s] = true
	}
	assert.LessOrEqual(t, len(levels), 256)
}

func TestEvery(t *testing.T) {
	var calls []int
	var at []int
	n := 0
	src := wavetable.Every(wavetable.Const{Val: 1, Rate: 10}, 4, func(i int) {
		calls = append(calls, i)
		at = append(at, n)
	})
	for ; n < 10; n++ {
		src.Sample()
	}
	assert.Equal(t, []int{0, 1, 2}, calls)
	assert.Equal(t, []int{0, 4, 8}, at)
	assert.Equal(t, 10, src.SampleRate())
}

func TestEverySequencesNotes(t *testing.T) {
	o, err := osc.New(1000, table.Sine(64))
	require.NoError(t, err)
	notes := []float64{57, 69, 81}
	src := wavetable.EveryDuration(o, 10*time.Millisecond, func(i int) {
		o.SetNote(notes[i%len(notes)])
	})
	for i := 0; i < 10; i++ {
		src.Sample()
	}
	assert.InDelta(t, 220, o.Frequency(), 1e-9)
	src.Sample()
	assert.InDelta(t, 440, o.Frequency(), 1e-9)
	for i := 0; i < 20; i++ {
		src.Sample()
	}
	assert.InDelta(t, 220, o.Frequency(), 1e-9, "sequence wraps around")
}

func TestEveryBadInterval(t *testing.T) {
	assert.Panics(t, func() {
		wavetable.Every(wavetable.Const{}, 0, func(int) {})
	})
}
