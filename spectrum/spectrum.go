// package spectrum looks at rendered audio in the frequency domain, mostly to
// check that an oscillator is actually playing the pitch it was asked for.
package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// Magnitudes returns the magnitude of each bin of the Hann windowed real FFT of
// samples, from DC up to and including Nyquist.
func Magnitudes(samples []float32) []float64 {
	x := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s)
	}
	window.Apply(x, window.Hann)
	spec := fft.FFTReal(x)
	mags := make([]float64, len(x)/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(spec[i])
	}
	return mags
}

// Peak estimates the frequency in Hz with the most energy in samples, which
// were played at samplerate. DC is ignored. The loudest bin is refined by
// fitting a parabola through it and its neighbours, which gets well within a
// bin's width of the true frequency for a clean tone. Returns 0 if there are
// fewer than 4 samples or nothing but DC.
func Peak(samples []float32, samplerate int) float64 {
	if len(samples) < 4 {
		return 0
	}
	mags := Magnitudes(samples)
	best := 0
	for i := 1; i < len(mags); i++ {
		if mags[i] > mags[best] || best == 0 {
			best = i
		}
	}
	if mags[best] == 0 {
		return 0
	}
	bin := float64(best)
	if best > 0 && best < len(mags)-1 {
		// Parabolic interpolation on the log magnitudes.
		a, b, c := logMag(mags[best-1]), logMag(mags[best]), logMag(mags[best+1])
		if d := a - 2*b + c; d != 0 {
			bin += 0.5 * (a - c) / d
		}
	}
	return bin * float64(samplerate) / float64(len(samples))
}

func logMag(m float64) float64 {
	return math.Log(m + 1e-12)
}
