// package fix provides an 8 bit fixed point sample type. Pushing audio through
// it is a cheap way to get the sound of low bit depth hardware.
package fix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// S17 is a signed (two's complement) 8 bit number with 1 integer bit and 7
// fractional bits, covering -1 to just under 1 in steps of 1/128.
type S17 int8

const (
	// MaxS17 is the highest positive S17: 0.9921875.
	MaxS17 S17 = 0x7F
	// MinS17 is the lowest negative S17: -1.
	MinS17 S17 = -0x80
)

func (s S17) String() string {
	return fmt.Sprintf("%.7f", Float[float64](s))
}

// SAdd is a saturating +, clipping to the minimum or maximum value.
func (a S17) SAdd(b S17) S17 {
	return S17(max(int16(MinS17), min(int16(MaxS17), int16(a)+int16(b))))
}

// SMul multiplies an S17 with another. The only product that can overflow is
// -1 * -1, which saturates to MaxS17.
func (a S17) SMul(b S17) S17 {
	return S17(min(int16(MaxS17), (int16(a)*int16(b))>>7))
}

// Float converts an S17 to a float.
func Float[T constraints.Float](s S17) T {
	return T(s) / (1 << 7)
}

// FromFloat converts a float into an S17, rounding towards zero and clamping
// to the maximum or minimum values.
func FromFloat[T constraints.Float](f T) S17 {
	if f <= Float[T](MinS17) {
		return MinS17
	}
	if f >= Float[T](MaxS17) {
		return MaxS17
	}
	return S17(f * (1 << 7))
}
