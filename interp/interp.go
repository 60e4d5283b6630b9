// package interp provides helpers for interpolating between samples.
package interp

import (
	"golang.org/x/exp/constraints"
)

// L does linear interpolation:
//
//	   L(a, b, c) = (1-c)*a + c*b
//		= a + c*(b-a)
//
// The second form saves a multiplication, but the first one returns exactly a
// at c == 0 and exactly b at c == 1, which matters when a table is played back
// at a rate that lands on whole indices.
func L[T constraints.Float](a, b, c T) T {
	return (1-c)*a + c*b
}
