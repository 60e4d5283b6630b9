package interp

import (
	"testing"
)

func TestL(t *testing.T) {
	for _, c := range []struct {
		a, b, c float32
		out     float32
	}{{
		a:   0.5,
		b:   0,
		c:   1.0,
		out: 0,
	}, {
		a:   0.5,
		b:   -0.5,
		c:   0.5,
		out: 0,
	}, {
		a:   -1,
		b:   1,
		c:   0,
		out: -1,
	}, {
		a:   0.25,
		b:   0.75,
		c:   0.5,
		out: 0.5,
	}, {
		a:   0,
		b:   1,
		c:   0.25,
		out: 0.25,
	}} {
		got := L(c.a, c.b, c.c)
		if got != c.out {
			t.Errorf("L(%v, %v, %v) = %v, want: %v", c.a, c.b, c.c, got, c.out)
		}
	}
}

func TestLFloat64(t *testing.T) {
	if got := L(2.0, 4.0, 0.75); got != 3.5 {
		t.Errorf("L(2, 4, 0.75) = %v, want: 3.5", got)
	}
}
