package transforms

import (
	"testing"

	"github.com/willbeason/newton-fractal/pkg/cplx"
)

func TestBinomial(t *testing.T) {
	b := Binomial{N: 6, C: 1.61803, D: 9.708203, K: 1}

	p, dp := b.Eval(cplx.Real(1))
	if want := cplx.Real(0.61803); p.Sub(want).AbsSq() > 1e-24 {
		t.Errorf("p(1) = %s, want %s", p, want)
	}
	if dp != cplx.Real(9.708203) {
		t.Errorf("p'(1) = %s, want 9.708203", dp)
	}

	p, _ = b.Eval(cplx.Complex{Im: 1})
	if want := cplx.Real(-2.61803); p.Sub(want).AbsSq() > 1e-24 {
		t.Errorf("p(i) = %s, want %s", p, want)
	}
}

func TestTrinomial(t *testing.T) {
	tr := Trinomial{N: 6, M: 3, K: 1}

	tests := []struct {
		z, p, dp cplx.Complex
	}{
		{z: cplx.Real(1), p: cplx.Real(1), dp: cplx.Real(9)},
		{z: cplx.Real(-1), p: cplx.Real(-1), dp: cplx.Real(-3)},
		{z: cplx.Real(2), p: cplx.Real(71), dp: cplx.Real(204)},
	}

	for _, tt := range tests {
		p, dp := tr.Eval(tt.z)
		if p.Sub(tt.p).AbsSq() > 1e-18 {
			t.Errorf("p(%s) = %s, want %s", tt.z, p, tt.p)
		}
		if dp.Sub(tt.dp).AbsSq() > 1e-18 {
			t.Errorf("p'(%s) = %s, want %s", tt.z, dp, tt.dp)
		}
	}
}

func TestNewtonFixedPoint(t *testing.T) {
	n := Newton{Polynomial: Trinomial{N: 6, M: 3, K: 1}, A: 1}

	root := cplx.Real(0.851799642079243)
	if got := n.Next(root); got.Sub(root).AbsSq() > 1e-20 {
		t.Errorf("Next(%s) = %s, want a fixed point", root, got)
	}
}

func TestNewtonDamping(t *testing.T) {
	b := Binomial{N: 2, C: 1, D: 2, K: 4}
	z := cplx.Real(4)

	// Full step from 4 toward 2 lands on 2.5, a zero step stays put.
	if got := (Newton{Polynomial: b, A: 1}).Next(z); got != cplx.Real(2.5) {
		t.Errorf("a=1: Next(4) = %s, want 2.5", got)
	}
	if got := (Newton{Polynomial: b, A: 0}).Next(z); got != z {
		t.Errorf("a=0: Next(4) = %s, want 4", got)
	}
	if got := (Newton{Polynomial: b, A: 0.5}).Next(z); got != cplx.Real(3.25) {
		t.Errorf("a=0.5: Next(4) = %s, want 3.25", got)
	}
}
