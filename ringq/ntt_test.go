package ringq

import (
	"math/rand"
	"testing"
)

func TestMulNTTMatchesSchoolbook(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		a, b := randPoly(rng), randPoly(rng)
		want := Mul(a, b)
		got, err := MulNTT(a, b)
		if err != nil {
			t.Fatalf("MulNTT: %v", err)
		}
		if !got.Equal(want) {
			t.Fatalf("trial %d: NTT product disagrees with schoolbook", trial)
		}
	}
}

func TestMulNTTSparse(t *testing.T) {
	// Sparse ternary operand, the shape challenge polynomials take.
	a := &Poly{}
	a.Coeffs[0] = 1
	a.Coeffs[31] = Q - 1
	a.Coeffs[200] = 1
	rng := rand.New(rand.NewSource(8))
	b := randPoly(rng)
	want := Mul(a, b)
	got, err := MulNTT(a, b)
	if err != nil {
		t.Fatalf("MulNTT: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("sparse NTT product disagrees with schoolbook")
	}
}
