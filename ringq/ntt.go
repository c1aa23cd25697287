package ringq

import (
	"sync"

	"github.com/tuneinsight/lattigo/v4/ring"
)

var (
	nttOnce sync.Once
	nttRing *ring.Ring
	nttErr  error
)

// lattigoRing lazily builds the single-limb Lattigo ring backing MulNTT.
// Q = 1 mod 2N, so the negacyclic NTT for degree N exists.
func lattigoRing() (*ring.Ring, error) {
	nttOnce.Do(func() {
		nttRing, nttErr = ring.NewRing(N, []uint64{Q})
	})
	return nttRing, nttErr
}

// MulNTT multiplies a and b through the number theoretic transform.
// The NTT is exact modulo Q, so the output matches Mul coefficient for
// coefficient; it is only a faster route to the same ring product.
func MulNTT(a, b *Poly) (*Poly, error) {
	r, err := lattigoRing()
	if err != nil {
		return nil, err
	}
	pa := r.NewPoly()
	pb := r.NewPoly()
	for i := 0; i < N; i++ {
		pa.Coeffs[0][i] = uint64(a.Coeffs[i])
		pb.Coeffs[0][i] = uint64(b.Coeffs[i])
	}
	r.MForm(pa, pa)
	r.MForm(pb, pb)
	r.NTT(pa, pa)
	r.NTT(pb, pb)
	res := r.NewPoly()
	r.MulCoeffsMontgomery(pa, pb, res)
	r.InvNTT(res, res)
	r.InvMForm(res, res)
	out := &Poly{}
	for i := 0; i < N; i++ {
		out.Coeffs[i] = uint32(res.Coeffs[0][i])
	}
	return out, nil
}
