package ringq

import (
	"fmt"
	"log"
	"strings"
)

const (
	// N is the degree bound of the quotient ring.
	N = 256
	// Q is the ring modulus 2^23 - 2^13 + 1.
	Q = 8380417
)

// Poly is an element of Z_q[X]/(X^N + 1). The coefficient array always
// holds canonical representatives in [0, Q).
type Poly struct {
	Coeffs [N]uint32
}

// NewPoly builds a polynomial from arbitrary integer coefficients. Input
// longer than N is truncated, shorter input is zero-padded, and every
// coefficient is reduced modulo Q. Oversized inputs are legal: they only
// trigger a diagnostic before being reduced like any other value.
func NewPoly(coeffs []int64) *Poly {
	p := &Poly{}
	n := len(coeffs)
	if n > N {
		n = N
	}
	var maxAbs int64
	for i := 0; i < n; i++ {
		c := coeffs[i]
		if a := abs64(c); a > maxAbs {
			maxAbs = a
		}
		c %= Q
		if c < 0 {
			c += Q
		}
		p.Coeffs[i] = uint32(c)
	}
	if maxAbs > Q {
		log.Printf("ringq: large coefficient detected: %d > %d, reducing modulo Q", maxAbs, int64(Q))
	}
	return p
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Add returns a + b with every coefficient reduced into [0, Q).
func Add(a, b *Poly) *Poly {
	out := &Poly{}
	for i := 0; i < N; i++ {
		s := a.Coeffs[i] + b.Coeffs[i]
		if s >= Q {
			s -= Q
		}
		out.Coeffs[i] = s
	}
	return out
}

// Sub returns a - b with every coefficient reduced into [0, Q).
func Sub(a, b *Poly) *Poly {
	out := &Poly{}
	for i := 0; i < N; i++ {
		d := a.Coeffs[i] + Q - b.Coeffs[i]
		if d >= Q {
			d -= Q
		}
		out.Coeffs[i] = d
	}
	return out
}

// ScalarMul returns k*a elementwise modulo Q. k may be any integer.
func ScalarMul(a *Poly, k int64) *Poly {
	k %= Q
	if k < 0 {
		k += Q
	}
	ku := uint64(k)
	out := &Poly{}
	for i := 0; i < N; i++ {
		out.Coeffs[i] = uint32(uint64(a.Coeffs[i]) * ku % Q)
	}
	return out
}

// Mul returns a*b in the ring using the quadratic schoolbook convolution.
// X^N wraps to -1, so the partial product a_i*b_j lands on position
// (i+j) mod N with a sign flip whenever i+j >= N. The accumulator is
// reduced incrementally, keeping every intermediate below 2Q.
func Mul(a, b *Poly) *Poly {
	var acc [N]uint64
	for i := 0; i < N; i++ {
		ai := uint64(a.Coeffs[i])
		if ai == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			bj := uint64(b.Coeffs[j])
			if bj == 0 {
				continue
			}
			t := ai * bj % Q
			k := i + j
			if k < N {
				acc[k] += t
			} else {
				k -= N
				acc[k] += Q - t
			}
			if acc[k] >= Q {
				acc[k] -= Q
			}
		}
	}
	out := &Poly{}
	for i := 0; i < N; i++ {
		out.Coeffs[i] = uint32(acc[i])
	}
	return out
}

// Equal reports whether a and b agree coefficient by coefficient.
func (p *Poly) Equal(other *Poly) bool {
	if other == nil {
		return p == nil
	}
	return p.Coeffs == other.Coeffs
}

// Copy returns an independent copy of p.
func (p *Poly) Copy() *Poly {
	out := &Poly{}
	out.Coeffs = p.Coeffs
	return out
}

// String renders only the nonzero terms, lowest degree first.
func (p *Poly) String() string {
	var terms []string
	for i, c := range p.Coeffs {
		if c == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%d", c))
		case 1:
			terms = append(terms, fmt.Sprintf("%dx", c))
		default:
			terms = append(terms, fmt.Sprintf("%dx^%d", c, i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
