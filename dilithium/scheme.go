package dilithium

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"Dilithium-Signature/measure"
	"Dilithium-Signature/prof"
	"Dilithium-Signature/ringq"
	"Dilithium-Signature/xof"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// DefaultMaxAttempts is the rejection-loop budget callers normally pass
// to Sign.
const DefaultMaxAttempts = 100

// PublicKey is the pair (rho, t) with t = A*s1 + s2 for the matrix A
// derived from rho.
type PublicKey struct {
	Rho []byte
	T   []*ringq.Poly
}

// PrivateKey is the pair (s1, s2) of short secret vectors; every
// coefficient was sampled from [-eta, eta] before canonical reduction.
type PrivateKey struct {
	S1 []*ringq.Poly
	S2 []*ringq.Poly
}

// Signature is the raw (z, c, w) bundle. w is the uncompressed commitment
// vector; no rounding is applied before it is stored or hashed.
type Signature struct {
	Z []*ringq.Poly
	C *ringq.Poly
	W []*ringq.Poly
}

// Scheme holds one parameter set, the expansion engine and at most one
// active key pair. KeyGen replaces the key pair in place; Sign requires
// one. A Scheme is not safe for concurrent use: the key fields and the
// Hasher caches are shared without locking.
type Scheme struct {
	params Params
	hasher *xof.Hasher
	prng   utils.PRNG

	rho []byte
	t   []*ringq.Poly
	s1  []*ringq.Poly
	s2  []*ringq.Poly
}

// New constructs a Scheme for security level 2, 3 or 5.
func New(level int) (*Scheme, error) {
	params, err := ParamsForLevel(level)
	if err != nil {
		return nil, err
	}
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("dilithium: prng: %w", err)
	}
	return &Scheme{params: params, hasher: xof.NewHasher(), prng: prng}, nil
}

// Params returns the parameter set in use.
func (s *Scheme) Params() Params { return s.params }

// freshSeed draws a new 32-byte seed from the secure generator. Seeds for
// rho and the bounded samplers always come from here, never from the
// deterministic expansion streams.
func (s *Scheme) freshSeed() ([]byte, error) {
	seed := make([]byte, xof.SeedSize)
	if _, err := io.ReadFull(s.prng, seed); err != nil {
		return nil, fmt.Errorf("dilithium: sample seed: %w", err)
	}
	return seed, nil
}

// sampleBoundedVector draws size polynomials with coefficients in
// [-bound, bound]: a fresh random seed is expanded under domain and every
// 4-byte little-endian word is reduced modulo 2*bound+1 then recentered.
// The reduction is modulo-biased whenever 2*bound+1 does not divide 2^32;
// the bias is part of the scheme's observable behaviour and stays.
func (s *Scheme) sampleBoundedVector(size int, bound uint32, domain byte) ([]*ringq.Poly, error) {
	seed, err := s.freshSeed()
	if err != nil {
		return nil, err
	}
	stream := s.hasher.ExpandSeed(seed, domain, size*ringq.N*4)
	span := 2*uint64(bound) + 1
	vec := make([]*ringq.Poly, size)
	off := 0
	for i := range vec {
		p := &ringq.Poly{}
		for n := 0; n < ringq.N; n++ {
			w := binary.LittleEndian.Uint32(stream[off:])
			off += 4
			// With bound = gamma1 = Q the recentered value can reach Q
			// itself, so reduce again before storing canonically.
			c := int64(uint64(w)%span) - int64(bound)
			c %= ringq.Q
			if c < 0 {
				c += ringq.Q
			}
			p.Coeffs[n] = uint32(c)
		}
		vec[i] = p
	}
	return vec, nil
}

// mulPoly routes through the NTT fast path and falls back to the
// schoolbook convolution; both yield the same ring product.
func mulPoly(a, b *ringq.Poly) *ringq.Poly {
	if p, err := ringq.MulNTT(a, b); err == nil {
		return p
	}
	return ringq.Mul(a, b)
}

// matVecMul computes the matrix-vector product A*v over the ring.
func matVecMul(a [][]*ringq.Poly, v []*ringq.Poly) []*ringq.Poly {
	out := make([]*ringq.Poly, len(a))
	for i, row := range a {
		sum := &ringq.Poly{}
		for j, e := range row {
			sum = ringq.Add(sum, mulPoly(e, v[j]))
		}
		out[i] = sum
	}
	return out
}

// KeyGen samples a fresh key pair, installs it as the active one and
// returns both halves. Any previous key pair is forgotten.
func (s *Scheme) KeyGen() (*PublicKey, *PrivateKey, error) {
	defer prof.Track(time.Now(), "KeyGen")

	rho, err := s.freshSeed()
	if err != nil {
		return nil, nil, err
	}
	a := s.hasher.Matrix(rho, s.params.K, s.params.L)
	s1, err := s.sampleBoundedVector(s.params.L, s.params.Eta, xof.DomainSmall)
	if err != nil {
		return nil, nil, err
	}
	s2, err := s.sampleBoundedVector(s.params.K, s.params.Eta, xof.DomainSmall)
	if err != nil {
		return nil, nil, err
	}

	t := matVecMul(a, s1)
	for i := range t {
		t[i] = ringq.Add(t[i], s2[i])
	}

	s.rho, s.t, s.s1, s.s2 = rho, t, s1, s2
	measure.Global.Add("dilithium/keygen/public_coeffs", int64(len(t))*ringq.N)
	measure.Global.Add("dilithium/keygen/secret_coeffs", int64(len(s1)+len(s2))*ringq.N)
	return &PublicKey{Rho: rho, T: t}, &PrivateKey{S1: s1, S2: s2}, nil
}
