package dilithium

import (
	"math/rand"
	"testing"

	"Dilithium-Signature/ringq"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s, pub, _ := newKeyedScheme(t)
	msg := []byte("round trip message")
	sig, err := s.Sign(msg, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	p := s.Params()
	if len(sig.Z) != p.L || len(sig.W) != p.K || sig.C == nil {
		t.Fatalf("signature shapes off: |z|=%d |w|=%d", len(sig.Z), len(sig.W))
	}
	if !s.Verify(msg, sig, pub) {
		t.Fatalf("fresh signature rejected")
	}
	// Verification is repeatable; nothing in it mutates the signature.
	if !s.Verify(msg, sig, pub) {
		t.Fatalf("second verification rejected")
	}
}

// Signing "Hello, Dilithium!" and then flipping any single bit of the
// message must fail verification against the original signature.
func TestSingleBitFlipRejected(t *testing.T) {
	s, pub, _ := newKeyedScheme(t)
	msg := []byte("Hello, Dilithium!")
	sig, err := s.Sign(msg, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !s.Verify(msg, sig, pub) {
		t.Fatalf("original message rejected")
	}
	for i := range msg {
		for bit := 0; bit < 8; bit++ {
			tampered := append([]byte(nil), msg...)
			tampered[i] ^= 1 << bit
			if s.Verify(tampered, sig, pub) {
				t.Fatalf("accepted message with byte %d bit %d flipped", i, bit)
			}
		}
	}
}

func TestWrongPublicKeyRejected(t *testing.T) {
	s, _, _ := newKeyedScheme(t)
	msg := []byte("bound to one key pair")
	sig, err := s.Sign(msg, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	_, otherPub, _ := newKeyedScheme(t)
	if s.Verify(msg, sig, otherPub) {
		t.Fatalf("accepted under an unrelated public key")
	}
}

func TestOutOfBoundsResponseRejected(t *testing.T) {
	s, pub, _ := newKeyedScheme(t)
	msg := []byte("bound window probe")
	sig, err := s.Sign(msg, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	bad := &Signature{Z: clonePolys(sig.Z), C: sig.C.Copy(), W: sig.W}
	// gamma1 - beta = Q - 1 is the first rejected magnitude.
	bad.Z[0].Coeffs[0] = ringq.Q - 1
	if s.Verify(msg, bad, pub) {
		t.Fatalf("accepted response coefficient at the bound")
	}
}

func TestTamperedCommitmentRejected(t *testing.T) {
	s, pub, _ := newKeyedScheme(t)
	msg := []byte("commitment binding probe")
	sig, err := s.Sign(msg, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	bad := &Signature{Z: sig.Z, C: sig.C, W: clonePolys(sig.W)}
	bad.W[0].Coeffs[0] ^= 1
	if s.Verify(msg, bad, pub) {
		t.Fatalf("accepted a tampered commitment")
	}
}

func TestForgedSignatureRejected(t *testing.T) {
	s, pub, _ := newKeyedScheme(t)
	p := s.Params()
	rng := rand.New(rand.NewSource(11))
	forged := &Signature{
		Z: make([]*ringq.Poly, p.L),
		C: &ringq.Poly{},
		W: make([]*ringq.Poly, p.K),
	}
	for i := range forged.Z {
		forged.Z[i] = boundedRandPoly(rng, ringq.Q-2)
	}
	for i := range forged.W {
		forged.W[i] = boundedRandPoly(rng, ringq.Q-2)
	}
	for i := 0; i < 60; i++ {
		pos := rng.Intn(ringq.N)
		if rng.Intn(2) == 0 {
			forged.C.Coeffs[pos] = 1
		} else {
			forged.C.Coeffs[pos] = ringq.Q - 1
		}
	}
	if s.Verify([]byte("forged"), forged, pub) {
		t.Fatalf("accepted an independently sampled signature")
	}
}

func TestVerifyMalformedInputs(t *testing.T) {
	s, pub, _ := newKeyedScheme(t)
	msg := []byte("malformed input probe")
	sig, err := s.Sign(msg, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if s.Verify(msg, nil, pub) {
		t.Fatalf("accepted a nil signature")
	}
	if s.Verify(msg, sig, nil) {
		t.Fatalf("accepted a nil public key")
	}
	if s.Verify(msg, &Signature{Z: sig.Z, W: sig.W}, pub) {
		t.Fatalf("accepted a signature without a challenge")
	}
}

func clonePolys(v []*ringq.Poly) []*ringq.Poly {
	out := make([]*ringq.Poly, len(v))
	for i, p := range v {
		out[i] = p.Copy()
	}
	return out
}

func boundedRandPoly(rng *rand.Rand, max int64) *ringq.Poly {
	p := &ringq.Poly{}
	for i := range p.Coeffs {
		p.Coeffs[i] = uint32(rng.Int63n(max))
	}
	return p
}
