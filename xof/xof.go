// Package xof is the deterministic expansion engine of the signature
// scheme: SHAKE128 streams, domain separated by a single trailing (or, for
// message hashing, leading) byte, turned into matrices, digests and
// challenge polynomials. Every derivation is a pure function of its
// inputs; the Hasher only adds memoization on top.
package xof

import (
	"encoding/binary"

	"Dilithium-Signature/ringq"

	"golang.org/x/crypto/sha3"
)

// Domain separators for the expansion streams.
const (
	DomainMatrix    byte = 0x01
	DomainChallenge byte = 0x02
	DomainSmall     byte = 0x03
	DomainMessage   byte = 0x04
	DomainMask      byte = 0x05
)

const (
	// Tau is the number of nonzero (+-1) coefficients in a challenge.
	Tau = 60
	// SeedSize is the byte length of expansion seeds and message digests.
	SeedSize = 32
	// chunkSize is the number of stream bytes consumed per coefficient.
	chunkSize = 4
	// seedCacheLimit caps the seed-expansion memo. Samplers feed it fresh
	// random seeds, so stale entries are never requested again.
	seedCacheLimit = 32
)

type seedKey struct {
	seed   string
	domain byte
	length int
}

type matrixKey struct {
	rho  string
	k, l int
}

// Hasher owns the expansion streams and their memo caches. It is not safe
// for concurrent use; callers sharing one Hasher across goroutines must
// serialize access themselves.
type Hasher struct {
	seeds    map[seedKey][]byte
	matrices map[matrixKey][][]*ringq.Poly
}

// NewHasher returns a Hasher with empty caches.
func NewHasher() *Hasher {
	return &Hasher{
		seeds:    make(map[seedKey][]byte),
		matrices: make(map[matrixKey][][]*ringq.Poly),
	}
}

// ExpandSeed returns length bytes of SHAKE128(seed || domain). Identical
// arguments give byte-identical output; results are memoized per exact
// argument tuple.
func (h *Hasher) ExpandSeed(seed []byte, domain byte, length int) []byte {
	key := seedKey{seed: string(seed), domain: domain, length: length}
	if out, ok := h.seeds[key]; ok {
		return out
	}
	shake := sha3.NewShake128()
	shake.Write(seed)
	shake.Write([]byte{domain})
	out := make([]byte, length)
	shake.Read(out)
	if len(h.seeds) >= seedCacheLimit {
		for k := range h.seeds {
			delete(h.seeds, k)
			break
		}
	}
	h.seeds[key] = out
	return out
}

// Matrix derives the public k x l matrix from rho under the matrix domain.
// Every 4 stream bytes form a little-endian word reduced modulo Q; entries
// fill in row-major order (k, then l, then coefficient index). The result
// is memoized per (rho, k, l) since key generation, signing and
// verification all re-derive the same matrix.
func (h *Hasher) Matrix(rho []byte, k, l int) [][]*ringq.Poly {
	key := matrixKey{rho: string(rho), k: k, l: l}
	if m, ok := h.matrices[key]; ok {
		return m
	}
	shake := sha3.NewShake128()
	shake.Write(rho)
	shake.Write([]byte{DomainMatrix})
	buf := make([]byte, k*l*ringq.N*chunkSize)
	shake.Read(buf)

	m := make([][]*ringq.Poly, k)
	off := 0
	for i := 0; i < k; i++ {
		m[i] = make([]*ringq.Poly, l)
		for j := 0; j < l; j++ {
			p := &ringq.Poly{}
			for n := 0; n < ringq.N; n++ {
				w := binary.LittleEndian.Uint32(buf[off:])
				off += chunkSize
				p.Coeffs[n] = uint32(uint64(w) % ringq.Q)
			}
			m[i][j] = p
		}
	}
	h.matrices[key] = m
	return m
}

// HashMessage absorbs the message under the message domain and squeezes a
// fixed 32-byte digest. The domain byte leads the stream here, unlike
// ExpandSeed where it trails the seed.
func (h *Hasher) HashMessage(message []byte) []byte {
	shake := sha3.NewShake128()
	shake.Write([]byte{DomainMessage})
	shake.Write(message)
	out := make([]byte, SeedSize)
	shake.Read(out)
	return out
}

// Challenge derives the sparse ternary challenge binding the message, the
// public seed rho and the commitment vector w. The stream absorbs the
// message digest, rho, every w coefficient as a 4-byte little-endian word
// and finally the challenge domain byte, then emits 2*Tau bytes. Byte
// pairs are little-endian candidate positions modulo N; the first
// occurrence of each position is accepted with sign +1 when the pair's
// first byte has its high bit set, -1 otherwise. If the stream runs out
// before Tau distinct positions are found the challenge simply carries
// fewer nonzero coefficients; no retry or padding happens, which keeps the
// derivation byte-reproducible at the cost of a weaker unlinkability
// margin in that (overwhelmingly unlikely) case.
func (h *Hasher) Challenge(message, rho []byte, w []*ringq.Poly) *ringq.Poly {
	mu := h.HashMessage(message)

	shake := sha3.NewShake128()
	shake.Write(mu)
	shake.Write(rho)
	var word [chunkSize]byte
	for _, p := range w {
		for _, c := range p.Coeffs {
			binary.LittleEndian.PutUint32(word[:], c)
			shake.Write(word[:])
		}
	}
	shake.Write([]byte{DomainChallenge})

	stream := make([]byte, 2*Tau)
	shake.Read(stream)

	c := &ringq.Poly{}
	used := make(map[int]struct{}, Tau)
	for i := 0; i+1 < len(stream) && len(used) < Tau; i += 2 {
		pos := int(binary.LittleEndian.Uint16(stream[i:])) % ringq.N
		if _, seen := used[pos]; seen {
			continue
		}
		used[pos] = struct{}{}
		if stream[i]&0x80 != 0 {
			c.Coeffs[pos] = 1
		} else {
			c.Coeffs[pos] = ringq.Q - 1
		}
	}
	return c
}
