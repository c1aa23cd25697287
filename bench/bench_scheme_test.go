package bench

import (
	"testing"

	"Dilithium-Signature/dilithium"
)

func BenchmarkKeyGen(b *testing.B) {
	s, err := dilithium.New(2)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.KeyGen(); err != nil {
			b.Fatalf("KeyGen: %v", err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	s, err := dilithium.New(2)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	if _, _, err := s.KeyGen(); err != nil {
		b.Fatalf("KeyGen: %v", err)
	}
	msg := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sign(msg, dilithium.DefaultMaxAttempts); err != nil {
			b.Fatalf("Sign: %v", err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	s, err := dilithium.New(2)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	pub, _, err := s.KeyGen()
	if err != nil {
		b.Fatalf("KeyGen: %v", err)
	}
	msg := []byte("benchmark message")
	sig, err := s.Sign(msg, dilithium.DefaultMaxAttempts)
	if err != nil {
		b.Fatalf("Sign: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !s.Verify(msg, sig, pub) {
			b.Fatalf("signature rejected")
		}
	}
}
