package dilithium

import "errors"

var (
	// ErrUnsupportedLevel reports a security level outside {2, 3, 5}.
	// The configuration is rejected outright; there is nothing to retry.
	ErrUnsupportedLevel = errors.New("dilithium: unsupported security level")

	// ErrNoKeyPair reports a Sign call on a Scheme that has not run KeyGen.
	ErrNoKeyPair = errors.New("dilithium: no key pair generated")

	// ErrMaxAttempts reports an exhausted rejection-sampling loop. The
	// condition is transient: a fresh Sign call draws new randomness and
	// may succeed with the same key pair.
	ErrMaxAttempts = errors.New("dilithium: signing rejected after max attempts")
)
