// Package ringq implements arithmetic in the quotient ring
// Z_q[X]/(X^N + 1) with N = 256 and q = 8380417, the coefficient ring
// underlying the Dilithium-style signature scheme in this module.
//
// Coefficients are stored canonically in [0, Q) after every operation.
// The schoolbook negacyclic convolution is the reference multiplication;
// an NTT-accelerated path through Lattigo produces identical results
// because Q is congruent to 1 modulo 2N. None of the arithmetic here is
// constant time and it is not meant to resist timing side channels.
package ringq
