// Package egcrypto is the cryptographic core of an end-to-end verifiable
// election system. Votes are encrypted with exponential ElGamal so that they
// can be tallied homomorphically, and every encrypted vote carries a
// zero-knowledge proof that it encrypts 0 or 1.
//
// The building blocks live in subpackages: group (the prime-order group,
// hashing and accelerated exponentiation), elgamal, schnorr and
// chaumpedersen. This package ties them together for encrypting and
// verifying selections under a joint election key; see election_test.go for
// how to use it.
package egcrypto
