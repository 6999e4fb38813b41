package chaumpedersen

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/elgamal"
	"github.com/privacybydesign/egcrypto/group"
	"github.com/privacybydesign/egcrypto/internal/common"
)

// DisjunctiveProof proves that a ciphertext encrypts 0 or 1 without
// revealing which. Proof0 shows the ciphertext is an encryption of 0 and
// Proof1 that it is one of 1; one of them is simulated, and their challenges
// add up to C, the hash over both branches.
type DisjunctiveProof struct {
	Proof0 *GenericProof
	Proof1 *GenericProof
	C      *group.ElementModQ
}

// ProveDisjunctive proves that ciphertext, made with nonce under publicKey,
// encrypts plaintext, which must be 0 or 1.
func ProveDisjunctive(ciphertext *elgamal.Ciphertext, plaintext int, nonce *group.ElementModQ,
	publicKey *group.ElementModP, seed, header *group.ElementModQ) *DisjunctiveProof {
	ctx := publicKey.Context()
	nonces := group.NewNonces(seed, disjunctiveTag)
	u, v, w := nonces.Get(0), nonces.Get(1), nonces.Get(2)
	alpha, beta := ciphertext.Pad, ciphertext.Data

	switch plaintext {
	case 0:
		a0, b0 := ctx.GPowP(u), publicKey.Pow(u)
		c1 := w
		v1 := v.Add(c1.Mul(nonce))
		fake := proveFromResponse(ctx.G(), alpha, publicKey, beta.Div(ctx.G()), c1, v1)
		c := ctx.HashElements(header, alpha, beta, a0, b0, fake.A, fake.B)
		c0 := c.Sub(c1)
		proven := &GenericProof{A: a0, B: b0, C: c0, R: u.Add(c0.Mul(nonce))}
		return &DisjunctiveProof{Proof0: proven, Proof1: fake, C: c}
	case 1:
		c0 := w.Neg()
		v0 := v.Add(c0.Mul(nonce))
		fake := proveFromResponse(ctx.G(), alpha, publicKey, beta, c0, v0)
		a1, b1 := ctx.GPowP(u), publicKey.Pow(u)
		c := ctx.HashElements(header, alpha, beta, fake.A, fake.B, a1, b1)
		c1 := c.Sub(c0)
		proven := &GenericProof{A: a1, B: b1, C: c1, R: u.Add(c1.Mul(nonce))}
		return &DisjunctiveProof{Proof0: fake, Proof1: proven, C: c}
	default:
		panic(fmt.Sprintf("disjunctive proofs only support plaintexts 0 and 1, got %d", plaintext))
	}
}

// Validate checks the proof for ciphertext under publicKey and reports every
// failed check. The failures do not reveal which branch was simulated.
func (p *DisjunctiveProof) Validate(ciphertext *elgamal.Ciphertext, publicKey *group.ElementModP,
	header *group.ElementModQ) error {
	ctx := publicKey.Context()
	if p == nil || ctx == nil || ciphertext == nil || p.Proof0 == nil || p.Proof1 == nil ||
		!ctx.CompatibleWith(ciphertext.Pad, ciphertext.Data, header, p.C) ||
		!ctx.CompatibleWith(p.Proof0.elements()...) || !ctx.CompatibleWith(p.Proof1.elements()...) {
		return errors.New("invalid disjunctive Chaum-Pedersen proof: incomplete or from an incompatible group")
	}
	alpha, beta := ciphertext.Pad, ciphertext.Data

	var checks common.Checks
	checks.Require(p.Proof0.C.Add(p.Proof1.C).Equal(p.C), "branch challenges do not add up to the challenge")
	checks.Require(ctx.HashElements(header, alpha, beta, p.Proof0.A, p.Proof0.B, p.Proof1.A, p.Proof1.B).Equal(p.C),
		"challenge does not match hash of commitments")
	checks.Merge("zero branch", p.Proof0.Validate(ctx.G(), alpha, publicKey, beta, header, false))
	checks.Merge("one branch", p.Proof1.Validate(ctx.G(), alpha, publicKey, beta.Div(ctx.G()), header, false))
	return checks.Err("invalid disjunctive Chaum-Pedersen proof")
}

// IsValid is Validate reporting a bool; failures are logged.
func (p *DisjunctiveProof) IsValid(ciphertext *elgamal.Ciphertext, publicKey *group.ElementModP,
	header *group.ElementModQ) bool {
	if err := p.Validate(ciphertext, publicKey, header); err != nil {
		Logger.Warn(err)
		return false
	}
	return true
}
