// Package chaumpedersen implements non-interactive Chaum-Pedersen proofs of
// equality of discrete logarithms, and the proofs built from them that an
// ElGamal ciphertext encrypts a given constant or encrypts either 0 or 1.
//
// All nonces of a proof are derived from a caller-supplied seed, so proofs
// are reproducible.
package chaumpedersen

import (
	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/group"
	"github.com/privacybydesign/egcrypto/internal/common"
)

// Domain separation tags for the nonce sequences of the proofs.
const (
	genericTag     = "generic-chaum-pedersen-proof"
	disjunctiveTag = "disjoint-chaum-pedersen-proof"
)

// GenericProof proves knowledge of x with gx = g^x and hx = h^x. It
// consists of the commitments A = g^w and B = h^w, the challenge C and the
// response R = w + x*C.
type GenericProof struct {
	A, B *group.ElementModP
	C, R *group.ElementModQ
}

// ProveGeneric proves that g^x and h^x share the exponent x. The challenge
// is the hash of header, the commitments and the extra items.
func ProveGeneric(g, h *group.ElementModP, x, seed, header *group.ElementModQ, extra ...interface{}) *GenericProof {
	ctx := g.Context()
	w := group.NewNonces(seed, genericTag).Get(0)
	a := g.Pow(w)
	b := h.Pow(w)
	c := ctx.HashElements(challengeItems(header, a, b, extra)...)
	return &GenericProof{A: a, B: b, C: c, R: w.Add(x.Mul(c))}
}

// ProveGenericFake produces a proof for an arbitrary challenge c without
// knowing the exponent. It satisfies the verification equations, but not the
// challenge check.
func ProveGenericFake(g, gx, h, hx *group.ElementModP, c, seed *group.ElementModQ) *GenericProof {
	r := group.NewNonces(seed, genericTag).Get(0)
	return proveFromResponse(g, gx, h, hx, c, r)
}

// proveFromResponse solves the verification equations for the commitments
// given the challenge and response: A = g^r / gx^c and B = h^r / hx^c.
func proveFromResponse(g, gx, h, hx *group.ElementModP, c, r *group.ElementModQ) *GenericProof {
	return &GenericProof{
		A: g.Pow(r).Div(gx.Pow(c)),
		B: h.Pow(r).Div(hx.Pow(c)),
		C: c,
		R: r,
	}
}

func challengeItems(header *group.ElementModQ, a, b *group.ElementModP, extra []interface{}) []interface{} {
	items := make([]interface{}, 0, 3+len(extra))
	items = append(items, header, a, b)
	return append(items, extra...)
}

func (p *GenericProof) elements() []group.Element {
	return []group.Element{p.A, p.B, p.C, p.R}
}

// Validate checks that the proof shows gx = g^x and hx = h^x for one x,
// reporting every check that fails. With checkChallenge unset, C is taken as
// given; this is used for the branches of a disjunctive proof, whose
// challenges are bound by the enclosing proof instead.
func (p *GenericProof) Validate(g, gx, h, hx *group.ElementModP, header *group.ElementModQ, checkChallenge bool, extra ...interface{}) error {
	ctx := g.Context()
	if p == nil || ctx == nil ||
		!ctx.CompatibleWith(gx, h, hx, header) || !ctx.CompatibleWith(p.elements()...) {
		return errors.New("invalid Chaum-Pedersen proof: incomplete or from an incompatible group")
	}

	var checks common.Checks
	checks.Require(g.IsValidResidue(), "g is not a valid residue")
	checks.Require(gx.IsValidResidue(), "gx is not a valid residue")
	checks.Require(h.IsValidResidue(), "h is not a valid residue")
	checks.Require(hx.IsValidResidue(), "hx is not a valid residue")
	checks.Require(p.A.IsValidResidue(), "commitment A is not a valid residue")
	checks.Require(p.B.IsValidResidue(), "commitment B is not a valid residue")
	checks.Require(p.C.InBounds(), "challenge out of bounds")
	checks.Require(p.R.InBounds(), "response out of bounds")
	if checkChallenge {
		checks.Require(ctx.HashElements(challengeItems(header, p.A, p.B, extra)...).Equal(p.C),
			"challenge does not match hash of commitments")
	}
	checks.Require(g.Pow(p.R).Equal(p.A.Mul(gx.Pow(p.C))), "g^R does not equal A * gx^C")
	checks.Require(h.Pow(p.R).Equal(p.B.Mul(hx.Pow(p.C))), "h^R does not equal B * hx^C")
	return checks.Err("invalid Chaum-Pedersen proof")
}

// IsValid is Validate reporting a bool; failures are logged.
func (p *GenericProof) IsValid(g, gx, h, hx *group.ElementModP, header *group.ElementModQ, checkChallenge bool, extra ...interface{}) bool {
	if err := p.Validate(g, gx, h, hx, header, checkChallenge, extra...); err != nil {
		Logger.Warn(err)
		return false
	}
	return true
}
