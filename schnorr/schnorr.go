// Package schnorr implements the non-interactive Schnorr proof that the
// holder of an ElGamal public key K = G^s knows s.
package schnorr

import (
	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/elgamal"
	"github.com/privacybydesign/egcrypto/group"
	"github.com/privacybydesign/egcrypto/internal/common"
)

// Proof consists of the commitment h = G^r for a nonce r, the challenge
// c = H(K, h) and the response u = r + s*c.
type Proof struct {
	PublicKey  *group.ElementModP
	Commitment *group.ElementModP
	Challenge  *group.ElementModQ
	Response   *group.ElementModQ
}

// Prove proves knowledge of the secret key of keypair using nonce.
func Prove(keypair *elgamal.KeyPair, nonce *group.ElementModQ) *Proof {
	ctx := keypair.Context()
	h := ctx.GPowP(nonce)
	c := ctx.HashElements(keypair.PublicKey, h)
	u := nonce.Add(keypair.SecretKey.Mul(c))
	return &Proof{
		PublicKey:  keypair.PublicKey,
		Commitment: h,
		Challenge:  c,
		Response:   u,
	}
}

// Validate checks the proof against publicKey and reports every check that
// fails.
func (p *Proof) Validate(publicKey *group.ElementModP) error {
	ctx := publicKey.Context()
	if ctx == nil || !ctx.CompatibleWith(p.PublicKey, p.Commitment, p.Challenge, p.Response) {
		return errors.New("invalid Schnorr proof: incomplete or from an incompatible group")
	}

	var checks common.Checks
	checks.Require(publicKey.IsValidResidue(), "public key is not a valid residue")
	checks.Require(p.PublicKey.Equal(publicKey), "proof is for a different public key")
	checks.Require(p.Commitment.IsValidResidue(), "commitment is not a valid residue")
	checks.Require(p.Challenge.InBounds(), "challenge out of bounds")
	checks.Require(p.Response.InBounds(), "response out of bounds")
	checks.Require(ctx.HashElements(publicKey, p.Commitment).Equal(p.Challenge),
		"challenge does not match hash of public key and commitment")
	checks.Require(ctx.GPowP(p.Response).Equal(p.Commitment.Mul(publicKey.Pow(p.Challenge))),
		"G^response does not equal commitment * K^challenge")
	return checks.Err("invalid Schnorr proof")
}

// IsValid is Validate reporting a bool; failures are logged.
func (p *Proof) IsValid(publicKey *group.ElementModP) bool {
	if err := p.Validate(publicKey); err != nil {
		Logger.Warn(err)
		return false
	}
	return true
}
