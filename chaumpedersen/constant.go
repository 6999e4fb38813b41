package chaumpedersen

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/elgamal"
	"github.com/privacybydesign/egcrypto/group"
	"github.com/privacybydesign/egcrypto/internal/common"
)

// ConstantKind tells which secret the prover of a ConstantProof knew.
type ConstantKind int

const (
	// KnownNonce proofs are made by the encrypting party.
	KnownNonce ConstantKind = iota
	// KnownSecretKey proofs are made by the holder of the decryption key.
	KnownSecretKey
)

func (k ConstantKind) String() string {
	switch k {
	case KnownNonce:
		return "KnownNonce"
	case KnownSecretKey:
		return "KnownSecretKey"
	default:
		return fmt.Sprintf("ConstantKind(%d)", int(k))
	}
}

// ConstantProof proves that a ciphertext encrypts Constant.
type ConstantProof struct {
	Kind     ConstantKind
	Proof    *GenericProof
	Constant int
}

// ProveConstantKnownNonce proves that ciphertext, made with nonce r under
// publicKey K, encrypts constant: pad = G^r and data/G^constant = K^r.
func ProveConstantKnownNonce(ciphertext *elgamal.Ciphertext, constant int, nonce *group.ElementModQ,
	publicKey *group.ElementModP, seed, header *group.ElementModQ) *ConstantProof {
	if constant < 0 {
		panic(fmt.Sprintf("cannot prove negative constant %d", constant))
	}
	ctx := publicKey.Context()
	proof := ProveGeneric(ctx.G(), publicKey, nonce, seed, header, ciphertext.Pad, ciphertext.Data)
	return &ConstantProof{Kind: KnownNonce, Proof: proof, Constant: constant}
}

// ProveConstantKnownSecretKey proves that ciphertext encrypts constant under
// the public key of keypair: K = G^s and data/G^constant = pad^s.
func ProveConstantKnownSecretKey(ciphertext *elgamal.Ciphertext, constant int, keypair *elgamal.KeyPair,
	seed, header *group.ElementModQ) *ConstantProof {
	if constant < 0 {
		panic(fmt.Sprintf("cannot prove negative constant %d", constant))
	}
	ctx := keypair.Context()
	proof := ProveGeneric(ctx.G(), ciphertext.Pad, keypair.SecretKey, seed, header, ciphertext.Pad, ciphertext.Data)
	return &ConstantProof{Kind: KnownSecretKey, Proof: proof, Constant: constant}
}

// Validate checks the proof for ciphertext under publicKey. If
// expectedConstant is set, the proven constant must also equal it.
func (p *ConstantProof) Validate(ciphertext *elgamal.Ciphertext, publicKey *group.ElementModP,
	header *group.ElementModQ, expectedConstant *int) error {
	ctx := publicKey.Context()
	if p == nil || ctx == nil || ciphertext == nil || !ctx.CompatibleWith(ciphertext.Pad, ciphertext.Data) {
		return errors.New("invalid constant Chaum-Pedersen proof: incomplete or from an incompatible group")
	}

	var checks common.Checks
	if checks.Require(p.Constant >= 0, "negative constant") {
		plain := ciphertext.Data.Div(ctx.GPowInt(p.Constant))
		switch p.Kind {
		case KnownNonce:
			checks.Merge("proof", p.Proof.Validate(ctx.G(), ciphertext.Pad, publicKey, plain, header, true,
				ciphertext.Pad, ciphertext.Data))
		case KnownSecretKey:
			checks.Merge("proof", p.Proof.Validate(ctx.G(), publicKey, ciphertext.Pad, plain, header, true,
				ciphertext.Pad, ciphertext.Data))
		default:
			checks.Require(false, fmt.Sprintf("unknown proof kind %v", p.Kind))
		}
	}
	if expectedConstant != nil {
		checks.Require(p.Constant == *expectedConstant,
			fmt.Sprintf("constant %d differs from expected %d", p.Constant, *expectedConstant))
	}
	return checks.Err("invalid constant Chaum-Pedersen proof")
}

// IsValid is Validate reporting a bool; failures are logged.
func (p *ConstantProof) IsValid(ciphertext *elgamal.Ciphertext, publicKey *group.ElementModP,
	header *group.ElementModQ, expectedConstant *int) bool {
	if err := p.Validate(ciphertext, publicKey, header, expectedConstant); err != nil {
		Logger.Warn(err)
		return false
	}
	return true
}
