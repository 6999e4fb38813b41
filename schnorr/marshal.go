package schnorr

import (
	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/cbor"
	"github.com/privacybydesign/egcrypto/group"
)

type proofRecord struct {
	PublicKey  []byte `cbor:"publicKey"`
	Commitment []byte `cbor:"commitment"`
	Challenge  []byte `cbor:"challenge"`
	Response   []byte `cbor:"response"`
}

func (p *Proof) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(proofRecord{
		PublicKey:  p.PublicKey.Bytes(),
		Commitment: p.Commitment.Bytes(),
		Challenge:  p.Challenge.Bytes(),
		Response:   p.Response.Bytes(),
	})
}

// UnmarshalProof decodes a proof record for ctx.
func UnmarshalProof(ctx *group.Context, data []byte) (*Proof, error) {
	var rec proofRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapPrefix(err, "Schnorr proof record", 0)
	}
	var (
		p   Proof
		err error
	)
	if p.PublicKey, err = ctx.BinaryToElementModP(rec.PublicKey); err != nil {
		return nil, errors.WrapPrefix(err, "Schnorr proof public key", 0)
	}
	if p.Commitment, err = ctx.BinaryToElementModP(rec.Commitment); err != nil {
		return nil, errors.WrapPrefix(err, "Schnorr proof commitment", 0)
	}
	if p.Challenge, err = ctx.BinaryToElementModQ(rec.Challenge); err != nil {
		return nil, errors.WrapPrefix(err, "Schnorr proof challenge", 0)
	}
	if p.Response, err = ctx.BinaryToElementModQ(rec.Response); err != nil {
		return nil, errors.WrapPrefix(err, "Schnorr proof response", 0)
	}
	return &p, nil
}
