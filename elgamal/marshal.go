package elgamal

import (
	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/cbor"
	"github.com/privacybydesign/egcrypto/group"
)

type ciphertextRecord struct {
	Pad  []byte `cbor:"pad"`
	Data []byte `cbor:"data"`
}

// MarshalCBOR encodes the ciphertext as a record of fixed-length elements.
func (c *Ciphertext) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(ciphertextRecord{Pad: c.Pad.Bytes(), Data: c.Data.Bytes()})
}

// UnmarshalCiphertext decodes a ciphertext record for ctx. The elements are
// range checked, but not checked for subgroup membership; use Validate.
func UnmarshalCiphertext(ctx *group.Context, data []byte) (*Ciphertext, error) {
	var rec ciphertextRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapPrefix(err, "ciphertext record", 0)
	}
	pad, err := ctx.BinaryToElementModP(rec.Pad)
	if err != nil {
		return nil, errors.WrapPrefix(err, "ciphertext pad", 0)
	}
	d, err := ctx.BinaryToElementModP(rec.Data)
	if err != nil {
		return nil, errors.WrapPrefix(err, "ciphertext data", 0)
	}
	return &Ciphertext{Pad: pad, Data: d}, nil
}
