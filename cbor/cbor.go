// Package cbor encodes the records of ciphertexts and proofs, wrapping
// github.com/fxamacker/cbor with fixed options:
//
//  1. Encoding follows Core Deterministic Encoding (RFC 8949 section 4.2), so
//     equal records always encode to equal bytes and may be hashed or signed.
//  2. Decoding rejects duplicate map keys, indefinite lengths, tags and
//     fields that the target record does not know.
//
// Group elements travel as their fixed-length big-endian byte strings.
package cbor

import (
	"github.com/fxamacker/cbor/v2" // imports as cbor
)

// Records hold at most a handful of fields; batches are bounded by this.
const MaxArrayElements = 1024 * 64

const MaxMapPairs = 64

var (
	encOptions = cbor.EncOptions{
		IndefLength: cbor.IndefLengthForbidden,
		Sort:        cbor.SortCoreDeterministic,
		TagsMd:      cbor.TagsForbidden,
	}

	decOptions = cbor.DecOptions{
		IndefLength:      cbor.IndefLengthForbidden,
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxArrayElements,
		MaxMapPairs:      MaxMapPairs,
		TagsMd:           cbor.TagsForbidden,

		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Marshal encodes src deterministically.
func Marshal(src interface{}) ([]byte, error) {
	return encMode.Marshal(src)
}

// Unmarshal decodes data into dst, rejecting unknown fields.
func Unmarshal(data []byte, dst interface{}) error {
	return decMode.Unmarshal(data, dst)
}
