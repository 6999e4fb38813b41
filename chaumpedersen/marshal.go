package chaumpedersen

import (
	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/cbor"
	"github.com/privacybydesign/egcrypto/group"
)

type genericRecord struct {
	A []byte `cbor:"a"`
	B []byte `cbor:"b"`
	C []byte `cbor:"c"`
	R []byte `cbor:"r"`
}

type constantRecord struct {
	Kind     int           `cbor:"kind"`
	Proof    genericRecord `cbor:"proof"`
	Constant int           `cbor:"constant"`
}

type disjunctiveRecord struct {
	Proof0 genericRecord `cbor:"proof0"`
	Proof1 genericRecord `cbor:"proof1"`
	C      []byte        `cbor:"c"`
}

func (p *GenericProof) record() genericRecord {
	return genericRecord{A: p.A.Bytes(), B: p.B.Bytes(), C: p.C.Bytes(), R: p.R.Bytes()}
}

func (rec *genericRecord) proof(ctx *group.Context) (*GenericProof, error) {
	var (
		p   GenericProof
		err error
	)
	if p.A, err = ctx.BinaryToElementModP(rec.A); err != nil {
		return nil, errors.WrapPrefix(err, "commitment A", 0)
	}
	if p.B, err = ctx.BinaryToElementModP(rec.B); err != nil {
		return nil, errors.WrapPrefix(err, "commitment B", 0)
	}
	if p.C, err = ctx.BinaryToElementModQ(rec.C); err != nil {
		return nil, errors.WrapPrefix(err, "challenge", 0)
	}
	if p.R, err = ctx.BinaryToElementModQ(rec.R); err != nil {
		return nil, errors.WrapPrefix(err, "response", 0)
	}
	return &p, nil
}

func (p *GenericProof) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.record())
}

func UnmarshalGenericProof(ctx *group.Context, data []byte) (*GenericProof, error) {
	var rec genericRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapPrefix(err, "Chaum-Pedersen proof record", 0)
	}
	return rec.proof(ctx)
}

func (p *ConstantProof) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(constantRecord{Kind: int(p.Kind), Proof: p.Proof.record(), Constant: p.Constant})
}

// UnmarshalConstantProof decodes a constant proof record; unknown kinds are
// rejected.
func UnmarshalConstantProof(ctx *group.Context, data []byte) (*ConstantProof, error) {
	var rec constantRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapPrefix(err, "constant proof record", 0)
	}
	kind := ConstantKind(rec.Kind)
	if kind != KnownNonce && kind != KnownSecretKey {
		return nil, errors.Errorf("constant proof record: unknown kind %d", rec.Kind)
	}
	proof, err := rec.Proof.proof(ctx)
	if err != nil {
		return nil, errors.WrapPrefix(err, "constant proof", 0)
	}
	return &ConstantProof{Kind: kind, Proof: proof, Constant: rec.Constant}, nil
}

func (p *DisjunctiveProof) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(disjunctiveRecord{
		Proof0: p.Proof0.record(),
		Proof1: p.Proof1.record(),
		C:      p.C.Bytes(),
	})
}

func UnmarshalDisjunctiveProof(ctx *group.Context, data []byte) (*DisjunctiveProof, error) {
	var rec disjunctiveRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapPrefix(err, "disjunctive proof record", 0)
	}
	proof0, err := rec.Proof0.proof(ctx)
	if err != nil {
		return nil, errors.WrapPrefix(err, "zero branch", 0)
	}
	proof1, err := rec.Proof1.proof(ctx)
	if err != nil {
		return nil, errors.WrapPrefix(err, "one branch", 0)
	}
	c, err := ctx.BinaryToElementModQ(rec.C)
	if err != nil {
		return nil, errors.WrapPrefix(err, "disjunctive proof challenge", 0)
	}
	return &DisjunctiveProof{Proof0: proof0, Proof1: proof1, C: c}, nil
}
