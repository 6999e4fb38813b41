package egcrypto

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/cbor"
	"github.com/privacybydesign/egcrypto/chaumpedersen"
	"github.com/privacybydesign/egcrypto/elgamal"
	"github.com/privacybydesign/egcrypto/group"
	"github.com/privacybydesign/egcrypto/internal/common"
	"github.com/sirupsen/logrus"
)

const selectionNoncesTag = "selection-nonces"

// Election holds the public parameters under which selections are encrypted:
// the group, the joint public key of the guardians and the extended base
// hash that binds every proof to this election.
type Election struct {
	ctx              *group.Context
	jointKey         *group.ElementModP
	extendedBaseHash *group.ElementModQ
}

// EncryptedSelection is an encrypted vote for one option, with the proof
// that it encrypts 0 or 1.
type EncryptedSelection struct {
	Ciphertext *elgamal.Ciphertext
	Proof      *chaumpedersen.DisjunctiveProof
}

// NewElection checks the joint key and accelerates exponentiations with it,
// of which every encryption and proof performs several.
func NewElection(ctx *group.Context, jointKey *group.ElementModP, extendedBaseHash *group.ElementModQ) (*Election, error) {
	if !ctx.CompatibleWith(jointKey, extendedBaseHash) {
		return nil, errors.New("election parameters from an incompatible group")
	}
	if !jointKey.IsValidResidue() {
		return nil, errors.New("joint key is not a valid residue")
	}
	if !ctx.IsProductionStrength() {
		Logger.Warnf("election uses %v, which is not of production strength", ctx)
	}
	return &Election{
		ctx:              ctx,
		jointKey:         jointKey.AcceleratePow(),
		extendedBaseHash: extendedBaseHash,
	}, nil
}

func (e *Election) Context() *group.Context              { return e.ctx }
func (e *Election) JointKey() *group.ElementModP          { return e.jointKey }
func (e *Election) ExtendedBaseHash() *group.ElementModQ { return e.extendedBaseHash }

// EncryptSelection encrypts vote, which must be 0 or 1, with the given
// nonce and proves it with a proof seeded by seed.
func (e *Election) EncryptSelection(vote int, nonce, seed *group.ElementModQ) *EncryptedSelection {
	ciphertext := elgamal.Encrypt(e.jointKey, vote, nonce)
	proof := chaumpedersen.ProveDisjunctive(ciphertext, vote, nonce, e.jointKey, seed, e.extendedBaseHash)
	return &EncryptedSelection{Ciphertext: ciphertext, Proof: proof}
}

// EncryptSelections encrypts all votes in parallel. The nonce and proof seed
// of selection i are derived from masterNonce, so the result is reproducible.
// It panics if a vote is not 0 or 1.
func (e *Election) EncryptSelections(votes []int, masterNonce *group.ElementModQ) []*EncryptedSelection {
	for i, vote := range votes {
		if vote != 0 && vote != 1 {
			panic(fmt.Sprintf("selection %d has vote %d, expected 0 or 1", i, vote))
		}
	}
	nonces := group.NewNonces(masterNonce, selectionNoncesTag)
	statements := make([]chaumpedersen.DisjunctiveStatement, len(votes))

	Follower.StepStart("encrypting selections", len(votes))
	common.ParallelFor(len(votes), func(i int) {
		nonce := selectionNonce(nonces, i)
		statements[i] = chaumpedersen.DisjunctiveStatement{
			Ciphertext: elgamal.Encrypt(e.jointKey, votes[i], nonce),
			Plaintext:  votes[i],
			Nonce:      nonce,
			PublicKey:  e.jointKey,
			Seed:       nonces.GetWithHeaders(i, "seed"),
			Header:     e.extendedBaseHash,
		}
		Follower.Tick()
	})
	proofs := chaumpedersen.ProveDisjunctiveBatch(statements)
	Follower.StepDone()

	selections := make([]*EncryptedSelection, len(votes))
	for i := range selections {
		selections[i] = &EncryptedSelection{Ciphertext: statements[i].Ciphertext, Proof: proofs[i]}
	}
	Logger.WithFields(logrus.Fields{"count": len(votes)}).Debug("encrypted selections")
	return selections
}

// selectionNonce derives the encryption nonce of selection i. A zero nonce is
// skipped by deriving again with a counter.
func selectionNonce(nonces *group.Nonces, i int) *group.ElementModQ {
	nonce := nonces.GetWithHeaders(i, "nonce")
	for retry := 1; nonce.IsZero(); retry++ {
		nonce = nonces.GetWithHeaders(i, "nonce", retry)
	}
	return nonce
}

// VerifySelection validates the proof of one selection. A valid proof also
// shows that both ciphertext components are valid residues.
func (e *Election) VerifySelection(s *EncryptedSelection) error {
	if s == nil || s.Proof == nil {
		return errors.New("selection without proof")
	}
	return s.Proof.Validate(s.Ciphertext, e.jointKey, e.extendedBaseHash)
}

// VerifySelections validates all selections in parallel. Entry i of the
// result is the error of selection i, or nil.
func (e *Election) VerifySelections(selections []*EncryptedSelection) []error {
	errs := make([]error, len(selections))
	Follower.StepStart("verifying selections", len(selections))
	common.ParallelFor(len(selections), func(i int) {
		errs[i] = e.VerifySelection(selections[i])
		Follower.Tick()
	})
	Follower.StepDone()

	for i, err := range errs {
		if err != nil {
			Logger.WithFields(logrus.Fields{"selection": i}).Warn(err)
		}
	}
	return errs
}

// AccumulateSelections adds all selections homomorphically into an
// encryption of the number of 1 votes. It panics on empty input.
func (e *Election) AccumulateSelections(selections []*EncryptedSelection) *elgamal.Ciphertext {
	ciphertexts := make([]*elgamal.Ciphertext, len(selections))
	for i, s := range selections {
		ciphertexts[i] = s.Ciphertext
	}
	return elgamal.Sum(ciphertexts)
}

type selectionRecord struct {
	Ciphertext []byte `cbor:"ciphertext"`
	Proof      []byte `cbor:"proof"`
}

func (s *EncryptedSelection) MarshalCBOR() ([]byte, error) {
	ciphertext, err := s.Ciphertext.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	proof, err := s.Proof.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(selectionRecord{Ciphertext: ciphertext, Proof: proof})
}

// UnmarshalSelection decodes a selection record for ctx.
func UnmarshalSelection(ctx *group.Context, data []byte) (*EncryptedSelection, error) {
	var rec selectionRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapPrefix(err, "selection record", 0)
	}
	ciphertext, err := elgamal.UnmarshalCiphertext(ctx, rec.Ciphertext)
	if err != nil {
		return nil, errors.WrapPrefix(err, "selection", 0)
	}
	proof, err := chaumpedersen.UnmarshalDisjunctiveProof(ctx, rec.Proof)
	if err != nil {
		return nil, errors.WrapPrefix(err, "selection", 0)
	}
	return &EncryptedSelection{Ciphertext: ciphertext, Proof: proof}, nil
}
