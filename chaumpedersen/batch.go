package chaumpedersen

import (
	"fmt"

	"github.com/privacybydesign/egcrypto/elgamal"
	"github.com/privacybydesign/egcrypto/group"
	"github.com/privacybydesign/egcrypto/internal/common"
)

// DisjunctiveStatement holds everything needed to prove that one ciphertext
// encrypts Plaintext, which is 0 or 1.
type DisjunctiveStatement struct {
	Ciphertext *elgamal.Ciphertext
	Plaintext  int
	Nonce      *group.ElementModQ
	PublicKey  *group.ElementModP
	Seed       *group.ElementModQ
	Header     *group.ElementModQ
}

// ProveDisjunctiveBatch proves all statements on all CPUs. The proofs are
// returned in the order of the statements.
func ProveDisjunctiveBatch(statements []DisjunctiveStatement) []*DisjunctiveProof {
	proofs := make([]*DisjunctiveProof, len(statements))
	common.ParallelFor(len(statements), func(i int) {
		s := &statements[i]
		proofs[i] = ProveDisjunctive(s.Ciphertext, s.Plaintext, s.Nonce, s.PublicKey, s.Seed, s.Header)
	})
	return proofs
}

// VerifyDisjunctiveBatch validates proofs[i] against ciphertexts[i] on all
// CPUs. Entry i of the result is the validation error of proof i, or nil.
func VerifyDisjunctiveBatch(proofs []*DisjunctiveProof, ciphertexts []*elgamal.Ciphertext,
	publicKey *group.ElementModP, header *group.ElementModQ) []error {
	if len(proofs) != len(ciphertexts) {
		panic(fmt.Sprintf("%d proofs for %d ciphertexts", len(proofs), len(ciphertexts)))
	}
	errs := make([]error, len(proofs))
	common.ParallelFor(len(proofs), func(i int) {
		errs[i] = proofs[i].Validate(ciphertexts[i], publicKey, header)
	})
	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		Logger.Warnf("%d of %d disjunctive proofs failed to validate", failed, len(proofs))
	}
	return errs
}
