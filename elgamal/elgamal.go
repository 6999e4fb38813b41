// Package elgamal implements exponential ElGamal: a message m is encrypted
// as the pair (G^r, G^m * K^r), so that multiplying ciphertexts adds their
// messages. Decryption recovers G^m and then m by a discrete log, which is
// feasible because encrypted messages are small counts.
package elgamal

import (
	"fmt"
	"math/big"

	"github.com/privacybydesign/egcrypto/group"
	"github.com/privacybydesign/egcrypto/internal/common"
)

// KeyPair is an ElGamal secret key and its public key G^SecretKey.
type KeyPair struct {
	SecretKey *group.ElementModQ
	PublicKey *group.ElementModP
}

// KeyPairFromSecret derives the key pair of a secret, which must be at
// least 2. The public key carries a compact exponentiation table.
func KeyPairFromSecret(secret *group.ElementModQ) *KeyPair {
	if secret.Big().Cmp(big.NewInt(2)) < 0 {
		panic(fmt.Sprintf("ElGamal secret key must be at least 2, got %v", secret))
	}
	ctx := secret.Context()
	return &KeyPair{
		SecretKey: secret,
		PublicKey: ctx.GPowP(secret).AccelerateCompact(),
	}
}

// KeyPairFromRandom generates a fresh key pair.
func KeyPairFromRandom(ctx *group.Context) *KeyPair {
	return KeyPairFromSecret(ctx.RandomElementModQ(2))
}

func (kp *KeyPair) Context() *group.Context {
	return kp.SecretKey.Context()
}

// Ciphertext is an encryption (Pad, Data) = (G^r, G^m * K^r).
type Ciphertext struct {
	Pad  *group.ElementModP
	Data *group.ElementModP
}

// Encrypt encrypts a non-negative message under publicKey with the given
// nonzero nonce.
func Encrypt(publicKey *group.ElementModP, message int, nonce *group.ElementModQ) *Ciphertext {
	if message < 0 {
		panic(fmt.Sprintf("cannot encrypt negative message %d", message))
	}
	if nonce.IsZero() {
		panic("ElGamal encryption requires a nonzero nonce")
	}
	ctx := publicKey.Context()
	return &Ciphertext{
		Pad:  ctx.GPowP(nonce),
		Data: ctx.GPowInt(message).Mul(publicKey.Pow(nonce)),
	}
}

// EncryptRandom encrypts with a fresh random nonce, which it returns so that
// the caller can prove statements about the ciphertext.
func EncryptRandom(publicKey *group.ElementModP, message int) (*Ciphertext, *group.ElementModQ) {
	nonce := publicKey.Context().RandomElementModQ(1)
	return Encrypt(publicKey, message, nonce), nonce
}

func (c *Ciphertext) Context() *group.Context {
	return c.Pad.Context()
}

// unblind returns the message encoded in Data / blind.
func (c *Ciphertext) unblind(blind *group.ElementModP) (int, bool) {
	if blind.IsZero() {
		return 0, false
	}
	return c.Context().DLog(c.Data.Div(blind))
}

// Decrypt recovers the message using the secret key.
func (c *Ciphertext) Decrypt(secretKey *group.ElementModQ) (int, bool) {
	return c.unblind(c.Pad.Pow(secretKey))
}

// DecryptWithNonce recovers the message using the encryption nonce instead
// of the secret key.
func (c *Ciphertext) DecryptWithNonce(publicKey *group.ElementModP, nonce *group.ElementModQ) (int, bool) {
	return c.unblind(publicKey.Pow(nonce))
}

// PartialDecrypt computes the decryption share Pad^secretKey of one holder
// of a part of the joint key.
func (c *Ciphertext) PartialDecrypt(secretKey *group.ElementModQ) *group.ElementModP {
	return c.Pad.Pow(secretKey)
}

// DecryptWithShares recovers the message from the decryption shares of all
// key holders; the joint key must be the product of their public keys.
func (c *Ciphertext) DecryptWithShares(shares ...*group.ElementModP) (int, bool) {
	return c.unblind(c.Context().ProductP(shares...))
}

// Add returns the component-wise product of c and others, an encryption of
// the sum of their messages.
func (c *Ciphertext) Add(others ...*Ciphertext) *Ciphertext {
	pad, data := c.Pad, c.Data
	for _, o := range others {
		pad = pad.Mul(o.Pad)
		data = data.Mul(o.Data)
	}
	return &Ciphertext{Pad: pad, Data: data}
}

// Sum adds all ciphertexts homomorphically. It panics on empty input.
func Sum(ciphertexts []*Ciphertext) *Ciphertext {
	if len(ciphertexts) == 0 {
		panic("cannot sum an empty list of ciphertexts")
	}
	return ciphertexts[0].Add(ciphertexts[1:]...)
}

// Validate checks that both components lie in the subgroup generated by G.
func (c *Ciphertext) Validate() error {
	var checks common.Checks
	checks.Require(c.Pad.IsValidResidue(), "pad is not a valid residue")
	checks.Require(c.Data.IsValidResidue(), "data is not a valid residue")
	return checks.Err("invalid ciphertext")
}

// IsValid is Validate reporting a bool; failures are logged.
func (c *Ciphertext) IsValid() bool {
	if err := c.Validate(); err != nil {
		Logger.Warn(err)
		return false
	}
	return true
}

func (c *Ciphertext) Equal(other *Ciphertext) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Pad.Equal(other.Pad) && c.Data.Equal(other.Data)
}

// CryptoHashString lets a ciphertext be hashed as a single item.
func (c *Ciphertext) CryptoHashString() string {
	return c.Context().HashElements(c.Pad, c.Data).Base16()
}

func (c *Ciphertext) String() string {
	return fmt.Sprintf("Ciphertext(%v, %v)", c.Pad, c.Data)
}
