package elgamal

import (
	"math/rand"
	"testing"

	"github.com/privacybydesign/egcrypto/cbor"
	"github.com/privacybydesign/egcrypto/group"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	Logger.SetLevel(logrus.FatalLevel)
}

func TestTinyExample(t *testing.T) {
	ctx := group.TinyContext()
	kp := KeyPairFromSecret(ctx.TwoModQ())
	assert.Equal(t, int64(9), kp.PublicKey.Big().Int64())

	c := Encrypt(kp.PublicKey, 0, ctx.OneModQ())
	assert.Equal(t, int64(3), c.Pad.Big().Int64())
	assert.Equal(t, int64(9), c.Data.Big().Int64())

	m, ok := c.Decrypt(kp.SecretKey)
	require.True(t, ok)
	assert.Equal(t, 0, m)
}

func TestEncryptDecrypt(t *testing.T) {
	rnd := rand.New(rand.NewSource(37))
	for _, ctx := range []*group.Context{group.TinyContext(), group.ProductionContext(group.Mode4096, group.LowMemoryUse)} {
		kp := KeyPairFromRandom(ctx)
		for i := 0; i < 10; i++ {
			message := rnd.Intn(1000)
			nonce := ctx.RandomElementModQ(1)
			c := Encrypt(kp.PublicKey, message, nonce)
			assert.NoError(t, c.Validate())

			m, ok := c.Decrypt(kp.SecretKey)
			require.True(t, ok)
			assert.Equal(t, message, m)

			m, ok = c.DecryptWithNonce(kp.PublicKey, nonce)
			require.True(t, ok)
			assert.Equal(t, message, m)
		}
	}
}

func TestEncryptPanics(t *testing.T) {
	ctx := group.TinyContext()
	kp := KeyPairFromSecret(ctx.Uint64ToElementModQ(1234))
	assert.Panics(t, func() { Encrypt(kp.PublicKey, 1, ctx.ZeroModQ()) })
	assert.Panics(t, func() { Encrypt(kp.PublicKey, -1, ctx.OneModQ()) })
	assert.Panics(t, func() { KeyPairFromSecret(ctx.OneModQ()) })
	assert.Panics(t, func() { KeyPairFromSecret(ctx.ZeroModQ()) })
	assert.Panics(t, func() { Sum(nil) })
}

func TestEncryptRandom(t *testing.T) {
	ctx := group.TinyContext()
	kp := KeyPairFromRandom(ctx)
	assert.True(t, kp.PublicKey.IsAccelerated())
	c, nonce := EncryptRandom(kp.PublicKey, 7)
	assert.False(t, nonce.IsZero())
	assert.True(t, c.Equal(Encrypt(kp.PublicKey, 7, nonce)))
}

func TestHomomorphicSum(t *testing.T) {
	ctx := group.TinyContext()
	kp := KeyPairFromRandom(ctx)

	var cts []*Ciphertext
	total := 0
	for i := 0; i < 20; i++ {
		m := i % 3
		total += m
		c, _ := EncryptRandom(kp.PublicKey, m)
		cts = append(cts, c)
	}
	m, ok := Sum(cts).Decrypt(kp.SecretKey)
	require.True(t, ok)
	assert.Equal(t, total, m)

	m, ok = cts[0].Add(cts[1], cts[2]).Decrypt(kp.SecretKey)
	require.True(t, ok)
	assert.Equal(t, 0+1+2, m)

	assert.True(t, Sum(cts[:1]).Equal(cts[0]))
}

func TestDecryptWithShares(t *testing.T) {
	ctx := group.TinyContext()
	guardians := []*KeyPair{KeyPairFromRandom(ctx), KeyPairFromRandom(ctx), KeyPairFromRandom(ctx)}
	joint := ctx.OneModP()
	for _, g := range guardians {
		joint = joint.Mul(g.PublicKey)
	}

	c, _ := EncryptRandom(joint, 42)
	var shares []*group.ElementModP
	for _, g := range guardians {
		shares = append(shares, c.PartialDecrypt(g.SecretKey))
	}
	m, ok := c.DecryptWithShares(shares...)
	require.True(t, ok)
	assert.Equal(t, 42, m)

	// a missing share leaves the message blinded
	m, ok = c.DecryptWithShares(shares[:2]...)
	assert.False(t, ok && m == 42)
}

func TestValidate(t *testing.T) {
	ctx := group.TinyContext()
	kp := KeyPairFromRandom(ctx)
	c, _ := EncryptRandom(kp.PublicKey, 1)
	assert.True(t, c.IsValid())

	bad := &Ciphertext{Pad: ctx.TwoModP(), Data: ctx.ZeroModP()}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pad is not a valid residue")
	assert.Contains(t, err.Error(), "data is not a valid residue")
	assert.False(t, bad.IsValid())

	_, ok := bad.Decrypt(kp.SecretKey)
	assert.False(t, ok)
	_, ok = (&Ciphertext{Pad: ctx.ZeroModP(), Data: c.Data}).Decrypt(kp.SecretKey)
	assert.False(t, ok)
}

func TestCryptoHashString(t *testing.T) {
	ctx := group.TinyContext()
	c := &Ciphertext{Pad: ctx.G(), Data: ctx.GSquared()}
	assert.Equal(t, ctx.HashElements(ctx.G(), ctx.GSquared()).Base16(), c.CryptoHashString())
	assert.True(t, ctx.HashElements(c).Equal(ctx.HashElements(c.CryptoHashString())))
	assert.True(t, ctx.HashElements((*Ciphertext)(nil)).Equal(ctx.HashElements(nil)))
}

func TestMarshalCBOR(t *testing.T) {
	ctx := group.TinyContext()
	kp := KeyPairFromRandom(ctx)
	c, _ := EncryptRandom(kp.PublicKey, 3)

	bts, err := c.MarshalCBOR()
	require.NoError(t, err)
	back, err := UnmarshalCiphertext(ctx, bts)
	require.NoError(t, err)
	assert.True(t, c.Equal(back))

	_, err = UnmarshalCiphertext(ctx, bts[:len(bts)-1])
	assert.Error(t, err)

	// a 3-byte pad does not fit the tiny group
	bad, err := cbor.Marshal(ciphertextRecord{Pad: []byte{1, 0, 0}, Data: c.Data.Bytes()})
	require.NoError(t, err)
	_, err = UnmarshalCiphertext(ctx, bad)
	assert.Error(t, err)
}
