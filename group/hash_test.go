package group

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

type hashableString string

func (h hashableString) CryptoHashString() string { return string(h) }

type hashablePair struct {
	a, b *ElementModP
}

func (h *hashablePair) CryptoHashString() string { return h.a.ctx.HashElements(h.a, h.b).Base16() }

func TestHashElementsVectors(t *testing.T) {
	ctx := TinyContext()
	assert.Equal(t, int64(22592), ctx.HashElements().Big().Int64())
	assert.Equal(t, int64(22592), ctx.HashElements(nil).Big().Int64())
	assert.Equal(t, int64(29675), ctx.HashElements("a", 1).Big().Int64())
	assert.Equal(t, int64(19897), ctx.HashElements(ctx.Uint64ToElementModP(9), ctx.Uint64ToElementModQ(5)).Big().Int64())

	prod := ProductionContext(Mode4096, NoAcceleration)
	assert.Equal(t, "4B9729549DA6FBF91219C4D2D4878F0D9F443F92D013C6C768F96BA81C7CCAEE", prod.HashElements().Base16())
}

func TestHashElementsTokens(t *testing.T) {
	ctx := TinyContext()
	p := ctx.Uint64ToElementModP(9)
	q := ctx.Uint64ToElementModQ(5)
	inner := ctx.HashElements(p, q)

	// nested sequences hash to the base16 of their own hash
	assert.True(t, ctx.HashElements([]interface{}{p, q}).Equal(ctx.HashElements(inner)))
	assert.True(t, ctx.HashElements([]*ElementModP{p}).Equal(ctx.HashElements(ctx.HashElements(p))))
	assert.True(t, ctx.HashElements([]*ElementModQ{q, q}).Equal(ctx.HashElements(ctx.HashElements(q, q))))
	assert.True(t, ctx.HashElements([]string{"x"}).Equal(ctx.HashElements(ctx.HashElements("x"))))

	// empty sequences and typed nils are null
	assert.True(t, ctx.HashElements([]interface{}{}).Equal(ctx.HashElements(nil)))
	assert.True(t, ctx.HashElements((*ElementModP)(nil)).Equal(ctx.HashElements(nil)))
	assert.True(t, ctx.HashElements("null").Equal(ctx.HashElements(nil)))
	assert.True(t, ctx.HashElements((*hashablePair)(nil)).Equal(ctx.HashElements(nil)))
	assert.True(t, ctx.HashElements(&hashablePair{p, p}).Equal(ctx.HashElements(ctx.HashElements(p, p))))

	// elements hash as their base16, integers as decimal
	assert.True(t, ctx.HashElements(p).Equal(ctx.HashElements("0009")))
	assert.True(t, ctx.HashElements(q).Equal(ctx.HashElements("0005")))
	assert.True(t, ctx.HashElements(int64(42)).Equal(ctx.HashElements(42)))
	assert.True(t, ctx.HashElements(uint8(42)).Equal(ctx.HashElements("42")))
	assert.True(t, ctx.HashElements(big.NewInt(-3)).Equal(ctx.HashElements("-3")))
	assert.True(t, ctx.HashElements([]byte{0xab, 0x01}).Equal(ctx.HashElements("AB01")))
	assert.True(t, ctx.HashElements(hashableString("custom")).Equal(ctx.HashElements("custom")))

	// order matters
	assert.False(t, ctx.HashElements(p, q).Equal(ctx.HashElements(q, p)))
}

func TestHashElementsUnsupported(t *testing.T) {
	ctx := TinyContext()
	assert.Panics(t, func() { ctx.HashElements(1.5) })
	assert.Panics(t, func() { ctx.HashElements(struct{}{}) })
}

func TestNonces(t *testing.T) {
	ctx := TinyContext()
	seed := ctx.Uint64ToElementModQ(2)

	n := NewNonces(seed, "generic-chaum-pedersen-proof")
	assert.Equal(t, int64(20731), n.Get(0).Big().Int64())
	assert.True(t, n.Get(0).Equal(NewNonces(seed, "generic-chaum-pedersen-proof").Get(0)))
	assert.False(t, n.Get(0).Equal(n.Get(1)))

	internal := ctx.HashElements(seed, "generic-chaum-pedersen-proof")
	assert.True(t, n.Get(3).Equal(ctx.HashElements(internal, 3)))
	assert.True(t, n.GetWithHeaders(3, "x").Equal(ctx.HashElements(internal, 3, "x")))

	plain := NewNonces(seed)
	assert.True(t, plain.Get(1).Equal(ctx.HashElements(seed, 1)))

	taken := n.Take(3)
	assert.Len(t, taken, 3)
	for i, e := range taken {
		assert.True(t, e.Equal(n.Get(i)))
	}
}
