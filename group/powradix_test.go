package group

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allOptions = []PowRadixOption{NoAcceleration, LowMemoryUse, HighMemoryUse, ExtremeMemoryUse}

func TestPowRadixTinyExhaustive(t *testing.T) {
	ctx := TinyContext()
	base := ctx.Uint64ToElementModP(4)
	for _, option := range allOptions {
		pr := NewPowRadix(base, option)
		assert.Equal(t, option, pr.Option())
		expected := big.NewInt(1)
		for e := uint64(0); e < tinyQ; e += 97 {
			exp := ctx.Uint64ToElementModQ(e)
			expected.Exp(big.NewInt(4), big.NewInt(int64(e)), big.NewInt(tinyP))
			if !assert.Equal(t, expected.Int64(), pr.Pow(exp).Big().Int64(), "option %v exponent %d", option, e) {
				return
			}
		}
		last := ctx.Uint64ToElementModQ(tinyQ - 1)
		assert.True(t, pr.Pow(last).Equal(base.Inverse()))
	}
}

func TestPowRadixProduction(t *testing.T) {
	rnd := rand.New(rand.NewSource(37))
	ctx := ProductionContext(Mode4096, NoAcceleration)
	pr := NewPowRadix(ctx.G(), LowMemoryUse)
	for i := 0; i < 10; i++ {
		e := randomQ(rnd, ctx)
		assert.True(t, pr.Pow(e).Equal(ctx.GPowP(e)))
	}
	qMinusOne := ctx.Uint64ToElementModQ(0).Sub(ctx.OneModQ())
	assert.True(t, pr.Pow(qMinusOne).Equal(ctx.GInv()))
}

func TestPowRadixInvalidOption(t *testing.T) {
	ctx := TinyContext()
	assert.Panics(t, func() { NewPowRadix(ctx.G(), PowRadixOption(3)) })
	assert.Panics(t, func() { ProductionContext(Mode4096, PowRadixOption(9)) })
}

func TestPowRadixTableShape(t *testing.T) {
	ctx := TinyContext()
	pr := NewPowRadix(ctx.G(), LowMemoryUse)
	// Q has 15 bits
	assert.Len(t, pr.table, 2)
	assert.Len(t, pr.table[0], 256)
	assert.Equal(t, int64(tinyG), pr.table[0][1].Int64())
	assert.Equal(t, 0, new(big.Int).Exp(big.NewInt(tinyG), big.NewInt(256), big.NewInt(tinyP)).Cmp(pr.table[1][1]))

	assert.Len(t, NewPowRadix(ctx.G(), ExtremeMemoryUse).table, 1)
	assert.Nil(t, NewPowRadix(ctx.G(), NoAcceleration).table)
}

func TestDigit(t *testing.T) {
	be := []byte{0x12, 0x34, 0x56}
	assert.Equal(t, uint(0x56), digit(be, 0, 8))
	assert.Equal(t, uint(0x34), digit(be, 8, 8))
	assert.Equal(t, uint(0x12), digit(be, 16, 8))
	assert.Equal(t, uint(0x456), digit(be, 0, 12))
	assert.Equal(t, uint(0x123), digit(be, 12, 12))
	assert.Equal(t, uint(0x3456), digit(be, 0, 16))
	assert.Equal(t, uint(0x12), digit(be, 16, 16))
	assert.Equal(t, uint(0x2345), digit(be, 4, 16))
	assert.Equal(t, uint(0), digit(be, 24, 8))
}

func BenchmarkPowRadixLow(b *testing.B) {
	ctx := ProductionContext(Mode4096, LowMemoryUse)
	e := ctx.HashElements("benchmark")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.GPowP(e)
	}
}

func BenchmarkPowNaive(b *testing.B) {
	ctx := ProductionContext(Mode4096, NoAcceleration)
	e := ctx.HashElements("benchmark")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.GPowP(e)
	}
}
