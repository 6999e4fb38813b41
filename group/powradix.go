package group

import (
	"fmt"
	"math/big"

	"github.com/privacybydesign/egcrypto/internal/common"
	"github.com/sirupsen/logrus"
)

// PowRadixOption is the number of exponent bits consumed per table row.
// Larger values mean fewer multiplications per exponentiation and
// exponentially larger tables.
type PowRadixOption int

const (
	NoAcceleration   PowRadixOption = 0
	LowMemoryUse     PowRadixOption = 8
	HighMemoryUse    PowRadixOption = 12
	ExtremeMemoryUse PowRadixOption = 16
)

func (o PowRadixOption) String() string {
	switch o {
	case NoAcceleration:
		return "NoAcceleration"
	case LowMemoryUse:
		return "LowMemoryUse"
	case HighMemoryUse:
		return "HighMemoryUse"
	case ExtremeMemoryUse:
		return "ExtremeMemoryUse"
	default:
		return fmt.Sprintf("PowRadixOption(%d)", int(o))
	}
}

func (o PowRadixOption) valid() bool {
	switch o {
	case NoAcceleration, LowMemoryUse, HighMemoryUse, ExtremeMemoryUse:
		return true
	}
	return false
}

// PowRadix precomputes powers of a fixed basis. Row i holds
// basis^(j * 2^(k*i)) for all k-bit j, so that basis^e is the product of one
// entry per row, selected by the k-bit digits of e.
type PowRadix struct {
	basis  *ElementModP
	option PowRadixOption
	table  [][]*big.Int
}

// NewPowRadix builds the table for basis. With NoAcceleration no table is
// built and Pow falls back to square-and-multiply.
func NewPowRadix(basis *ElementModP, option PowRadixOption) *PowRadix {
	if !option.valid() {
		panic(fmt.Sprintf("invalid PowRadix option %d", int(option)))
	}
	plain := &ElementModP{ctx: basis.ctx, v: basis.v}
	pr := &PowRadix{basis: plain, option: option}
	if option == NoAcceleration {
		return pr
	}

	ctx := basis.ctx
	k := int(option)
	rows := (ctx.q.BitLen() + k - 1) / k
	cols := 1 << uint(k)

	// rowBases[i] = basis^(2^(k*i))
	rowBases := make([]*big.Int, rows)
	rowBases[0] = basis.v
	for i := 1; i < rows; i++ {
		b := rowBases[i-1]
		for j := 0; j < k; j++ {
			b = ctx.arith.mulP(b, b)
		}
		rowBases[i] = b
	}

	pr.table = make([][]*big.Int, rows)
	common.ParallelFor(rows, func(i int) {
		row := make([]*big.Int, cols)
		row[0] = ctx.oneP.v
		for j := 1; j < cols; j++ {
			row[j] = ctx.arith.mulP(row[j-1], rowBases[i])
		}
		pr.table[i] = row
	})

	Logger.WithFields(logrus.Fields{
		"context": ctx.name,
		"option":  option,
		"rows":    rows,
		"columns": cols,
	}).Debug("built PowRadix table")
	return pr
}

func (pr *PowRadix) Basis() *ElementModP {
	return pr.basis
}

func (pr *PowRadix) Option() PowRadixOption {
	return pr.option
}

// Pow computes basis^e.
func (pr *PowRadix) Pow(e *ElementModQ) *ElementModP {
	pr.basis.ctx.assertCompatible(e.ctx)
	return pr.basis.ctx.newP(pr.pow(e.v))
}

func (pr *PowRadix) pow(e *big.Int) *big.Int {
	ctx := pr.basis.ctx
	if pr.table == nil {
		return ctx.arith.expP(pr.basis.v, e)
	}
	exp := e.FillBytes(make([]byte, ctx.qBytes))
	k := uint(pr.option)
	result := ctx.oneP.v
	for i, row := range pr.table {
		if d := digit(exp, uint(i)*k, k); d != 0 {
			result = ctx.arith.mulP(result, row[d])
		}
	}
	return result
}

// digit extracts the k bits starting at bit offset off (counted from the
// least significant bit) of the big-endian integer be. k is at most 16.
func digit(be []byte, off, k uint) uint {
	var acc uint
	first := off / 8
	for i := uint(0); i < 3; i++ {
		idx := first + i
		if idx >= uint(len(be)) {
			break
		}
		acc |= uint(be[uint(len(be))-1-idx]) << (8 * i)
	}
	return (acc >> (off % 8)) & (1<<k - 1)
}
