package group

import (
	"encoding/base64"
	"encoding/hex"
	"math/big"
	"strings"
)

// ElementModQ is an integer in [0, Q). Its value never changes after
// construction; arithmetic returns new elements.
type ElementModQ struct {
	ctx *Context
	v   *big.Int
}

// ElementModP is an integer in [0, P), optionally carrying a fixed-base
// table that speeds up exponentiation of this element.
type ElementModP struct {
	ctx   *Context
	v     *big.Int
	fixed fixedBase
}

// Element is implemented by ElementModP and ElementModQ.
type Element interface {
	Context() *Context
}

// fixedBase computes powers of one particular element.
type fixedBase interface {
	pow(e *big.Int) *big.Int
}

func (e *ElementModQ) Context() *Context {
	if e == nil {
		return nil
	}
	return e.ctx
}

// Big returns a copy of the value.
func (e *ElementModQ) Big() *big.Int { return new(big.Int).Set(e.v) }

// Bytes returns the big-endian encoding, left-padded to the size of Q.
func (e *ElementModQ) Bytes() []byte {
	return e.v.FillBytes(make([]byte, e.ctx.qBytes))
}

func (e *ElementModQ) Base16() string {
	return strings.ToUpper(hex.EncodeToString(e.Bytes()))
}

func (e *ElementModQ) Base64() string {
	return base64.StdEncoding.EncodeToString(e.Bytes())
}

func (e *ElementModQ) String() string {
	return "ElementModQ(" + e.v.String() + ")"
}

func (e *ElementModQ) IsZero() bool { return e.v.Sign() == 0 }

// InBounds reports 0 <= e < Q.
func (e *ElementModQ) InBounds() bool {
	return e.v.Sign() >= 0 && e.v.Cmp(e.ctx.q) < 0
}

// InBoundsNoZero reports 0 < e < Q.
func (e *ElementModQ) InBoundsNoZero() bool {
	return e.v.Sign() > 0 && e.v.Cmp(e.ctx.q) < 0
}

// Equal reports whether both elements belong to compatible contexts and have
// the same value.
func (e *ElementModQ) Equal(other *ElementModQ) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ctx.IsCompatible(other.ctx) && e.v.Cmp(other.v) == 0
}

func (e *ElementModQ) Add(other *ElementModQ) *ElementModQ {
	e.ctx.assertCompatible(other.ctx)
	return e.ctx.newQ(e.ctx.arith.addQ(e.v, other.v))
}

func (e *ElementModQ) Sub(other *ElementModQ) *ElementModQ {
	e.ctx.assertCompatible(other.ctx)
	return e.ctx.newQ(e.ctx.arith.subQ(e.v, other.v))
}

func (e *ElementModQ) Mul(other *ElementModQ) *ElementModQ {
	e.ctx.assertCompatible(other.ctx)
	return e.ctx.newQ(e.ctx.arith.mulQ(e.v, other.v))
}

// Div computes e / other mod Q; other must not be zero.
func (e *ElementModQ) Div(other *ElementModQ) *ElementModQ {
	e.ctx.assertCompatible(other.ctx)
	if other.IsZero() {
		panic("division by zero mod q")
	}
	return e.ctx.newQ(e.ctx.arith.mulQ(e.v, e.ctx.arith.invQ(other.v)))
}

func (e *ElementModQ) Neg() *ElementModQ {
	return e.ctx.newQ(e.ctx.arith.negQ(e.v))
}

// MarshalBinary returns the fixed-length big-endian encoding.
func (e *ElementModQ) MarshalBinary() ([]byte, error) {
	return e.Bytes(), nil
}

// MarshalText returns the base64 of the fixed-length encoding.
func (e *ElementModQ) MarshalText() ([]byte, error) {
	return []byte(e.Base64()), nil
}

func (e *ElementModP) Context() *Context {
	if e == nil {
		return nil
	}
	return e.ctx
}

// Big returns a copy of the value.
func (e *ElementModP) Big() *big.Int { return new(big.Int).Set(e.v) }

// Bytes returns the big-endian encoding, left-padded to the size of P.
func (e *ElementModP) Bytes() []byte {
	return e.v.FillBytes(make([]byte, e.ctx.pBytes))
}

func (e *ElementModP) Base16() string {
	return strings.ToUpper(hex.EncodeToString(e.Bytes()))
}

func (e *ElementModP) Base64() string {
	return base64.StdEncoding.EncodeToString(e.Bytes())
}

func (e *ElementModP) String() string {
	s := e.v.Text(16)
	if len(s) > 16 {
		s = s[:8] + "..." + s[len(s)-8:]
	}
	return "ElementModP(" + s + ")"
}

func (e *ElementModP) IsZero() bool { return e.v.Sign() == 0 }

// InBounds reports 0 <= e < P.
func (e *ElementModP) InBounds() bool {
	return e.v.Sign() >= 0 && e.v.Cmp(e.ctx.p) < 0
}

// IsValidResidue reports whether e lies in the subgroup generated by G,
// i.e. 0 < e < P and e^Q = 1.
func (e *ElementModP) IsValidResidue() bool {
	if e.v.Sign() <= 0 || e.v.Cmp(e.ctx.p) >= 0 {
		return false
	}
	return e.ctx.arith.expP(e.v, e.ctx.q).Cmp(e.ctx.oneP.v) == 0
}

// Equal reports whether both elements belong to compatible contexts and have
// the same value. Attached tables are ignored.
func (e *ElementModP) Equal(other *ElementModP) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ctx.IsCompatible(other.ctx) && e.v.Cmp(other.v) == 0
}

func (e *ElementModP) Mul(other *ElementModP) *ElementModP {
	e.ctx.assertCompatible(other.ctx)
	return e.ctx.newP(e.ctx.arith.mulP(e.v, other.v))
}

// Div computes e / other mod P; other must not be zero.
func (e *ElementModP) Div(other *ElementModP) *ElementModP {
	e.ctx.assertCompatible(other.ctx)
	if other.v.Sign() == 0 {
		panic("division by zero mod p")
	}
	return e.ctx.newP(e.ctx.arith.mulP(e.v, e.ctx.arith.invP(other.v)))
}

func (e *ElementModP) Inverse() *ElementModP {
	if e.v.Sign() == 0 {
		panic("inverse of zero mod p")
	}
	return e.ctx.newP(e.ctx.arith.invP(e.v))
}

// Pow computes e^exp, using an attached table if there is one and the
// generator table when e equals G.
func (e *ElementModP) Pow(exp *ElementModQ) *ElementModP {
	e.ctx.assertCompatible(exp.ctx)
	switch {
	case e.fixed != nil:
		return e.ctx.newP(e.fixed.pow(exp.v))
	case e.v.Cmp(e.ctx.g) == 0:
		return e.ctx.GPowP(exp)
	default:
		return e.ctx.newP(e.ctx.arith.expP(e.v, exp.v))
	}
}

// AcceleratePow returns a copy of e with a PowRadix table attached, built
// at the context's option.
func (e *ElementModP) AcceleratePow() *ElementModP {
	return &ElementModP{ctx: e.ctx, v: e.v, fixed: NewPowRadix(e, e.ctx.option)}
}

// AccelerateCompact returns a copy of e with a small windowed table
// attached. It costs far less memory than a PowRadix.
func (e *ElementModP) AccelerateCompact() *ElementModP {
	return &ElementModP{ctx: e.ctx, v: e.v, fixed: newCompactTable(e)}
}

// IsAccelerated reports whether a fixed-base table is attached.
func (e *ElementModP) IsAccelerated() bool {
	return e.fixed != nil
}

// MarshalBinary returns the fixed-length big-endian encoding.
func (e *ElementModP) MarshalBinary() ([]byte, error) {
	return e.Bytes(), nil
}

// MarshalText returns the base64 of the fixed-length encoding.
func (e *ElementModP) MarshalText() ([]byte, error) {
	return []byte(e.Base64()), nil
}
