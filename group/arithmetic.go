package group

import (
	"fmt"
	"math/big"

	"github.com/privacybydesign/egcrypto/internal/common"
)

// Moduli of at most this many bits are handled by the small-integer backend:
// products of two reduced values then fit in a uint64.
const smallModulusBits = 32

// arithmetic does the modular arithmetic of a context. Inputs are reduced
// (0 <= x < modulus) unless stated otherwise. Results are fresh values that
// never alias an input.
type arithmetic interface {
	// reduceP and reduceQ accept any integer, including negative ones.
	reduceP(x *big.Int) *big.Int
	reduceQ(x *big.Int) *big.Int

	mulP(x, y *big.Int) *big.Int
	// expP accepts any non-negative exponent.
	expP(base, exp *big.Int) *big.Int
	invP(x *big.Int) *big.Int

	addQ(x, y *big.Int) *big.Int
	subQ(x, y *big.Int) *big.Int
	mulQ(x, y *big.Int) *big.Int
	negQ(x *big.Int) *big.Int
	invQ(x *big.Int) *big.Int
}

func newArithmetic(p, q *big.Int) arithmetic {
	if p.BitLen() <= smallModulusBits {
		return &smallArithmetic{
			p:    p.Uint64(),
			q:    q.Uint64(),
			bigP: new(big.Int).Set(p),
			bigQ: new(big.Int).Set(q),
		}
	}
	return &bigArithmetic{
		p:    new(big.Int).Set(p),
		q:    new(big.Int).Set(q),
		pMod: common.NewFastMod(p),
		qMod: common.NewFastMod(q),
	}
}

type bigArithmetic struct {
	p, q       *big.Int
	pMod, qMod *common.FastMod
}

func (a *bigArithmetic) reduceP(x *big.Int) *big.Int {
	return a.pMod.Reduce(new(big.Int), x)
}

func (a *bigArithmetic) reduceQ(x *big.Int) *big.Int {
	return a.qMod.Reduce(new(big.Int), x)
}

func (a *bigArithmetic) mulP(x, y *big.Int) *big.Int {
	t := new(big.Int).Mul(x, y)
	return a.pMod.Reduce(t, t)
}

func (a *bigArithmetic) expP(base, exp *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, a.p)
}

func (a *bigArithmetic) invP(x *big.Int) *big.Int {
	inv := new(big.Int).ModInverse(x, a.p)
	if inv == nil {
		panic(fmt.Sprintf("no inverse of %v mod p", x))
	}
	return inv
}

func (a *bigArithmetic) addQ(x, y *big.Int) *big.Int {
	t := new(big.Int).Add(x, y)
	if t.Cmp(a.q) >= 0 {
		t.Sub(t, a.q)
	}
	return t
}

func (a *bigArithmetic) subQ(x, y *big.Int) *big.Int {
	t := new(big.Int).Sub(x, y)
	if t.Sign() < 0 {
		t.Add(t, a.q)
	}
	return t
}

func (a *bigArithmetic) mulQ(x, y *big.Int) *big.Int {
	t := new(big.Int).Mul(x, y)
	return a.qMod.Reduce(t, t)
}

func (a *bigArithmetic) negQ(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(a.q, x)
}

func (a *bigArithmetic) invQ(x *big.Int) *big.Int {
	inv := new(big.Int).ModInverse(x, a.q)
	if inv == nil {
		panic(fmt.Sprintf("no inverse of %v mod q", x))
	}
	return inv
}

// smallArithmetic works on uint64 values for test-sized groups. The moduli
// are prime, so inverses are computed with Fermat's little theorem.
type smallArithmetic struct {
	p, q       uint64
	bigP, bigQ *big.Int
}

func (a *smallArithmetic) reduce(x *big.Int, m uint64, bigM *big.Int) *big.Int {
	if x.IsUint64() {
		return new(big.Int).SetUint64(x.Uint64() % m)
	}
	return new(big.Int).Mod(x, bigM)
}

func (a *smallArithmetic) reduceP(x *big.Int) *big.Int {
	return a.reduce(x, a.p, a.bigP)
}

func (a *smallArithmetic) reduceQ(x *big.Int) *big.Int {
	return a.reduce(x, a.q, a.bigQ)
}

func (a *smallArithmetic) mulP(x, y *big.Int) *big.Int {
	return new(big.Int).SetUint64(x.Uint64() * y.Uint64() % a.p)
}

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1) % m
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}
	return result
}

func (a *smallArithmetic) expP(base, exp *big.Int) *big.Int {
	if !exp.IsUint64() {
		return new(big.Int).Exp(base, exp, a.bigP)
	}
	return new(big.Int).SetUint64(powMod(base.Uint64(), exp.Uint64(), a.p))
}

func (a *smallArithmetic) invP(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		panic("no inverse of 0 mod p")
	}
	return new(big.Int).SetUint64(powMod(x.Uint64(), a.p-2, a.p))
}

func (a *smallArithmetic) addQ(x, y *big.Int) *big.Int {
	return new(big.Int).SetUint64((x.Uint64() + y.Uint64()) % a.q)
}

func (a *smallArithmetic) subQ(x, y *big.Int) *big.Int {
	return new(big.Int).SetUint64((x.Uint64() + a.q - y.Uint64()) % a.q)
}

func (a *smallArithmetic) mulQ(x, y *big.Int) *big.Int {
	return new(big.Int).SetUint64(x.Uint64() * y.Uint64() % a.q)
}

func (a *smallArithmetic) negQ(x *big.Int) *big.Int {
	return new(big.Int).SetUint64((a.q - x.Uint64()) % a.q)
}

func (a *smallArithmetic) invQ(x *big.Int) *big.Int {
	if x.Sign() == 0 {
		panic("no inverse of 0 mod q")
	}
	return new(big.Int).SetUint64(powMod(x.Uint64(), a.q-2, a.q))
}
