package group

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"sync"

	"github.com/go-errors/errors"
	"github.com/privacybydesign/egcrypto/internal/common"
	"github.com/sirupsen/logrus"
)

// ProductionMode selects one of the embedded production groups.
type ProductionMode int

const (
	Mode4096 ProductionMode = iota
	Mode3072
)

func (m ProductionMode) String() string {
	switch m {
	case Mode4096:
		return "4096-bit"
	case Mode3072:
		return "3072-bit"
	default:
		return fmt.Sprintf("ProductionMode(%d)", int(m))
	}
}

// Context holds the parameters of a prime-order subgroup of Z_p^*: the
// moduli P and Q = the order of G, the cofactor R = (P-1)/Q and frequently
// used constants. All elements refer to the context they were created in.
type Context struct {
	name       string
	p, q, g, r *big.Int
	pBytes     int
	qBytes     int
	production bool
	option     PowRadixOption

	arith  arithmetic
	gRadix *PowRadix
	dlog   *DiscreteLog

	zeroP, oneP, twoP    *ElementModP
	gP, gInvP, gSquaredP *ElementModP
	zeroQ, oneQ, twoQ    *ElementModQ
}

type productionKey struct {
	mode   ProductionMode
	option PowRadixOption
}

var (
	productionMu       sync.Mutex
	productionContexts = map[productionKey]*Context{}

	tinyOnce    sync.Once
	tinyContext *Context
)

// ProductionContext returns the context of a production group. Contexts are
// built once per mode and option and shared afterwards, so that the
// generator table is only computed once per process.
func ProductionContext(mode ProductionMode, option PowRadixOption) *Context {
	if !option.valid() {
		panic(fmt.Sprintf("invalid PowRadix option %d", int(option)))
	}
	productionMu.Lock()
	defer productionMu.Unlock()

	key := productionKey{mode, option}
	if ctx, ok := productionContexts[key]; ok {
		return ctx
	}

	var pHex, rHex, gHex string
	switch mode {
	case Mode4096:
		pHex, rHex, gHex = p4096Hex, r4096Hex, g4096Hex
	case Mode3072:
		pHex, rHex, gHex = p3072Hex, r3072Hex, g3072Hex
	default:
		panic(fmt.Sprintf("unknown production mode %v", mode))
	}
	ctx := newContext("production "+mode.String(),
		mustParseHex(pHex), mustParseHex(qHex), mustParseHex(gHex), mustParseHex(rHex),
		true, option)
	productionContexts[key] = ctx
	return ctx
}

// TinyContext returns a group small enough to make tests fast. It offers no
// security whatsoever and is flagged as test strength.
func TinyContext() *Context {
	tinyOnce.Do(func() {
		tinyContext = newContext("tiny",
			big.NewInt(tinyP), big.NewInt(tinyQ), big.NewInt(tinyG), big.NewInt(tinyR),
			false, LowMemoryUse)
	})
	return tinyContext
}

// NewContext builds a context for custom parameters. P and Q must be prime,
// Q must divide P-1 and G must generate the subgroup of order Q. Such
// contexts are always flagged as test strength.
func NewContext(name string, p, q, g *big.Int, option PowRadixOption) (*Context, error) {
	if !option.valid() {
		return nil, errors.Errorf("invalid PowRadix option %d", int(option))
	}
	if p == nil || q == nil || g == nil {
		return nil, errors.New("group parameters must not be nil")
	}
	if !p.ProbablyPrime(40) {
		return nil, errors.New("P is not prime")
	}
	if !q.ProbablyPrime(40) {
		return nil, errors.New("Q is not prime")
	}
	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
	r, rem := new(big.Int).QuoRem(pMinusOne, q, new(big.Int))
	if rem.Sign() != 0 {
		return nil, errors.New("Q does not divide P-1")
	}
	if g.Cmp(big.NewInt(1)) <= 0 || g.Cmp(p) >= 0 {
		return nil, errors.New("G is not in (1, P)")
	}
	if new(big.Int).Exp(g, q, p).Cmp(big.NewInt(1)) != 0 {
		return nil, errors.New("G does not have order Q")
	}
	return newContext(name, new(big.Int).Set(p), new(big.Int).Set(q), new(big.Int).Set(g), r,
		false, option), nil
}

func newContext(name string, p, q, g, r *big.Int, production bool, option PowRadixOption) *Context {
	ctx := &Context{
		name:       name,
		p:          p,
		q:          q,
		g:          g,
		r:          r,
		pBytes:     (p.BitLen() + 7) / 8,
		qBytes:     (q.BitLen() + 7) / 8,
		production: production,
		option:     option,
		arith:      newArithmetic(p, q),
	}

	ctx.zeroP = ctx.newP(big.NewInt(0))
	ctx.oneP = ctx.newP(big.NewInt(1))
	ctx.twoP = ctx.newP(big.NewInt(2))
	ctx.zeroQ = ctx.newQ(big.NewInt(0))
	ctx.oneQ = ctx.newQ(big.NewInt(1))
	ctx.twoQ = ctx.newQ(big.NewInt(2))

	gP := ctx.newP(g)
	ctx.gRadix = NewPowRadix(gP, option)
	gP.fixed = ctx.gRadix
	ctx.gP = gP
	ctx.gInvP = ctx.newP(ctx.arith.invP(g))
	ctx.gSquaredP = ctx.newP(ctx.arith.mulP(g, g))
	ctx.dlog = NewDiscreteLog(ctx, DefaultDLogBound)

	Logger.WithFields(logrus.Fields{
		"name":       name,
		"pBits":      p.BitLen(),
		"qBits":      q.BitLen(),
		"option":     option,
		"production": production,
	}).Debug("built group context")
	return ctx
}

func (ctx *Context) newP(v *big.Int) *ElementModP {
	return &ElementModP{ctx: ctx, v: v}
}

func (ctx *Context) newQ(v *big.Int) *ElementModQ {
	return &ElementModQ{ctx: ctx, v: v}
}

func (ctx *Context) Name() string {
	return ctx.name
}

func (ctx *Context) String() string {
	return "Context(" + ctx.name + ")"
}

// P returns a copy of the modulus.
func (ctx *Context) P() *big.Int { return new(big.Int).Set(ctx.p) }

// Q returns a copy of the subgroup order.
func (ctx *Context) Q() *big.Int { return new(big.Int).Set(ctx.q) }

// R returns a copy of the cofactor (P-1)/Q.
func (ctx *Context) R() *big.Int { return new(big.Int).Set(ctx.r) }

func (ctx *Context) G() *ElementModP        { return ctx.gP }
func (ctx *Context) GInv() *ElementModP     { return ctx.gInvP }
func (ctx *Context) GSquared() *ElementModP { return ctx.gSquaredP }
func (ctx *Context) ZeroModP() *ElementModP { return ctx.zeroP }
func (ctx *Context) OneModP() *ElementModP  { return ctx.oneP }
func (ctx *Context) TwoModP() *ElementModP  { return ctx.twoP }
func (ctx *Context) ZeroModQ() *ElementModQ { return ctx.zeroQ }
func (ctx *Context) OneModQ() *ElementModQ  { return ctx.oneQ }
func (ctx *Context) TwoModQ() *ElementModQ  { return ctx.twoQ }

// PBytes is the length of the fixed-length encoding of an ElementModP.
func (ctx *Context) PBytes() int { return ctx.pBytes }

// QBytes is the length of the fixed-length encoding of an ElementModQ.
func (ctx *Context) QBytes() int { return ctx.qBytes }

func (ctx *Context) PowRadixOption() PowRadixOption { return ctx.option }

func (ctx *Context) IsProductionStrength() bool { return ctx.production }

// IsCompatible reports whether elements of the two contexts may be mixed,
// which is the case when they share P and Q.
func (ctx *Context) IsCompatible(other *Context) bool {
	if other == nil {
		return false
	}
	if ctx == other {
		return true
	}
	return ctx.p.Cmp(other.p) == 0 && ctx.q.Cmp(other.q) == 0
}

// CompatibleWith reports whether all elements are non-nil and belong to
// contexts compatible with ctx.
func (ctx *Context) CompatibleWith(elems ...Element) bool {
	for _, e := range elems {
		if e == nil || !ctx.IsCompatible(e.Context()) {
			return false
		}
	}
	return true
}

func (ctx *Context) assertCompatible(other *Context) {
	if !ctx.IsCompatible(other) {
		panic(fmt.Sprintf("incompatible group contexts %v and %v", ctx, other))
	}
}

// GPowP computes G^e using the generator table of the context.
func (ctx *Context) GPowP(e *ElementModQ) *ElementModP {
	return ctx.gRadix.Pow(e)
}

// GPowInt computes G^m for a small non-negative integer, as used for
// exponentially encoded plaintexts.
func (ctx *Context) GPowInt(m int) *ElementModP {
	if m < 0 {
		panic(fmt.Sprintf("negative exponent %d", m))
	}
	return ctx.GPowP(ctx.Uint64ToElementModQ(uint64(m)))
}

// DLog returns the smallest e >= 0 with G^e = p, if it is within the bound of
// the context's discrete-log cache.
func (ctx *Context) DLog(p *ElementModP) (int, bool) {
	return ctx.dlog.Log(p)
}

// ProductP multiplies all given elements; the empty product is one.
func (ctx *Context) ProductP(elems ...*ElementModP) *ElementModP {
	acc := ctx.oneP.v
	for _, e := range elems {
		ctx.assertCompatible(e.ctx)
		acc = ctx.arith.mulP(acc, e.v)
	}
	return ctx.newP(acc)
}

// SumQ adds all given elements; the empty sum is zero.
func (ctx *Context) SumQ(elems ...*ElementModQ) *ElementModQ {
	acc := ctx.zeroQ.v
	for _, e := range elems {
		ctx.assertCompatible(e.ctx)
		acc = ctx.arith.addQ(acc, e.v)
	}
	return ctx.newQ(acc)
}

// SafeBinaryToElementModP interprets b as a big-endian integer and reduces
// it mod P. It never fails.
func (ctx *Context) SafeBinaryToElementModP(b []byte) *ElementModP {
	return ctx.newP(ctx.arith.reduceP(new(big.Int).SetBytes(b)))
}

// SafeBinaryToElementModQ interprets b as a big-endian integer and reduces
// it mod Q. It never fails.
func (ctx *Context) SafeBinaryToElementModQ(b []byte) *ElementModQ {
	return ctx.newQ(ctx.arith.reduceQ(new(big.Int).SetBytes(b)))
}

// BinaryToElementModP decodes a big-endian integer, rejecting inputs longer
// than the modulus or not below P.
func (ctx *Context) BinaryToElementModP(b []byte) (*ElementModP, error) {
	if len(b) > ctx.pBytes {
		return nil, errors.Errorf("element mod p: got %d bytes, at most %d allowed", len(b), ctx.pBytes)
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(ctx.p) >= 0 {
		return nil, errors.New("element mod p: value not below P")
	}
	return ctx.newP(v), nil
}

// BinaryToElementModQ decodes a big-endian integer, rejecting inputs longer
// than the modulus or not below Q.
func (ctx *Context) BinaryToElementModQ(b []byte) (*ElementModQ, error) {
	if len(b) > ctx.qBytes {
		return nil, errors.Errorf("element mod q: got %d bytes, at most %d allowed", len(b), ctx.qBytes)
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(ctx.q) >= 0 {
		return nil, errors.New("element mod q: value not below Q")
	}
	return ctx.newQ(v), nil
}

func (ctx *Context) Base64ToElementModP(s string) (*ElementModP, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.WrapPrefix(err, "element mod p", 0)
	}
	return ctx.BinaryToElementModP(b)
}

func (ctx *Context) Base64ToElementModQ(s string) (*ElementModQ, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.WrapPrefix(err, "element mod q", 0)
	}
	return ctx.BinaryToElementModQ(b)
}

// BigToElementModP requires 0 <= x < P.
func (ctx *Context) BigToElementModP(x *big.Int) (*ElementModP, error) {
	if x.Sign() < 0 || x.Cmp(ctx.p) >= 0 {
		return nil, errors.Errorf("element mod p: %v out of range", x)
	}
	return ctx.newP(new(big.Int).Set(x)), nil
}

// BigToElementModQ requires 0 <= x < Q.
func (ctx *Context) BigToElementModQ(x *big.Int) (*ElementModQ, error) {
	if x.Sign() < 0 || x.Cmp(ctx.q) >= 0 {
		return nil, errors.Errorf("element mod q: %v out of range", x)
	}
	return ctx.newQ(new(big.Int).Set(x)), nil
}

func (ctx *Context) Uint64ToElementModP(v uint64) *ElementModP {
	return ctx.newP(ctx.arith.reduceP(new(big.Int).SetUint64(v)))
}

func (ctx *Context) Uint64ToElementModQ(v uint64) *ElementModQ {
	return ctx.newQ(ctx.arith.reduceQ(new(big.Int).SetUint64(v)))
}

// RandomElementModQ draws uniformly from [minimum, Q).
func (ctx *Context) RandomElementModQ(minimum int) *ElementModQ {
	lower := big.NewInt(int64(minimum))
	if minimum < 0 || lower.Cmp(ctx.q) >= 0 {
		panic(fmt.Sprintf("invalid lower bound %d for random element mod q", minimum))
	}
	v := common.RandomBelow(new(big.Int).Sub(ctx.q, lower))
	return ctx.newQ(v.Add(v, lower))
}
