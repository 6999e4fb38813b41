package group

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultDLogBound is the largest exponent a context's discrete-log cache
// searches for.
const DefaultDLogBound = 1_000_000_000

// DiscreteLog finds small exponents of G by extending a cache of the powers
// G^0, G^1, ... until the requested element shows up. The cache only grows.
type DiscreteLog struct {
	ctx   *Context
	bound int

	mu          sync.RWMutex
	cache       map[string]int
	maxElement  *big.Int
	maxExponent int
}

// NewDiscreteLog creates a solver that gives up after exponent bound. The
// bound is clamped to Q-1, beyond which no exponent is the smallest one.
func NewDiscreteLog(ctx *Context, bound int) *DiscreteLog {
	if bound < 0 {
		panic(fmt.Sprintf("negative discrete log bound %d", bound))
	}
	qMinusOne := new(big.Int).Sub(ctx.q, big.NewInt(1))
	if qMinusOne.IsInt64() && qMinusOne.Int64() < int64(bound) {
		bound = int(qMinusOne.Int64())
	}
	one := ctx.oneP.v
	return &DiscreteLog{
		ctx:        ctx,
		bound:      bound,
		cache:      map[string]int{string(one.Bytes()): 0},
		maxElement: one,
	}
}

func (d *DiscreteLog) Bound() int {
	return d.bound
}

// Log returns the smallest e in [0, bound] with G^e = p. Elements outside
// the subgroup are rejected without searching.
func (d *DiscreteLog) Log(p *ElementModP) (int, bool) {
	d.ctx.assertCompatible(p.ctx)
	key := string(p.v.Bytes())

	d.mu.RLock()
	e, ok := d.cache[key]
	d.mu.RUnlock()
	if ok {
		return e, true
	}
	if !p.IsValidResidue() {
		return 0, false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	// Another goroutine may have extended the cache meanwhile.
	if e, ok := d.cache[key]; ok {
		return e, true
	}
	g := d.ctx.g
	for d.maxExponent < d.bound {
		d.maxExponent++
		d.maxElement = d.ctx.arith.mulP(d.maxElement, g)
		k := string(d.maxElement.Bytes())
		d.cache[k] = d.maxExponent
		if k == key {
			return d.maxExponent, true
		}
	}
	Logger.WithFields(logrus.Fields{
		"context": d.ctx.name,
		"bound":   d.bound,
	}).Debug("discrete log not found within bound")
	return 0, false
}
