package common

import "math/big"

// maxFoldBits bounds the size of c, in p = 2^b - c, for which folding is
// cheaper than a full division.
const maxFoldBits = 60

// FastMod reduces modulo p. When p = 2^b - c for a small c, the bits above
// position b are folded back in using x = hi*2^b + lo = hi*c + lo (mod p).
// Other moduli fall back to big.Int.Mod. The q of the election groups,
// 2^256 - 189, is of the folding kind.
type FastMod struct {
	p     big.Int
	c     big.Int
	mask  big.Int // 2^b - 1
	b     uint
	folds bool
}

func NewFastMod(p *big.Int) *FastMod {
	if p.Sign() <= 0 {
		panic("fastmod: modulus must be positive")
	}
	m := &FastMod{b: uint(p.BitLen())}
	m.p.Set(p)

	var pow big.Int
	pow.Lsh(big.NewInt(1), m.b)
	m.c.Sub(&pow, p)
	if m.c.BitLen() < maxFoldBits {
		m.folds = true
		m.mask.Sub(&pow, big.NewInt(1))
	}
	return m
}

// Folds reports whether reductions use folding rather than division.
func (m *FastMod) Folds() bool {
	return m.folds
}

// Reduce sets ret to x mod p and returns ret. ret and x may alias.
func (m *FastMod) Reduce(ret, x *big.Int) *big.Int {
	if !m.folds || x.Sign() < 0 {
		return ret.Mod(x, &m.p)
	}
	if x.Cmp(&m.p) < 0 {
		return ret.Set(x)
	}

	var hi, tmp big.Int
	cur := new(big.Int).Set(x)
	for cur.BitLen() > int(m.b) {
		hi.Rsh(cur, m.b)
		cur.And(cur, &m.mask)
		tmp.Mul(&hi, &m.c)
		cur.Add(cur, &tmp)
	}
	// cur < 2^b <= 2p now
	for cur.Cmp(&m.p) >= 0 {
		cur.Sub(cur, &m.p)
	}
	return ret.Set(cur)
}
