package group

import (
	"math/big"

	"github.com/bwesterb/go-exptable"
)

// Window size of compact fixed-base tables.
const compactWindow = 7

type compactTable struct {
	table exptable.Table
}

func newCompactTable(basis *ElementModP) *compactTable {
	t := &compactTable{}
	t.table.Compute(basis.v, basis.ctx.p, compactWindow)
	return t
}

func (t *compactTable) pow(e *big.Int) *big.Int {
	ret := new(big.Int)
	t.table.Exp(ret, e)
	return ret
}
