package group

// Nonces is a deterministic sequence of ElementModQ values derived from a
// seed. The same seed and headers always give the same sequence.
type Nonces struct {
	seed *ElementModQ
}

// NewNonces creates the sequence for seed. Headers, if any, are hashed into
// the seed to separate sequences used for different purposes.
func NewNonces(seed *ElementModQ, headers ...interface{}) *Nonces {
	if len(headers) > 0 {
		items := append([]interface{}{seed}, headers...)
		seed = seed.ctx.HashElements(items...)
	}
	return &Nonces{seed: seed}
}

// Get returns element i of the sequence.
func (n *Nonces) Get(i int) *ElementModQ {
	return n.seed.ctx.HashElements(n.seed, i)
}

// GetWithHeaders returns element i of a sequence further separated by
// headers.
func (n *Nonces) GetWithHeaders(i int, headers ...interface{}) *ElementModQ {
	items := append([]interface{}{n.seed, i}, headers...)
	return n.seed.ctx.HashElements(items...)
}

// Take returns the first count elements.
func (n *Nonces) Take(count int) []*ElementModQ {
	out := make([]*ElementModQ, count)
	for i := range out {
		out[i] = n.Get(i)
	}
	return out
}
