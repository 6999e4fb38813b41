package egcrypto

import "sync/atomic"

type TestFollower struct {
	steps int64
	count int64
}

func (t *TestFollower) StepStart(desc string, items int) {
	atomic.AddInt64(&t.steps, 1)
}

func (t *TestFollower) Tick() {
	atomic.AddInt64(&t.count, 1)
}

func (t *TestFollower) StepDone() {}

func (t *TestFollower) ticks() int64 {
	return atomic.LoadInt64(&t.count)
}
