package common

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ParallelFor calls fn(i) for every i in [0, n) on a pool of one worker per
// CPU. Workers pull indices from a shared counter, so uneven work spreads
// out. fn must be safe for concurrent use on distinct indices.
func ParallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workerCount := runtime.NumCPU()
	if workerCount > n {
		workerCount = n
	}
	if workerCount == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next uint32
	wg := sync.WaitGroup{}
	wg.Add(workerCount)
	for worker := 0; worker < workerCount; worker++ {
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddUint32(&next, 1))
				if i > n {
					return
				}
				fn(i - 1)
			}
		}()
	}
	wg.Wait()
}
