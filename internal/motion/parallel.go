package motion

import (
	"runtime"
	"sync"
)

// Row chunks smaller than this are not worth a goroutine.
const minRowChunk = 256

// ParallelFor executes fn over disjoint chunks of [0, n).
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelMotions runs fn once per motion, concurrently. Callers must
// guarantee the motions write to disjoint rows.
func ParallelMotions(motions []Motion, fn func(Motion)) {
	var wg sync.WaitGroup
	wg.Add(len(motions))

	for _, mo := range motions {
		go func(m Motion) {
			defer wg.Done()
			fn(m)
		}(mo)
	}

	wg.Wait()
}
