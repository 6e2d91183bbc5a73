package pack

import (
	"runtime"
	"sync"
)

// DefaultBatchSize caps how many compressed payloads sit in memory at once
// when workers run ahead of assembly. Within a batch every payload is
// buffered; between batches the pool drains completely.
const DefaultBatchSize = 1024

type job struct {
	index int
	src   SourceEntry
}

// compressAll runs compressFile for every source entry across a pool of
// workers and returns the results in source order. Each worker writes to a
// disjoint index of a pre-sized result slice, so slot writes need no
// locking and completion order never leaks into output order. The first
// failure stops dispatch and is returned once the in-flight batch settles;
// any results already produced are discarded.
func compressAll(sources []SourceEntry, workers, batchSize int) ([]CompressedEntry, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	results := make([]CompressedEntry, len(sources))
	for start := 0; start < len(sources); start += batchSize {
		end := min(start+batchSize, len(sources))
		if err := compressBatch(sources[start:end], results[start:end], workers); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func compressBatch(sources []SourceEntry, results []CompressedEntry, workers int) error {
	jobs := make(chan job)
	errChan := make(chan error, workers)
	var wg sync.WaitGroup

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for j := range jobs {
				entry, err := compressFile(j.src)
				if err != nil {
					errChan <- err
					return
				}
				results[j.index] = entry
			}
		}()
	}

	// A failed worker exits without draining jobs, so dispatch watches
	// errChan to avoid blocking on a dead pool.
	var firstErr error
dispatch:
	for i, src := range sources {
		select {
		case jobs <- job{index: i, src: src}:
		case err := <-errChan:
			firstErr = err
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr == nil {
		select {
		case firstErr = <-errChan:
		default:
		}
	}
	return firstErr
}
