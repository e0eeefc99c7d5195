package todotxt

import (
	"runtime"
	"strings"
	"sync"
)

// ParTasks parses the tasks of input across a bounded pool of workers and
// delivers them on the returned channel, which is closed once every line
// is parsed. workers caps the pool size; zero or a negative count uses
// GOMAXPROCS.
//
// Tasks arrive in no particular order. Each worker parses whole lines
// independently and shares no mutable state with the others, so the only
// shared resource is the read-only input string. Callers that need input
// order should use Tasks instead, or collect and sort.
func ParTasks(input string, workers int) <-chan Task {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	lines := make(chan string, workers)
	out := make(chan Task, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for line := range lines {
				out <- ParseTask(line)
			}
		}()
	}

	go func() {
		it := Tasks(input)
		for {
			line, ok := it.frontRawLine()
			if !ok {
				break
			}
			lines <- line
		}
		close(lines)
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// frontRawLine pops the next non-blank trimmed line without parsing it.
func (it *Iter) frontRawLine() (string, bool) {
	for it.head < it.tail {
		line, next := it.frontLine()
		it.head = next
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}
