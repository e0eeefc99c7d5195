package todotxt

import "strings"

// Iter is a double-ended iterator over the tasks of a multi-line input.
//
// Next and NextBack consume lines from opposite ends of the same window,
// so the two directions can be mixed; they meet in the middle. Blank
// lines produce no task, and every non-blank line produces exactly one.
// Each task's description aliases the input, which must therefore outlive
// any tasks that have not been cloned.
type Iter struct {
	data string
	head int
	tail int
}

// Tasks returns an iterator over the tasks contained in input. The input
// is read-only for the iterator's lifetime; it is never mutated or copied.
func Tasks(input string) *Iter {
	return &Iter{data: input, tail: len(input)}
}

// Next parses and returns the next task from the front of the input, or
// ok=false once all lines are consumed. The iterator is fused: after
// exhaustion it keeps returning ok=false.
func (it *Iter) Next() (task Task, ok bool) {
	for it.head < it.tail {
		line, next := it.frontLine()
		it.head = next
		line = strings.TrimSpace(line)
		if line != "" {
			return ParseTask(line), true
		}
	}
	return Task{}, false
}

// NextBack parses and returns the next task from the back of the input,
// or ok=false once all lines are consumed.
func (it *Iter) NextBack() (task Task, ok bool) {
	for it.head < it.tail {
		line, next := it.backLine()
		it.tail = next
		line = strings.TrimSpace(line)
		if line != "" {
			return ParseTask(line), true
		}
	}
	return Task{}, false
}

// Collect drains the remaining tasks, in order, into a slice.
func (it *Iter) Collect() []Task {
	tasks := make([]Task, 0)
	for task, ok := it.Next(); ok; task, ok = it.Next() {
		tasks = append(tasks, task)
	}
	return tasks
}

// frontLine returns the first line of the window and the window start that
// excludes it and its terminator.
func (it *Iter) frontLine() (line string, next int) {
	if i := strings.IndexByte(it.data[it.head:it.tail], '\n'); i >= 0 {
		return it.data[it.head : it.head+i], it.head + i + 1
	}
	return it.data[it.head:it.tail], it.tail
}

// backLine returns the last line of the window and the window end that
// excludes it.
func (it *Iter) backLine() (line string, next int) {
	window := it.data[it.head:it.tail]
	// A trailing newline terminates the previous line rather than
	// opening an empty final one.
	window = strings.TrimSuffix(window, "\n")
	if i := strings.LastIndexByte(window, '\n'); i >= 0 {
		return window[i+1:], it.head + i + 1
	}
	return window, it.head
}
