// Package todotxt parses the todo.txt task-list format.
//
// One task per line. Each line decodes independently into a Task carrying
// its completion state, optional priority and dates, and a free-text
// description. Descriptions are sub-slices of the caller's input, so
// parsing a list allocates no new string storage, and the metadata tags
// embedded in a description are scanned lazily on demand.
//
// Parsing is infallible: garbage input degrades to a minimally structured
// incomplete task rather than producing an error.
package todotxt

import "fmt"

// Priority is the priority of an incomplete task, one of the 26 letters
// A through Z written as "(A)" at the head of a line.
//
// Ordering is inverted relative to the alphabet: (A) is a higher priority
// than (B). Use Compare rather than the < and > operators, which would
// order by letter.
type Priority uint8

// The 26 priorities, highest first.
const (
	PriorityA Priority = iota
	PriorityB
	PriorityC
	PriorityD
	PriorityE
	PriorityF
	PriorityG
	PriorityH
	PriorityI
	PriorityJ
	PriorityK
	PriorityL
	PriorityM
	PriorityN
	PriorityO
	PriorityP
	PriorityQ
	PriorityR
	PriorityS
	PriorityT
	PriorityU
	PriorityV
	PriorityW
	PriorityX
	PriorityY
	PriorityZ
)

// Compare orders priorities by urgency: it returns a positive number if p
// is a higher priority than o, zero if they are equal, and a negative
// number otherwise. PriorityA.Compare(PriorityZ) > 0.
func (p Priority) Compare(o Priority) int {
	switch {
	case p == o:
		return 0
	case p < o:
		return 1
	default:
		return -1
	}
}

// Letter returns the priority's letter code, 'A' through 'Z'.
func (p Priority) Letter() byte {
	return 'A' + byte(p)
}

// String renders the priority in its todo.txt form, e.g. "(A)".
func (p Priority) String() string {
	return fmt.Sprintf("(%c)", p.Letter())
}

// parsePriority consumes a "(X)" marker from the head of s. A missing or
// malformed marker (wrong brackets, lowercase, non-letter) is a non-match,
// not an error; the caller treats the field as absent.
func parsePriority(s string) (p Priority, rest string, ok bool) {
	if len(s) < 3 || s[0] != '(' || s[2] != ')' {
		return 0, s, false
	}
	if s[1] < 'A' || s[1] > 'Z' {
		return 0, s, false
	}
	return Priority(s[1] - 'A'), s[3:], true
}
