package todotxt

// State is the disjoint state of complete and incomplete tasks.
//
// Exactly two types implement it: Complete and Incomplete. Keeping the two
// shapes disjoint makes the format's invariants unrepresentable to violate:
// a complete task has no priority field to set, and an incomplete task has
// no completion date.
type State interface {
	isState()
}

// CompletionDates pairs the completion date and creation date of a
// complete task. The format only permits the two together, so the pair is
// a single unit: a Complete state carries both or neither.
type CompletionDates struct {
	Completed Date
	Created   Date
}

// Complete is the state of a finished task, written with a leading "x".
type Complete struct {
	Dates *CompletionDates
}

// Incomplete is the state of an unfinished task, optionally carrying a
// priority and a creation date. Both fields are independently optional;
// nil means absent.
type Incomplete struct {
	Priority *Priority
	Created  *Date
}

func (Complete) isState()   {}
func (Incomplete) isState() {}

// skipSpace consumes one or more spaces or tabs. Zero whitespace is a
// non-match.
func skipSpace(s string) (rest string, ok bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i == 0 {
		return s, false
	}
	return s[i:], true
}

// completionMarker consumes the literal "x" and its mandatory trailing
// whitespace. A bare "x" with nothing after it is a non-match and stays
// part of the description.
func completionMarker(s string) (rest string, ok bool) {
	if len(s) == 0 || s[0] != 'x' {
		return s, false
	}
	rest, ok = skipSpace(s[1:])
	if !ok {
		return s, false
	}
	return rest, true
}

// dateField consumes a date followed by mandatory whitespace.
func dateField(s string) (d Date, rest string, ok bool) {
	d, rest, ok = parseDate(s)
	if !ok {
		return Date{}, s, false
	}
	rest, ok = skipSpace(rest)
	if !ok {
		return Date{}, s, false
	}
	return d, rest, true
}

// datePair consumes "completion date, creation date", each followed by
// whitespace. The pair is all-or-nothing: if the second date is missing or
// malformed, neither is consumed.
func datePair(s string) (dates CompletionDates, rest string, ok bool) {
	completed, rest, ok := dateField(s)
	if !ok {
		return CompletionDates{}, s, false
	}
	created, rest, ok := dateField(rest)
	if !ok {
		return CompletionDates{}, s, false
	}
	return CompletionDates{Completed: completed, Created: created}, rest, true
}

// parseState reduces the head of a trimmed line to a State and returns the
// unconsumed remainder. It cannot fail: alternatives are tried in order
// and a line matching none of them is an Incomplete task with no priority
// and no creation date, leaving the whole line as its description.
func parseState(s string) (State, string) {
	if rest, ok := completionMarker(s); ok {
		if dates, r, ok := datePair(rest); ok {
			return Complete{Dates: &dates}, r
		}
		return Complete{}, rest
	}

	var priority *Priority
	rest := s
	if p, r, ok := parsePriority(rest); ok {
		if r, ok := skipSpace(r); ok {
			priority = &p
			rest = r
		}
	}

	var first, second *Date
	if d, r, ok := dateField(rest); ok {
		first = &d
		rest = r
		if d, r, ok := dateField(rest); ok {
			second = &d
			rest = r
		}
	}

	// An unmarked, unprioritized line carrying two leading dates is a
	// completed record by convention: the pair reads as completion date
	// then creation date, exactly as if the "x" were present. With a
	// priority in front the line stays incomplete and the second date is
	// consumed without being retained.
	if priority == nil && first != nil && second != nil {
		return Complete{Dates: &CompletionDates{Completed: *first, Created: *second}}, rest
	}
	return Incomplete{Priority: priority, Created: first}, rest
}
