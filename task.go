package todotxt

import (
	"encoding/json"
	"strings"
)

// Task is a single complete or incomplete task.
//
// The description is a sub-slice of the line the task was parsed from, so
// a Task costs no string allocations and remains a read-only view into the
// caller's input. Use Clone to decouple a Task's lifetime from that input.
type Task struct {
	state State
	text  string
}

// ParseTask parses one task line. Leading and trailing whitespace is
// ignored. Parsing cannot fail: a line matching none of the grammar's
// leading fields becomes an incomplete task whose description is the whole
// trimmed line.
func ParseTask(line string) Task {
	state, rest := parseState(strings.TrimSpace(line))
	// Field parsers consume their separator, but a partially matched
	// field can leave its own padding behind.
	text := strings.TrimLeft(rest, " \t")
	return Task{state: state, text: text}
}

// State returns the task's state for refinement into the distinct data of
// a complete or incomplete task:
//
//	switch s := task.State().(type) {
//	case todotxt.Complete:
//		// s.Dates, if non-nil, holds the completion and creation dates.
//	case todotxt.Incomplete:
//		// s.Priority and s.Created are independently optional.
//	}
func (t Task) State() State {
	return t.state
}

// IsComplete reports whether the task is complete.
func (t Task) IsComplete() bool {
	_, ok := t.state.(Complete)
	return ok
}

// CompletionDate returns the task's completion date. For an incomplete
// task it is guaranteed to be nil.
func (t Task) CompletionDate() *Date {
	if s, ok := t.state.(Complete); ok && s.Dates != nil {
		d := s.Dates.Completed
		return &d
	}
	return nil
}

// CreationDate returns the task's creation date, or nil when the line did
// not carry one.
func (t Task) CreationDate() *Date {
	switch s := t.state.(type) {
	case Complete:
		if s.Dates != nil {
			d := s.Dates.Created
			return &d
		}
	case Incomplete:
		return s.Created
	}
	return nil
}

// Priority returns the task's priority. For a complete task it is
// guaranteed to be nil.
func (t Task) Priority() *Priority {
	if s, ok := t.state.(Incomplete); ok {
		return s.Priority
	}
	return nil
}

// Description returns the task's free-text description, including any
// unscanned tag words.
func (t Task) Description() string {
	return t.text
}

// Tags returns a lazy iterator over the metadata tags embedded in the
// description. Tags are never cached: every call re-derives them from the
// description, so two iterations over the same task always agree.
func (t Task) Tags() Tags {
	return Tags{data: t.text}
}

// Clone returns a copy of the task whose description owns its own storage,
// independent of the input buffer the task was parsed from.
func (t Task) Clone() Task {
	return Task{state: t.state, text: strings.Clone(t.text)}
}

// String renders the task in canonical todo.txt form: the completion
// marker, priority, and dates that are present, followed by the
// description. Malformed input is not guaranteed to round-trip
// byte-for-byte.
func (t Task) String() string {
	var b strings.Builder
	if t.IsComplete() {
		b.WriteString("x ")
	}
	if p := t.Priority(); p != nil {
		b.WriteString(p.String())
		b.WriteByte(' ')
	}
	if d := t.CompletionDate(); d != nil {
		b.WriteString(d.String())
		b.WriteByte(' ')
	}
	if d := t.CreationDate(); d != nil {
		b.WriteString(d.String())
		b.WriteByte(' ')
	}
	b.WriteString(t.text)
	return b.String()
}

type tagLocationJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type tagJSON struct {
	Type     string          `json:"type"`
	Location tagLocationJSON `json:"location"`
}

type taskJSON struct {
	CompletionDate *Date     `json:"completion_date,omitempty"`
	CreationDate   *Date     `json:"creation_date,omitempty"`
	Description    string    `json:"description"`
	Priority       string    `json:"priority,omitempty"`
	Tags           []tagJSON `json:"tags"`
	Type           string    `json:"type"`
}

// MarshalJSON encodes the task's structured projection. Absent optional
// fields are omitted entirely; the tags list is always present, possibly
// empty.
func (t Task) MarshalJSON() ([]byte, error) {
	out := taskJSON{
		CompletionDate: t.CompletionDate(),
		CreationDate:   t.CreationDate(),
		Description:    t.text,
		Tags:           make([]tagJSON, 0),
		Type:           "INCOMPLETE",
	}
	if t.IsComplete() {
		out.Type = "COMPLETE"
	}
	if p := t.Priority(); p != nil {
		out.Priority = string(p.Letter())
	}

	tags := t.Tags()
	for tag, ok := tags.Next(); ok; tag, ok = tags.Next() {
		out.Tags = append(out.Tags, tagJSON{
			Type:     tag.Kind.String(),
			Location: tagLocationJSON{Start: tag.Start, End: tag.End},
		})
	}
	return json.Marshal(out)
}
