package todotxt

import (
	"unicode"
	"unicode/utf8"
)

// TagKind classifies a description word as a context, project, or special
// metadata tag.
type TagKind uint8

const (
	// TagContext marks a word beginning with '@'.
	TagContext TagKind = iota
	// TagProject marks a word beginning with '+'.
	TagProject
	// TagSpecial marks a word containing ':' that is neither a context
	// nor a project tag.
	TagSpecial
)

// String returns the serialized name of the kind: CONTEXT, PROJECT, or
// SPECIAL.
func (k TagKind) String() string {
	switch k {
	case TagContext:
		return "CONTEXT"
	case TagProject:
		return "PROJECT"
	case TagSpecial:
		return "SPECIAL"
	}
	return "UNKNOWN"
}

// Tag is one metadata word within a task's description, identified by its
// byte span rather than a copy of its text. Start and End are offsets into
// the owning task's description, so description[tag.Start:tag.End] is
// exactly the matched word, including its leading '@' or '+'.
type Tag struct {
	Kind  TagKind
	Start int
	End   int
}

// In returns the tag's text by slicing the description it was scanned
// from.
func (t Tag) In(description string) string {
	return description[t.Start:t.End]
}

// Tags is a lazy iterator over the tags of a task's description. Words are
// classified one at a time as Next is called; non-tag words are skipped.
// Obtain a fresh iterator from Task.Tags to restart the scan.
type Tags struct {
	data string
	pos  int
}

// Next returns the next tag in the description, or ok=false when the scan
// has passed the final word. After that it keeps returning ok=false.
func (it *Tags) Next() (tag Tag, ok bool) {
	for {
		start, end, ok := it.nextWord()
		if !ok {
			return Tag{}, false
		}
		word := it.data[start:end]
		switch {
		case word[0] == '@':
			return Tag{Kind: TagContext, Start: start, End: end}, true
		case word[0] == '+':
			return Tag{Kind: TagProject, Start: start, End: end}, true
		case containsColon(word):
			return Tag{Kind: TagSpecial, Start: start, End: end}, true
		}
	}
}

// Collect drains the iterator into a slice. An empty description yields an
// empty, non-nil slice.
func (it *Tags) Collect() []Tag {
	tags := make([]Tag, 0)
	for tag, ok := it.Next(); ok; tag, ok = it.Next() {
		tags = append(tags, tag)
	}
	return tags
}

// nextWord scans forward to the next whitespace-delimited word and returns
// its byte span. The scan walks runes, not bytes, so multi-byte
// whitespace delimits words and a multi-byte final character is spanned in
// full.
func (it *Tags) nextWord() (start, end int, ok bool) {
	i := it.pos
	for i < len(it.data) {
		r, size := utf8.DecodeRuneInString(it.data[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	if i >= len(it.data) {
		it.pos = len(it.data)
		return 0, 0, false
	}
	start = i
	for i < len(it.data) {
		r, size := utf8.DecodeRuneInString(it.data[i:])
		if unicode.IsSpace(r) {
			break
		}
		i += size
	}
	it.pos = i
	return start, i, true
}

func containsColon(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] == ':' {
			return true
		}
	}
	return false
}
