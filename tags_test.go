package todotxt

import (
	"reflect"
	"testing"
)

func TestTagsClassification(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []Tag
	}{
		{
			name:        "no tags",
			description: "call mom",
			want:        []Tag{},
		},
		{
			name:        "empty description",
			description: "",
			want:        []Tag{},
		},
		{
			name:        "context at the end",
			description: "Thank Mom for the meatballs @phone",
			want:        []Tag{{Kind: TagContext, Start: 28, End: 34}},
		},
		{
			name:        "project and context",
			description: "write a +todo.txt parser in @rust",
			want: []Tag{
				{Kind: TagProject, Start: 8, End: 17},
				{Kind: TagContext, Start: 28, End: 33},
			},
		},
		{
			name:        "special key value",
			description: "pay rent due:2021-03-01",
			want:        []Tag{{Kind: TagSpecial, Start: 9, End: 23}},
		},
		{
			name:        "context wins over special",
			description: "@foo:bar",
			want:        []Tag{{Kind: TagContext, Start: 0, End: 8}},
		},
		{
			name:        "project wins over special",
			description: "+release:v2",
			want:        []Tag{{Kind: TagProject, Start: 0, End: 11}},
		},
		{
			name:        "tags separated by runs of whitespace",
			description: "@home \t  +chores  sweep",
			want: []Tag{
				{Kind: TagContext, Start: 0, End: 5},
				{Kind: TagProject, Start: 9, End: 16},
			},
		},
		{
			name:        "multi-byte text around a tag",
			description: "café visit @café",
			want:        []Tag{{Kind: TagContext, Start: 12, End: 18}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Tags{data: tt.description}
			got := it.Collect()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tags of %q:\n got %+v\nwant %+v", tt.description, got, tt.want)
			}
		})
	}
}

// Indexing the description by a tag's span yields exactly the matched
// word, marker included.
func TestTagSpansIndexDescription(t *testing.T) {
	task := ParseTask("x write a +todo.txt parser in @rust due:2021-03-01")
	description := task.Description()

	want := []string{"+todo.txt", "@rust", "due:2021-03-01"}
	var got []string
	tags := task.Tags()
	for tag, ok := tags.Next(); ok; tag, ok = tags.Next() {
		if tag.Start > tag.End || tag.End > len(description) {
			t.Fatalf("span out of bounds: %+v in %q", tag, description)
		}
		if tag.In(description) != description[tag.Start:tag.End] {
			t.Errorf("In disagrees with direct slicing for %+v", tag)
		}
		got = append(got, tag.In(description))
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tag words: got %v, want %v", got, want)
	}
}

// Tags are re-derived on every call, so two scans of the same task always
// agree.
func TestTagsRescanIsIdempotent(t *testing.T) {
	task := ParseTask("(B) Schedule Goodwill pickup +GarageSale @phone")

	first := task.Tags()
	second := task.Tags()
	if got, want := first.Collect(), second.Collect(); !reflect.DeepEqual(got, want) {
		t.Errorf("rescan: got %+v, want %+v", got, want)
	}
}

func TestTagsFusedAfterExhaustion(t *testing.T) {
	it := Tags{data: "@only"}
	if _, ok := it.Next(); !ok {
		t.Fatal("Next: no first tag")
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("Next after exhaustion: got a tag, want ok=false")
		}
	}
}

func TestTagKindString(t *testing.T) {
	tests := []struct {
		kind TagKind
		want string
	}{
		{kind: TagContext, want: "CONTEXT"},
		{kind: TagProject, want: "PROJECT"},
		{kind: TagSpecial, want: "SPECIAL"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TagKind(%d).String: got %q, want %q", tt.kind, got, tt.want)
		}
	}
}
