package todotxt

import "testing"

func TestPriorityCompare(t *testing.T) {
	tests := []struct {
		name string
		p, o Priority
		want int
	}{
		{name: "A outranks B", p: PriorityA, o: PriorityB, want: 1},
		{name: "B is below A", p: PriorityB, o: PriorityA, want: -1},
		{name: "A outranks Z", p: PriorityA, o: PriorityZ, want: 1},
		{name: "Z is below A", p: PriorityZ, o: PriorityA, want: -1},
		{name: "equal letters", p: PriorityA, o: PriorityA, want: 0},
		{name: "neighbors at the bottom", p: PriorityY, o: PriorityZ, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Compare(tt.o); got != tt.want {
				t.Errorf("Compare(%s, %s): got %d, want %d", tt.p, tt.o, got, tt.want)
			}
		})
	}
}

func TestPriorityCompareExhaustive(t *testing.T) {
	// The ordering is inverse-alphabetical across the whole range.
	for p := PriorityA; p <= PriorityZ; p++ {
		for o := PriorityA; o <= PriorityZ; o++ {
			got := p.Compare(o)
			switch {
			case p == o && got != 0:
				t.Errorf("Compare(%s, %s): got %d, want 0", p, o, got)
			case p < o && got <= 0:
				t.Errorf("Compare(%s, %s): got %d, want > 0", p, o, got)
			case p > o && got >= 0:
				t.Errorf("Compare(%s, %s): got %d, want < 0", p, o, got)
			}
		}
	}
}

func TestPriorityString(t *testing.T) {
	if got := PriorityA.String(); got != "(A)" {
		t.Errorf("String: got %q, want %q", got, "(A)")
	}
	if got := PriorityZ.String(); got != "(Z)" {
		t.Errorf("String: got %q, want %q", got, "(Z)")
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Priority
		wantRest string
		wantOK   bool
	}{
		{name: "valid marker", input: "(A) call", want: PriorityA, wantRest: " call", wantOK: true},
		{name: "last letter", input: "(Z)", want: PriorityZ, wantRest: "", wantOK: true},
		{name: "lowercase letter", input: "(a) call", wantRest: "(a) call"},
		{name: "digit", input: "(1) call", wantRest: "(1) call"},
		{name: "missing close", input: "(A call", wantRest: "(A call"},
		{name: "missing open", input: "A) call", wantRest: "A) call"},
		{name: "too short", input: "(A", wantRest: "(A"},
		{name: "empty", input: "", wantRest: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, ok := parsePriority(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parsePriority(%q): ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if rest != tt.wantRest {
				t.Errorf("parsePriority(%q): rest = %q, want %q", tt.input, rest, tt.wantRest)
			}
			if ok && got != tt.want {
				t.Errorf("parsePriority(%q): got %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
