package source

import "testing"

func TestNewSplitsLines(t *testing.T) {
	f := New("a.mw", "let a;\nlet b;\n")
	if len(f.Lines) != 3 {
		t.Fatalf("expected 3 lines (trailing empty), got %d: %#v", len(f.Lines), f.Lines)
	}
	if f.Lines[0] != "let a;" || f.Lines[1] != "let b;" || f.Lines[2] != "" {
		t.Fatalf("unexpected line split: %#v", f.Lines)
	}
}

func TestEmpty(t *testing.T) {
	f := Empty()
	if f.Path != "" || f.Text != "" {
		t.Fatalf("expected zero-valued File, got %#v", f)
	}
	if len(f.Lines) != 1 || f.Lines[0] != "" {
		t.Fatalf("expected a single empty line, got %#v", f.Lines)
	}
}

func TestGraphemesSplitsClusters(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"combining mark stays one cluster", "école", []string{"é", "c", "o", "l", "e"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Graphemes(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("Graphemes(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Graphemes(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestLineGraphemesOutOfRange(t *testing.T) {
	f := New("a.mw", "abc")
	if g := f.LineGraphemes(0); g != nil {
		t.Fatalf("expected nil for line 0, got %#v", g)
	}
	if g := f.LineGraphemes(2); g != nil {
		t.Fatalf("expected nil for out-of-range line, got %#v", g)
	}
	if g := f.LineGraphemes(1); len(g) != 3 {
		t.Fatalf("expected 3 graphemes on line 1, got %#v", g)
	}
}

func TestSpanSingleLine(t *testing.T) {
	oneLine := OneLine(1, 1, 4)
	if !oneLine.SingleLine() {
		t.Fatalf("expected OneLine span to report single-line")
	}

	multi := MultiLine(1, 1, 2, 3)
	if multi.SingleLine() {
		t.Fatalf("expected MultiLine span with differing lines to report not single-line")
	}
}
