package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Text", ""},
		{"Header 1", "alt+1"},
		{"Code block", "alt+c"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight}, 2)
	want := []string{
		"Text             ",
		"Header 1    alt+1",
		"Code block  alt+c",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	got := Format([][]string{{"日本", "x"}, {"ab", "y"}}, nil, 1)
	if got[1] != "ab   y" {
		t.Fatalf("expected wide cells to count double, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil, 2); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}
