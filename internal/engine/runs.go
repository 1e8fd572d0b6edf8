package engine

import "unicode/utf8"

// splitRuns cuts runs at rune offset at.
func splitRuns(runs []Text, at int) ([]Text, []Text) {
	var left, right []Text
	pos := 0
	for _, run := range runs {
		n := utf8.RuneCountInString(run.Text)
		switch {
		case pos+n <= at:
			left = append(left, run)
		case pos >= at:
			right = append(right, run)
		default:
			rs := []rune(run.Text)
			cut := at - pos
			left = append(left, Text{Text: string(rs[:cut]), Marks: run.Marks})
			right = append(right, Text{Text: string(rs[cut:]), Marks: run.Marks})
		}
		pos += n
	}
	return left, right
}

// normalizeRuns drops empty runs and merges neighbours with equal marks.
func normalizeRuns(runs []Text) []Text {
	out := make([]Text, 0, len(runs))
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		if len(run.Marks) == 0 {
			run.Marks = nil
		}
		if n := len(out); n > 0 && out[n-1].Marks.Equal(run.Marks) {
			out[n-1].Text += run.Text
			continue
		}
		out = append(out, run)
	}
	return out
}

// mapRuns rewrites the marks of every character in [from, to).
func mapRuns(runs []Text, from, to int, fn func(MarkSet) MarkSet) []Text {
	left, rest := splitRuns(runs, from)
	mid, right := splitRuns(rest, to-from)
	out := make([]Text, 0, len(runs)+2)
	out = append(out, left...)
	for _, run := range mid {
		out = append(out, Text{Text: run.Text, Marks: fn(run.Marks)})
	}
	out = append(out, right...)
	return normalizeRuns(out)
}

// stripMarks removes every mark from runs.
func stripMarks(runs []Text) []Text {
	out := make([]Text, len(runs))
	for i, run := range runs {
		out[i] = Text{Text: run.Text}
	}
	return normalizeRuns(out)
}

// insertRun places text with marks at rune offset at.
func insertRun(runs []Text, at int, text string, marks MarkSet) []Text {
	left, right := splitRuns(runs, at)
	out := make([]Text, 0, len(runs)+1)
	out = append(out, left...)
	out = append(out, Text{Text: text, Marks: marks})
	out = append(out, right...)
	return normalizeRuns(out)
}
