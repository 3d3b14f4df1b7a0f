// Package textwrap implements greedy word wrapping and field centering measured
// in terminal cells.
package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width reports the number of terminal cells s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Center pads s with spaces so it sits in the middle of a field of width
// cells. Odd padding puts the extra space on the right. Text at least as wide
// as the field is returned unchanged.
func Center(s string, width int) string {
	w := Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Truncate cuts s to at most width cells, never splitting a rune.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	head, _ := cut(s, width)
	if Width(head) > width {
		return ""
	}
	return head
}

// Wrap splits text into lines no wider than width cells. Any run of
// whitespace, newlines included, separates words; words are joined by a
// single space. A word wider than width fills what is left of the current
// line and continues on the following lines. A single rune wider than width
// is the only thing that can exceed it, and it gets a line of its own.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range strings.Fields(text) {
		w := Width(word)
		switch {
		case curW == 0 && w <= width:
			cur.WriteString(word)
			curW = w
			continue
		case curW > 0 && curW+1+w <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + w
			continue
		}

		if w <= width {
			flush()
			cur.WriteString(word)
			curW = w
			continue
		}

		if curW > 0 {
			if room := width - curW - 1; room > 0 {
				head, tail := cut(word, room)
				if head != "" && Width(head) <= room {
					cur.WriteByte(' ')
					cur.WriteString(head)
					word = tail
				}
			}
			flush()
		}
		for Width(word) > width {
			head, tail := cut(word, width)
			lines = append(lines, head)
			word = tail
		}
		if word != "" {
			cur.WriteString(word)
			curW = Width(word)
		}
	}
	flush()
	return lines
}

// Fill wraps text and joins the lines with newlines. There is no trailing
// newline.
func Fill(text string, width int) string {
	return strings.Join(Wrap(text, width), "\n")
}

// cut returns the longest prefix of s that fits in width cells and the rest.
// At least one rune is taken so callers always make progress.
func cut(s string, width int) (string, string) {
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && i > 0 {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}
