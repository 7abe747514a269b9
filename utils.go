package main

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ansiEnd reports whether b terminates a CSI escape sequence.
func ansiEnd(b rune) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// spliceCell replaces the visible cell at column col of a styled line with
// the given (already styled) cell string, preserving the styling of the rest
// of the line. Escape sequences seen before the cell are re-applied after it
// so the tail keeps its colors. Lines here are ASCII-plus-symbols, every
// visible rune one cell wide.
func spliceCell(line string, col int, cell string) string {
	if col < 0 {
		return line
	}
	var out strings.Builder
	out.Grow(len(line) + len(cell) + 16)
	var active strings.Builder // SGR state accumulated before the splice point
	visible := 0
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[' {
			start := i
			i += 2
			for i < len(runes) && !ansiEnd(runes[i]) {
				i++
			}
			if i < len(runes) {
				seq := string(runes[start : i+1])
				out.WriteString(seq)
				if visible <= col {
					active.WriteString(seq)
				}
			}
			continue
		}
		if visible == col {
			out.WriteString("\x1b[0m")
			out.WriteString(cell)
			out.WriteString(active.String())
			visible++
			continue
		}
		out.WriteRune(r)
		visible++
	}
	if visible <= col {
		// Line is shorter than the splice column: pad out to it.
		out.WriteString(strings.Repeat(" ", col-visible))
		out.WriteString("\x1b[0m")
		out.WriteString(cell)
	}
	return out.String()
}

// stripANSI removes escape sequences, leaving the plain visible text.
func stripANSI(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[' {
			i += 2
			for i < len(runes) && !ansiEnd(runes[i]) {
				i++
			}
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// visibleWidth counts display cells, ignoring escape sequences.
func visibleWidth(s string) int {
	return len([]rune(stripANSI(s)))
}

// copyTextCmd writes text to the system clipboard off the update loop.
func copyTextCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardDoneMsg{err: clipboard.WriteAll(text)}
	}
}
