package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	t.Parallel()
	require.Equal(t, "hello", stripANSI("hello"))
	require.Equal(t, "hello", stripANSI("\x1b[1;31mhello\x1b[0m"))
	require.Equal(t, "a b", stripANSI("\x1b[38;5;205ma\x1b[0m b"))
}

func TestVisibleWidth(t *testing.T) {
	t.Parallel()
	require.Equal(t, 5, visibleWidth("hello"))
	require.Equal(t, 5, visibleWidth("\x1b[1mhello\x1b[0m"))
	require.Equal(t, 0, visibleWidth(""))
}

func TestSpliceCell_Plain(t *testing.T) {
	t.Parallel()
	out := spliceCell("hello", 1, "X")
	require.Equal(t, "hXllo", stripANSI(out))
}

func TestSpliceCell_StyledLineKeepsTailStyling(t *testing.T) {
	t.Parallel()
	line := "\x1b[31mhello\x1b[0m"
	out := spliceCell(line, 2, "X")
	require.Equal(t, "heXlo", stripANSI(out))
	// The red sequence is re-applied after the spliced cell.
	idx := strings.Index(out, "X")
	require.Contains(t, out[idx:], "\x1b[31m")
}

func TestSpliceCell_PadsShortLines(t *testing.T) {
	t.Parallel()
	out := spliceCell("ab", 5, "X")
	require.Equal(t, "ab   X", stripANSI(out))
}

func TestSpliceCell_NegativeColumn(t *testing.T) {
	t.Parallel()
	require.Equal(t, "ab", spliceCell("ab", -1, "X"))
}
