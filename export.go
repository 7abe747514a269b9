package main

import (
	"fmt"
	"image/color"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// exportSnapshotCmd renders the full page to a PNG off the update loop.
func exportSnapshotCmd(lines []string, path string) tea.Cmd {
	snapshot := make([]string, len(lines))
	for i, line := range lines {
		snapshot[i] = stripANSI(line)
	}
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: exportPNG(snapshot, path)}
	}
}

// exportPNG draws plain page lines into a monospace-rendered image.
func exportPNG(lines []string, filename string) error {
	if len(lines) == 0 {
		return fmt.Errorf("nothing to export")
	}

	charWidth := 7.2
	charHeight := 14.0
	padding := 2

	maxCols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxCols {
			maxCols = n
		}
	}
	if maxCols == 0 {
		return fmt.Errorf("nothing to export")
	}

	imageWidth := int(float64(maxCols+2*padding) * charWidth)
	imageHeight := int(float64(len(lines)+2*padding) * charHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for row, line := range lines {
		for col, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			x := float64(col+padding) * charWidth
			y := float64(row+padding)*charHeight + charHeight*0.75
			dc.DrawString(string(r), x, y)
		}
	}

	return dc.SavePNG(filename)
}
