package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/colorhelper/internal/color"
	"github.com/alexisbeaulieu97/colorhelper/internal/numeric"
)

var labelStyle = lipgloss.NewStyle().Bold(true)

// supportsSwatches reports whether writer is a terminal able to show colored
// blocks.
func supportsSwatches(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// swatch renders a block filled with c. Alpha is ignored.
func swatch(c color.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
}

// padRight pads s to width terminal cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// maxWidth returns the widest cell width among values.
func maxWidth(values []string) int {
	width := 0
	for _, v := range values {
		width = max(width, runewidth.StringWidth(v))
	}
	return width
}

// rgbaText renders c as "r g b a" with 0-255 channels.
func rgbaText(c color.Color) string {
	r, g, b := c.RGB()
	return fmt.Sprintf("%s %s %s %s",
		numeric.Format(numeric.Round(r*255, 2)),
		numeric.Format(numeric.Round(g*255, 2)),
		numeric.Format(numeric.Round(b*255, 2)),
		numeric.Format(numeric.Round(c.Alpha(), 3)))
}

// optionsText renders values as sorted key=value pairs.
func optionsText(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, values[k])
	}
	return strings.Join(parts, " ")
}

func writeJSON(writer io.Writer, payload any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
