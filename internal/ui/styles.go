package ui

import "fmt"

// ANSI256 color codes.
const (
	colorAccent = 74  // blue
	colorMuted  = 245 // medium gray
	colorGood   = 114 // green
	colorBad    = 203 // red
)

var noColor bool

func paint(code int, s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, s)
}

// RenderAccent returns s in the accent (blue) color; used for headers.
func RenderAccent(s string) string { return paint(colorAccent, s) }

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string { return paint(colorMuted, s) }

// RenderGood returns s in green.
func RenderGood(s string) string { return paint(colorGood, s) }

// RenderBad returns s in red; used for error lines.
func RenderBad(s string) string { return paint(colorBad, s) }

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}

// SetColor enables or disables color output globally.
func SetColor(enabled bool) {
	noColor = !enabled
}
