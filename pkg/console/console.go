// Package console turns a glyph and a background designation into a printable
// character cell, either wrapped in ANSI SGR background sequences or verbatim.
package console

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Background designates the colour behind a cell.
type Background int

const (
	// Black is rendered with SGR background 43.
	Black Background = iota
	// White is rendered with SGR background 47.
	White
)

func (b Background) String() string {
	if b == Black {
		return "BLACK"
	}
	return "WHITE"
}

// Modes accepted by ForMode.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Console formats a single character cell. An empty glyph renders as a space.
type Console interface {
	Cell(glyph string, bg Background) string
}

// ansiColors maps a background to the palette entry whose background SGR code
// is 43 (yellow) or 47 (white).
var ansiColors = map[Background]termenv.ANSIColor{
	Black: termenv.ANSIYellow,
	White: termenv.ANSIWhite,
}

type ansiConsole struct{}

// ANSI returns a console that wraps every cell in background escape
// sequences followed by a reset.
func ANSI() Console {
	return ansiConsole{}
}

func (ansiConsole) Cell(glyph string, bg Background) string {
	return termenv.ANSI.String(cellText(glyph)).Background(ansiColors[bg]).String()
}

type plainConsole struct{}

// Plain returns a console that emits the glyph verbatim.
func Plain() Console {
	return plainConsole{}
}

func (plainConsole) Cell(glyph string, _ Background) string {
	return cellText(glyph)
}

// Detect picks ANSI when w is a terminal that honours SGR and Plain otherwise.
// Legacy Windows consoles are treated as plain.
func Detect(w io.Writer) Console {
	if isTerminal(w) && runtime.GOOS != "windows" {
		return ANSI()
	}
	return Plain()
}

// ForMode resolves a configured mode. Unknown modes behave like auto.
func ForMode(mode string, w io.Writer) Console {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeAlways:
		return ANSI()
	case ModeNever:
		return Plain()
	default:
		return Detect(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func cellText(glyph string) string {
	if glyph == "" {
		return " "
	}
	return glyph
}
