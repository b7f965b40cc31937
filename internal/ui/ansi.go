package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// ColorMode selects when C emits escape sequences.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorMode applies one of "auto", "always" or "never".
func SetColorMode(mode ColorMode) error {
	switch mode {
	case ColorAuto, "":
		forceColor, disableColor = false, false
	case ColorAlways:
		forceColor, disableColor = true, false
	case ColorNever:
		forceColor, disableColor = false, true
	default:
		return fmt.Errorf("unknown color mode %q", mode)
	}
	return nil
}

// isTTY reports whether w is a terminal. Anything that is not an *os.File is not.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// C wraps s in color for text bound for stdout.
func C(color, s string) string { return CFor(os.Stdout, color, s) }

// CFor wraps s in color when colouring is enabled for w.
func CFor(w io.Writer, color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY(w) {
		return color + s + reset
	}
	return s
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, CFor(w, Current().Success, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, CFor(w, Current().Error, symCross+" "+msg)) }
