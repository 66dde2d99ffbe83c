// Package tui holds terminal detection and the styles used for console output.
package tui

import (
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// ColorEnabled reports whether styled output should be written to w.
//
// Returns false if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - EXTDESC_NO_COLOR=1 is set
//   - CI is set (build logs rarely render ANSI sequences well)
//   - w is not a terminal
func ColorEnabled(w any) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("EXTDESC_NO_COLOR") == "1" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}

	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Check renders a success mark for w.
func Check(w any) string {
	if !ColorEnabled(w) {
		return SymbolCheck
	}
	return SuccessStyle.Render(SymbolCheck)
}
