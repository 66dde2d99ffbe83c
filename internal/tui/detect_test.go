package tui

import (
	"bytes"
	"os"
	"testing"
)

func TestColorEnabled_NO_COLOR(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("EXTDESC_NO_COLOR", "")
	t.Setenv("CI", "")

	if ColorEnabled(os.Stderr) {
		t.Error("ColorEnabled() = true with NO_COLOR set")
	}
}

func TestColorEnabled_EXTDESC_NO_COLOR(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("EXTDESC_NO_COLOR", "1")
	t.Setenv("CI", "")

	if ColorEnabled(os.Stderr) {
		t.Error("ColorEnabled() = true with EXTDESC_NO_COLOR=1")
	}
}

func TestColorEnabled_CI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("EXTDESC_NO_COLOR", "")
	t.Setenv("CI", "true")

	if ColorEnabled(os.Stderr) {
		t.Error("ColorEnabled() = true with CI set")
	}
}

func TestColorEnabled_NonFileWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("EXTDESC_NO_COLOR", "")
	t.Setenv("CI", "")

	if ColorEnabled(&bytes.Buffer{}) {
		t.Error("ColorEnabled() = true for a buffer")
	}
}

func TestColorEnabled_Pipe(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("EXTDESC_NO_COLOR", "")
	t.Setenv("CI", "")

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if ColorEnabled(w) {
		t.Error("ColorEnabled() = true for a pipe")
	}
}

func TestCheck_Plain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := Check(os.Stderr); got != SymbolCheck {
		t.Errorf("Check() = %q, want %q", got, SymbolCheck)
	}
}
