package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsoniclang/tsonic/internal/diagnostics"
)

func TestPrintDiagnosticsPlainNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	diags := []*diagnostics.Diagnostic{
		diagnostics.New(diagnostics.PhaseResolver, diagnostics.CodeModuleNotFound, diagnostics.Location{File: "a.tsn"}, "a.tsn"),
		diagnostics.NewWarning(diagnostics.PhaseResolver, diagnostics.CodeDefaultImportLocal, diagnostics.Location{File: "b.tsn"}, "./b"),
	}

	printDiagnostics(&buf, diags, true)
	out := buf.String()
	if !strings.Contains(out, "TSN1001") {
		t.Errorf("expected TSN1001 in output, got %q", out)
	}
	if !strings.Contains(out, "TSN1090") {
		t.Errorf("expected TSN1090 in output, got %q", out)
	}
	// bytes.Buffer is never a terminal, so ANSI escapes must never appear
	// regardless of the noColor flag.
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI escape codes against a non-terminal writer, got %q", out)
	}
}
