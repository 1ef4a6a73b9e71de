package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/tsoniclang/tsonic/internal/diagnostics"
)

// printDiagnostics writes every diagnostic to w, colorized when w is a
// terminal and noColor wasn't requested — grounded on sunholo-data-ailang's
// REPL, which gates github.com/fatih/color's SprintFunc helpers behind the
// same github.com/mattn/go-isatty check rather than always coloring.
func printDiagnostics(w io.Writer, diags []*diagnostics.Diagnostic, noColor bool) {
	plain := noColor || !isTerminal(w)

	errorf := fmt.Sprintf
	warnf := fmt.Sprintf
	if !plain {
		errorf = color.New(color.FgRed, color.Bold).Sprintf
		warnf = color.New(color.FgYellow).Sprintf
	}

	for _, d := range diags {
		switch d.Severity {
		case diagnostics.SeverityError:
			fmt.Fprintln(w, errorf("%s", d.Error()))
		case diagnostics.SeverityWarning:
			fmt.Fprintln(w, warnf("%s", d.Error()))
		default:
			fmt.Fprintln(w, d.Error())
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
