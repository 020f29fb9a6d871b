package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var bold = color.New(color.FgRed, color.Bold)

// Render writes a single bolded-red line describing err to w. It is the
// only place in the toolchain that formats an error for a human; every
// other layer just returns errors up the stack.
func Render(w io.Writer, err error) {
	fmt.Fprintln(w, bold.Sprint(err.Error()))
}
