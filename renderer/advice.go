package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/fbitda"
)

// RenderAdvice writes the advice on the current terms, warnings first.
// It returns false, writing nothing, when there is no advice at all.
func RenderAdvice(w io.Writer, advice []fbitda.Advice) bool {
	printed := false
	for _, sev := range []fbitda.Severity{fbitda.SeverityWarning, fbitda.SeverityInfo} {
		ConditionalBlock(w, func(w io.Writer) bool {
			if sev == fbitda.SeverityWarning {
				fmt.Fprint(w, "## Warnings\n\n")
			} else {
				fmt.Fprint(w, "## Classification\n\n")
			}
			n := 0
			for _, a := range advice {
				if a.Severity != sev {
					continue
				}
				fmt.Fprintf(w, "* %s (`%s`)\n", a.Message, a.Code)
				n++
			}
			fmt.Fprintln(w)
			printed = printed || n > 0
			return n > 0
		})
	}
	return printed
}
