package cli

import (
	"fmt"
	"io"

	"github.com/doeshing/rkl-go/internal/domain"
)

// RenderRun prints what a run produced: the planned commands for a dry
// run, otherwise the captured output of every executed command in order.
func RenderRun(out io.Writer, resp domain.RunResponse) {
	if resp.DryRun {
		for _, outcome := range resp.Outcomes {
			fmt.Fprintln(out, outcome.Command)
		}
		return
	}
	if output := resp.Output(); output != "" {
		fmt.Fprintln(out, output)
	}
}
