package commands

import (
	"context"
	"fmt"
	"io"

	"todoremote/internal/config"
	"todoremote/internal/exitcode"
	"todoremote/internal/service"
)

// runTaskMutation parses a task reference from args, resolves it to an ID
// and applies fn to it. Shared by done, activate and rm.
func runTaskMutation(ctx context.Context, cfg *config.Config, svc service.Service, args []string, byID bool, out, errOut io.Writer, fn func(context.Context, string) error) int {
	ref, err := ParseTaskRef(args, byID)
	if err != nil {
		if err == ErrTaskRefRequired {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	id, err := resolveTaskID(ctx, svc, ref)
	if err != nil {
		return reportError(errOut, ref.String(), err)
	}

	if err := fn(ctx, id); err != nil {
		return reportError(errOut, ref.String(), err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
