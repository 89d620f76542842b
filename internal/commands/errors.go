package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"todoremote/internal/exitcode"
	"todoremote/internal/service"
)

// reportError prints err for the task reference ref and returns the exit
// code it maps to. With no ref, a not-found error is a backend failure
// rather than a missing task.
func reportError(errOut io.Writer, ref string, err error) int {
	switch {
	case errors.Is(err, ErrTaskRefRequired):
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	case errors.Is(err, errOutOfRange):
		fmt.Fprintf(errOut, "error: task number out of range: %s\n", ref)
		return exitcode.UserError
	case ref != "" && errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(errOut, "error: task not found: %s\n", ref)
		return exitcode.UserError
	case strings.Contains(err.Error(), "token expired or revoked"):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
