package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoremote/internal/config"
	"todoremote/internal/exitcode"
	"todoremote/internal/output"
	"todoremote/internal/service"
)

func init() {
	Register(&GetCmd{})
}

// GetCmd looks a task up through the legacy single-task path, which reads
// the local seed data after a simulated delay.
type GetCmd struct{}

func (c *GetCmd) Name() string       { return "get" }
func (c *GetCmd) Aliases() []string  { return nil }
func (c *GetCmd) Synopsis() string   { return "Look up a seed task by ID (slow)" }
func (c *GetCmd) Usage() string      { return "todoremote get <id>" }
func (c *GetCmd) NeedsBackend() bool { return true }

func (c *GetCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *GetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args, true)
	if err != nil {
		if err == ErrTaskRefRequired {
			fmt.Fprintln(errOut, "error: task id required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	result := svc.GetTask(ctx, ref.ID)
	switch result.Status() {
	case service.StatusSuccess:
		task, _ := result.Value()
		output.FormatTaskDetail(out, task)
		return exitcode.Success
	case service.StatusError:
		return reportError(errOut, ref.ID, result.Err())
	default:
		fmt.Fprintln(errOut, "error: lookup did not complete")
		return exitcode.BackendError
	}
}
