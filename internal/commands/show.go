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
	Register(&ShowCmd{})
}

// ShowCmd prints one task from the refreshed task list.
type ShowCmd struct {
	byID bool
}

func (c *ShowCmd) Name() string       { return "show" }
func (c *ShowCmd) Aliases() []string  { return nil }
func (c *ShowCmd) Synopsis() string   { return "Show a task" }
func (c *ShowCmd) Usage() string      { return "todoremote show [--id] <ref>" }
func (c *ShowCmd) NeedsBackend() bool { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args, c.byID)
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
	if ref.ID != "" {
		// Positions were resolved against a fresh list already.
		svc.RefreshTask(ctx, id)
	}

	task, err := first(ctx, svc.ObserveTask(id).Subscribe())
	if err != nil {
		return reportError(errOut, ref.String(), err)
	}

	output.FormatTaskDetail(out, task)
	return exitcode.Success
}
