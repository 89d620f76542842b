package commands

import (
	"context"
	"flag"
	"io"

	"todoremote/internal/config"
	"todoremote/internal/service"
)

func init() {
	Register(&ActivateCmd{})
}

// ActivateCmd marks a task active again. The REST backend has no endpoint
// for this, so against it the command succeeds without changing anything.
type ActivateCmd struct {
	byID bool
}

func (c *ActivateCmd) Name() string       { return "activate" }
func (c *ActivateCmd) Aliases() []string  { return nil }
func (c *ActivateCmd) Synopsis() string   { return "Mark a task active" }
func (c *ActivateCmd) Usage() string      { return "todoremote activate [--id] <ref>" }
func (c *ActivateCmd) NeedsBackend() bool { return true }

func (c *ActivateCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

func (c *ActivateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runTaskMutation(ctx, cfg, svc, args, c.byID, out, errOut, svc.ActivateTask)
}
