package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoremote/internal/config"
	"todoremote/internal/exitcode"
	"todoremote/internal/service"
)

func init() {
	Register(&ClearCmd{})
	Register(&PurgeCmd{})
}

// ClearCmd removes completed tasks.
type ClearCmd struct{}

func (c *ClearCmd) Name() string       { return "clear" }
func (c *ClearCmd) Aliases() []string  { return nil }
func (c *ClearCmd) Synopsis() string   { return "Remove completed tasks (local seed data)" }
func (c *ClearCmd) Usage() string      { return "todoremote clear" }
func (c *ClearCmd) NeedsBackend() bool { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runBulk(ctx, cfg, svc.ClearCompletedTasks, args, out, errOut)
}

// PurgeCmd removes every task.
type PurgeCmd struct {
	force bool
}

func (c *PurgeCmd) Name() string       { return "purge" }
func (c *PurgeCmd) Aliases() []string  { return nil }
func (c *PurgeCmd) Synopsis() string   { return "Remove all tasks (local seed data)" }
func (c *PurgeCmd) Usage() string      { return "todoremote purge --force" }
func (c *PurgeCmd) NeedsBackend() bool { return true }

func (c *PurgeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *PurgeCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !c.force {
		fmt.Fprintln(errOut, "error: purge removes every task; rerun with --force")
		return exitcode.UserError
	}
	return runBulk(ctx, cfg, svc.DeleteAllTasks, args, out, errOut)
}

func runBulk(ctx context.Context, cfg *config.Config, fn func(context.Context) error, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if err := fn(ctx); err != nil {
		return reportError(errOut, "", err)
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
