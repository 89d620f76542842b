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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "todoremote help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todoremote                                  List all tasks
  todoremote list [common flags] [--open]
  todoremote show [common flags] [--id] <ref>
  todoremote get [common flags] <id>          Look up a local seed task (slow)
  todoremote add [common flags] [-d <description>] <title...>
  todoremote create [common flags] [-d <description>] <title...>
  todoremote done [common flags] [--id] <ref>
  todoremote complete [common flags] [--id] <ref>
  todoremote activate [common flags] [--id] <ref>
  todoremote rm [common flags] [--id] <ref>
  todoremote delete [common flags] [--id] <ref>
  todoremote clear [common flags]             Remove completed local seed tasks
  todoremote purge [common flags] --force     Remove all local seed tasks
  todoremote login [common flags] [--type <token-type>] [<access-token>]
  todoremote logout [common flags]
  todoremote help
  todoremote version

A <ref> is a task number from 'todoremote list' or a task ID.
Use --id to treat an all-digit <ref> as an ID.

Common flags:
  --config <dir>   Override config directory
  --server <url>   Override the backend URL
  --quiet          Suppress informational output
  --debug          Print debug logs and HTTP traffic to stderr
`
