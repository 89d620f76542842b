package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"todoremote/internal/config"
	"todoremote/internal/exitcode"
	"todoremote/internal/service"
)

// Token exchange timeout
const tokenExchangeTimeout = 30 * time.Second

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
//
// With an access token argument it stores the token in token.json. Without
// one it checks the configured client credentials by fetching a token.
type LoginCmd struct {
	tokenType string
}

func (c *LoginCmd) Name() string       { return "login" }
func (c *LoginCmd) Aliases() []string  { return nil }
func (c *LoginCmd) Synopsis() string   { return "Store an access token for the backend" }
func (c *LoginCmd) Usage() string      { return "todoremote login [--type <token-type>] [<access-token>]" }
func (c *LoginCmd) NeedsBackend() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.tokenType, "type", "Bearer", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: too many arguments: %s\n", strings.Join(args[1:], " "))
		return exitcode.UserError
	}

	if len(args) == 0 {
		return c.checkClientCredentials(ctx, cfg, out, errOut)
	}

	accessToken := strings.TrimSpace(args[0])
	if accessToken == "" {
		fmt.Fprintln(errOut, "error: access token required")
		return exitcode.UserError
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}

	token := &oauth2.Token{AccessToken: accessToken, TokenType: c.tokenType}
	if err := saveToken(cfg.TokenPath(), token); err != nil {
		fmt.Fprintf(errOut, "error: failed to save token: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func (c *LoginCmd) checkClientCredentials(ctx context.Context, cfg *config.Config, out, errOut io.Writer) int {
	if !cfg.Auth.Enabled() {
		if cfg.HasToken() {
			if !cfg.Quiet {
				fmt.Fprintln(out, "already logged in")
			}
			return exitcode.Success
		}
		fmt.Fprintln(errOut, "error: access token required")
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		fmt.Fprintf(errOut, "or set auth.client_id, auth.client_secret and auth.token_url in %s/config.yaml\n", cfg.Dir)
		return exitcode.UserError
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancel()

	cc := &clientcredentials.Config{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		TokenURL:     cfg.Auth.TokenURL,
	}
	if _, err := cc.Token(exchangeCtx); err != nil {
		fmt.Fprintf(errOut, "error: client credentials rejected: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// saveToken saves an OAuth token to a file with mode 0600.
func saveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
