// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task).
	UserError = 1

	// AuthError indicates a rejected or unreadable token, or a bad config.
	AuthError = 2

	// BackendError indicates a backend/network/decoding error.
	BackendError = 3
)
