package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pmrewrite [collection]",
	Short: "Move Postman collection routes under /api.",
	Long: `pmrewrite rewrites a Postman collection in place so that application
routes live under the /api prefix.

Every request whose first path segment is not health, auth, graphql, debug
or api gets "api" prepended to its path, has "localhost:8080/" in its raw
URL replaced with "localhost:8080/api/", and receives an
"Authorization: Bearer {{token}}" header unless it already has one.
The collection gets a "token" variable if it does not define one.

The collection defaults to postman_collection.json in the current directory.

Examples:
  pmrewrite
  pmrewrite collection.json
  pmrewrite collection.json -o rewritten.json --verbose
  pmrewrite collection.json --config rules.yaml --format json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          rewriteCommand,
}

// exitError carries an exit code for an error that has already been reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitUsageError)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}
