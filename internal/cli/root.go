// Package cli defines the bc command line: flags, help text and exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"example.com/bc-cli/internal/app"
	"example.com/bc-cli/internal/config"
	"example.com/bc-cli/internal/game"
)

// Set from main; main gets them from ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitLost  = 2
)

const longAbout = `
Bulls and Cows is an old game played with pencil and paper that was later
implemented using computers.

The program picks a secret number made of four distinct digits. Type a guess
and press enter: "bulls" are digits in the right place, "cows" are digits
that are in the secret but somewhere else.

Read the instructions at: https://rosettacode.org/wiki/Bulls_and_cows`

type options struct {
	logLevel  string
	logFormat string
	maxTurns  int
	seed      uint64
	verbose   bool
}

func NewRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "bc",
		Short:         "Play Bulls and Cows in the terminal",
		Long:          longAbout,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("v%s (commit: %s, built: %s)", Version, Commit, Date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error (env LOG_LEVEL)")
	f.StringVar(&opts.logFormat, "log-format", "", "log format: text|json (env LOG_FORMAT)")
	f.IntVar(&opts.maxTurns, "max-turns", 0, "give up after this many wrong guesses, 0 = unlimited (env MAX_TURNS)")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for the secret, 0 = random (env GAME_SEED)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging, including per-digit scoring")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if f.Changed("max-turns") {
		cfg.Game.MaxTurns = opts.maxTurns
	}
	if f.Changed("seed") {
		cfg.Game.Seed = opts.seed
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := app.NewLogger(cfg, cmd.ErrOrStderr())
	a, err := app.New(cfg, log, app.Options{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	return a.Run(cmd.Context())
}

// Execute runs the command and exits the process with the resulting code.
func Execute(ctx context.Context, cmd *cobra.Command) {
	os.Exit(ExecuteCode(ctx, cmd))
}

// ExecuteCode runs the command and reports errors on its stderr.
func ExecuteCode(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	code := exitCode(err)
	printError(cmd.ErrOrStderr(), err, code)
	return code
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, game.ErrInputClosed),
		errors.Is(err, game.ErrTurnLimit),
		errors.Is(err, context.Canceled):
		return ExitLost
	default:
		return ExitError
	}
}

func printError(w io.Writer, err error, code int) {
	fmt.Fprintln(w, err)
	if code == ExitLost {
		fmt.Fprintln(w, "Sorry, but you lost!")
	}
}
