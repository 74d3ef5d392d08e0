// Package cli implements the moracle command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moracle/internal/logging"
	"github.com/mesh-intelligence/moracle/internal/render"
	"github.com/mesh-intelligence/moracle/internal/sqlite"
	"github.com/mesh-intelligence/moracle/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	verbose   int
	color     bool
	full      bool
	width     int
}

var flags rootFlags

// exitCodeError carries the process exit code for an error returned from a
// command.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

func userError(err error) error   { return &exitCodeError{code: exitUserError, err: err} }
func systemError(err error) error { return &exitCodeError{code: exitSysError, err: err} }

// exitCode maps an error returned by the root command to a process exit
// code. Errors without an explicit code are user errors (bad flags,
// unknown subcommands).
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var coded *exitCodeError
	if errors.As(err, &coded) {
		return coded.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "moracle" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "moracle [flags] [name ...]",
		Short: "Look up card rules text by name",
		Long: `moracle prints card rules text from a local card database.

Card names are taken from the arguments, or read one per line from stdin
when no names are given or the only argument is "-". Matching ignores
case but otherwise requires the full card name.

Run "moracle update" once to download the card database.`,
		Example: `  moracle Counterspell "Wrath of God"
  moracle -f -w 40 "Teferi, Hero of Dominaria"
  cat decklist.txt | moracle`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		// Positional arguments are card names, not subcommands.
		Args: cobra.ArbitraryArgs,
		RunE: runLookup,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/moracle)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/moracle)")
	root.PersistentFlags().CountVarP(&flags.verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	root.PersistentFlags().BoolVar(&flags.color, "color", false, "highlight card names when writing to a terminal")

	root.Flags().BoolVarP(&flags.full, "full", "f", false, "print the full card instead of one line")
	root.Flags().IntVarP(&flags.width, "width", "w", 0, "line width (one-line default 120, full form unwrapped when 0)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newUpdateCmd())
	root.AddCommand(newStatusCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "moracle: %s\n", err)
	}
	os.Exit(exitCode(err))
}

func runLookup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return systemError(err)
	}
	setupLogging(cmd, s)

	cfg := render.Config{Mode: s.mode, Width: s.width}
	if err := cfg.Validate(); err != nil {
		return userError(err)
	}

	names, err := collectNames(cmd, args)
	if err != nil {
		return systemError(fmt.Errorf("read names: %w", err))
	}
	if len(names) == 0 {
		return nil
	}

	backend, err := attachBackend(s.dataDir)
	if err != nil {
		return systemError(err)
	}
	defer backend.Detach()

	if n, err := backend.CardCount(); err != nil {
		return systemError(err)
	} else if n == 0 {
		return userError(errors.New("card database is empty; run 'moracle update' first"))
	}

	hl := newHighlighter(s.color, cmd.OutOrStdout())
	failed := renderCards(cmd.OutOrStdout(), cmd.ErrOrStderr(), backend, names, cfg, hl)
	if failed > 0 {
		return userError(fmt.Errorf("%d of %d cards could not be printed", failed, len(names)))
	}
	return nil
}

// renderCards looks up and prints each name in order. Failures are
// reported on errOut and do not stop the loop; the number of failed names
// is returned. Full-form blocks are separated by a blank line.
func renderCards(out, errOut io.Writer, lookup types.Lookup, names []string, cfg render.Config, hl highlighter) int {
	logger := logging.GetLogger("cli")
	failed := 0
	printed := 0
	for _, name := range names {
		card, err := lookup.Find(name)
		if err != nil {
			failed++
			logger.Warn().Str("card", name).Err(err).Msg("lookup failed")
			fmt.Fprintf(errOut, "moracle: %s\n", err)
			continue
		}
		text, err := render.Render(card, cfg)
		if err != nil {
			failed++
			logger.Warn().Str("card", card.Name).Err(err).Msg("render failed")
			fmt.Fprintf(errOut, "moracle: %s: %s\n", card.Name, err)
			continue
		}
		if cfg.Mode == render.ModeFullForm && printed > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, hl.card(card, text))
		printed++
	}
	return failed
}

// attachBackend creates a SQLite store in dataDir and attaches it. The
// caller must defer backend.Detach().
func attachBackend(dataDir string) (*sqlite.Backend, error) {
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return backend, nil
}

func setupLogging(cmd *cobra.Command, s settings) {
	logging.Setup(logging.Options{
		Verbosity: flags.verbose,
		Level:     s.logLevel,
		File:      s.logFile,
		Console:   cmd.ErrOrStderr(),
		NoColor:   !isTerminal(cmd.ErrOrStderr()),
	})
}
