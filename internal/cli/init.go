package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moracle/internal/paths"
	"github.com/mesh-intelligence/moracle/internal/sqlite"
	"github.com/mesh-intelligence/moracle/pkg/types"
)

var initRebuild bool

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize moracle configuration and storage",
		Long: `Create the configuration and data directories, write a default config.yaml
if none exists, then initialize the card store.

With --rebuild the query database is rebuilt from cards.jsonl even when it
looks current.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.Flags().BoolVar(&initRebuild, "rebuild", false, "rebuild the query database from the card files")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return systemError(err)
	}
	setupLogging(cmd, s)

	backend := sqlite.NewBackend()
	err = backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: s.dataDir,
		Rebuild: initRebuild,
	})
	if err != nil {
		return systemError(fmt.Errorf("initialize storage: %w", err))
	}
	if err := backend.Detach(); err != nil {
		return systemError(fmt.Errorf("finalize storage: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "moracle initialized")
	fmt.Fprintf(out, "  config: %s\n", filepath.Join(s.configDir, paths.ConfigFileName))
	fmt.Fprintf(out, "  data:   %s\n", s.dataDir)
	return nil
}
