package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the card database and its last import",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return systemError(err)
	}
	setupLogging(cmd, s)

	backend, err := attachBackend(s.dataDir)
	if err != nil {
		return systemError(err)
	}
	defer backend.Detach()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Data directory: %s\n", s.dataDir)

	count, err := backend.CardCount()
	if err != nil {
		return systemError(err)
	}
	fmt.Fprintf(out, "Cards:          %d\n", count)

	imp, err := backend.LastImport()
	if errors.Is(err, types.ErrNotFound) {
		fmt.Fprintln(out, "Last import:    never (run 'moracle update')")
		return nil
	}
	if err != nil {
		return systemError(err)
	}
	fmt.Fprintf(out, "Last import:    %s\n", imp.ImportedAt.Local().Format(time.RFC1123))
	fmt.Fprintf(out, "Source:         %s\n", imp.Source)
	fmt.Fprintf(out, "Skipped:        %d\n", imp.Skipped)
	return nil
}
