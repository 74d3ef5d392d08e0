package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moracle/internal/ingest"
)

func newUpdateCmd() *cobra.Command {
	var (
		url  string
		file string
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Download a fresh card database",
		Long: `Update replaces the local card database with a bulk card dataset.

By default the MTGJSON AtomicCards archive is downloaded from source_url.
Use --file to import an already downloaded AtomicCards.json(.zip) or
AllCards.json instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return systemError(err)
			}
			setupLogging(cmd, s)

			opts := ingest.Options{
				URL:     s.sourceURL,
				File:    file,
				Timeout: s.fetchTimeout,
				TempDir: s.dataDir,
			}
			if url != "" {
				opts.URL = url
			}

			backend, err := attachBackend(s.dataDir)
			if err != nil {
				return systemError(err)
			}
			defer backend.Detach()

			imp, err := ingest.Run(cmd.Context(), backend, opts)
			if err != nil {
				return systemError(fmt.Errorf("update: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards from %s (%d skipped)\n",
				imp.CardCount, imp.Source, imp.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "download card data from this URL instead of source_url")
	cmd.Flags().StringVar(&file, "file", "", "import card data from a local JSON or zip file")
	return cmd
}
