package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/moracle/pkg/moracle"
)

const modulePath = "github.com/mesh-intelligence/moracle"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the moracle version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "moracle v%s\nmodule: %s\n", moracle.Version, modulePath)
			return nil
		},
	}
}
