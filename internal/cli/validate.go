package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newValidateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <graph-file>",
		Short: "Check that a serialized graph can be loaded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := LoadGraph(args[0])
			if err != nil {
				return err
			}
			newLogger(cmd, v).Debug("graph loaded", "file", args[0])

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "nodes: %d\nedges: %d\nbidirectional: %t\n",
				g.Len(), g.EdgeCount(), g.Bidirectional())
			return err
		},
	}
}
