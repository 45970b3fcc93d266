package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	astar "github.com/pdrpinto/astargraph"
)

func newSearchCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <graph-file> <from> <to>",
		Short: "Find the cheapest path between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphFile, from, to := args[0], args[1], args[2]
			logger := newLogger(cmd, v)

			heuristic, err := heuristicByName(v.GetString("heuristic"))
			if err != nil {
				return err
			}
			format := v.GetString("format")
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			g, err := LoadGraph(graphFile)
			if err != nil {
				return err
			}
			logger.Debug("graph loaded", "file", graphFile, "nodes", g.Len(), "edges", g.EdgeCount())

			finder := astar.New[string](
				astar.WithHeuristic(heuristic),
				astar.WithLogger(logger),
			)
			result, err := finder.SearchContext(cmd.Context(), g, from, to)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), format, from, to, result)
		},
	}

	cmd.Flags().String("heuristic", "none", "Heuristic: none or euclidean (reads x/y from node data)")
	cmd.Flags().String("format", "text", "Output format: text or json")
	_ = v.BindPFlag("heuristic", cmd.Flags().Lookup("heuristic"))
	_ = v.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func writeResult(out io.Writer, format, from, to string, result astar.Result[string]) error {
	if format == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	if !result.Found {
		_, err := fmt.Fprintf(out, "no path from %s to %s\n", from, to)
		return err
	}
	hops := append([]string{from}, result.Path...)
	_, err := fmt.Fprintf(out, "%s (cost %g)\n", strings.Join(hops, " -> "), result.TotalCost)
	return err
}
