package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osoekawaitlab/interposition/cassette"
	"github.com/osoekawaitlab/interposition/store/filestore"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "interposition-inspect",
		Short: "Inspect a recorded cassette file",
	}

	root.AddCommand(newSummaryCmd())
	return root
}

func newSummaryCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "summary <cassette-path>",
		Short: "Print the number of interactions and their fingerprints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func runSummary(cmd *cobra.Command, path string, format string) error {
	store := filestore.New(path, filestore.WithCreateIfMissing(false))

	c, err := store.Load()
	if err != nil {
		return fmt.Errorf("load cassette %s: %w", path, err)
	}

	switch format {
	case "text":
		return printText(cmd, c)
	case "yaml":
		return printYAML(cmd, c)
	default:
		return fmt.Errorf("unknown format %q: want text or yaml", format)
	}
}

func printText(cmd *cobra.Command, c *cassette.Cassette) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "interactions: %d\n", c.Len())
	for _, i := range c.Interactions() {
		fmt.Fprintf(out, "  %s  %-6s %s\n", i.Fingerprint, i.Request.Action, i.Request.Target)
	}
	return nil
}
