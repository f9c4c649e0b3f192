package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/packlist/internal/ui"
)

var lsGroup bool

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Print the starting list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		by := sess.cfg.SortCriterion()
		fmt.Fprintln(cmd.OutOrStdout(), ui.Summary(sess.store.SortedView(by), sess.store.Stats(), by, lsGroup))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print totals for the starting list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := sess.store.Stats()
		fmt.Fprintln(cmd.OutOrStdout(), ui.Header(st))
		fmt.Fprintln(cmd.OutOrStdout(), ui.Footer(st))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "packlist "+version)
	},
}

func init() {
	lsCmd.Flags().BoolVar(&lsGroup, "group", false, "group output by pending/packed")
}
