package main

import (
	"fmt"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		dirty := ""
		if versioninfo.DirtyBuild {
			dirty = " (dirty)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "homedash %s %s%s\n", versioninfo.Short(), versioninfo.Revision, dirty)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
