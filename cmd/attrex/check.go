package main

import (
	"fmt"
	"os"

	"github.com/odxtools/attrex/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [glob...]",
	Short: "Validate attrs domains without writing",
	Long: `Parses every attrs occurrence in the matched files and reports domains
that would fail to convert. Exits non-zero when any occurrence is malformed.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFromFlags(cmd, args)
		opts.Check = true
		opts.Jobs, _ = cmd.Flags().GetInt("jobs")

		if err := cli.Run(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All attrs domains are convertible ✅")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntP("jobs", "j", 0, "Number of files to process concurrently")
}
