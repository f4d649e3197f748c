package main

import (
	"fmt"
	"os"

	"github.com/odxtools/attrex/internal/cli"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [glob...]",
	Short: "Rewrite attrs domains in view files",
	Long: `Discovers view XML files by glob (doublestar patterns like views/**/*.xml
are supported), rewrites every attrs occurrence and legacy column invisible
flag, and writes the files back in place.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := optionsFromFlags(cmd, args)
		opts.Test, _ = cmd.Flags().GetBool("test")
		opts.Jobs, _ = cmd.Flags().GetInt("jobs")

		if err := cli.Run(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolP("test", "t", false, "Dry run: print diffs, modify nothing")
	convertCmd.Flags().IntP("jobs", "j", 0, "Number of files to process concurrently")

	// Make 'convert' the default when paths are given without a subcommand.
	rootCmd.Run = convertCmd.Run
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.Flags().AddFlagSet(convertCmd.Flags())
}

// optionsFromFlags collects the flags shared by convert and check.
func optionsFromFlags(cmd *cobra.Command, args []string) cli.Options {
	var opts cli.Options
	opts.Globs = args
	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.AttrsAttr, _ = cmd.Flags().GetString("attrs")
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	return opts
}
