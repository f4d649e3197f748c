package main

import (
	"fmt"

	"github.com/odxtools/attrex"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of attrex",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("attrex version %s\n", attrex.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
