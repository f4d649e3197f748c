package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "attrex",
	Short: "attrex migrates legacy Odoo attrs domains to boolean expressions",
	Long: `attrex rewrites the pre-17.0 attrs attribute of Odoo view XML files into
the separate invisible/readonly/required boolean-expression attributes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to an .attrex.yaml config file")
	rootCmd.PersistentFlags().String("attrs", "", "Name of the source attribute (default \"attrs\")")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
