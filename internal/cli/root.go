// Package cli implements the restbase command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "restbase",
	Short: "A terminal client for JSON-over-HTTP APIs",
	Long: `Restbase is a terminal client built on the restbase library: it sends
JSON requests and multipart uploads, normalizes server error bodies into a
uniform shape, and can load client profiles from YAML files.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	RootCmd.AddCommand(newRequestCmd("GET"))
	RootCmd.AddCommand(newRequestCmd("POST"))
	RootCmd.AddCommand(newRequestCmd("PUT"))
	RootCmd.AddCommand(newRequestCmd("DELETE"))
	RootCmd.AddCommand(uploadCmd)
}
