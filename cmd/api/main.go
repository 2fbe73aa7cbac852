package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var configFile string

var rootCmd = &cobra.Command{
	Use:   "writing-services",
	Short: "AI writing services web application",
	Long: `Serves the AI writing services forms: spelling check, writing enhancement,
addition of connectors, textual tone shifts and plagiarism check.

Without a subcommand the HTTP server is started. Settings come from the
environment and, optionally, from the file given with --config.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.AddCommand(serveCmd, submitCmd, servicesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
