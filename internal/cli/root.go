package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "regform",
		Short: "CLI tool for the student registration API",
		Long: `regform is a CLI tool for interacting with the student registration JSON API.

It supports the full registration flow: creating a form session, filling in
fields with live validation, submitting, and downloading the QR code image.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load the current form session if not provided via flag/env
			if err := cfg.LoadFormID(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: REGFORM_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.FormID, "form", cfg.FormID, "Form ID (env: REGFORM_FORM)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: REGFORM_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newFormCmd())
	rootCmd.AddCommand(newImageCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newProgramsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// requireFormID returns the active form ID or an error if none is set
func requireFormID() (string, error) {
	if cfg.FormID == "" {
		return "", fmt.Errorf("no active form: run 'regform form new' or pass --form")
	}
	return cfg.FormID, nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
