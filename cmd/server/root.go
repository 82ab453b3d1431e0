package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/cashbench/internal/config"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "cashbench",
	Short: "Personal finance dashboard backend",
	Long:  "Track accounts, recurring bills and projected balances over a Connect JSON API.",
	RunE:  runServe,

	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.Path()+")")
}

// loadConfig reads --config when given, otherwise the XDG config file.
func loadConfig() (config.Config, error) {
	if flagConfig != "" {
		return config.LoadFile(flagConfig)
	}
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("%w (config file %s)", err, config.Path())
	}
	return cfg, nil
}
