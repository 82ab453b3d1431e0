package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/cashbench/internal/config"
	"github.com/mmynk/cashbench/internal/service"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

var flagConfigForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&flagConfigForce, "force", "f", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	_, statErr := os.Stat(path)
	printConfig(cmd.OutOrStdout(), cfg, path, statErr == nil)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if config.Exists() && !flagConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.Path())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", config.Path())
	return nil
}

func printConfig(w io.Writer, cfg config.Config, path string, loaded bool) {
	fmt.Fprintf(w, "  Config file: %s\n", path)
	if loaded {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [server]")
	fmt.Fprintf(w, "    Address:     %s\n", cfg.Server.Addr)
	fmt.Fprintf(w, "    Database:    %s\n", cfg.Server.DBPath)
	if cfg.Server.StaticPath != "" {
		fmt.Fprintf(w, "    Static path: %s\n", cfg.Server.StaticPath)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [auth]")
	if cfg.Auth.JWTSecret != "" {
		fmt.Fprintf(w, "    JWT secret: %s\n", maskSecret(cfg.Auth.JWTSecret))
	} else {
		fmt.Fprintln(w, "    JWT secret: not configured (development key)")
	}
	fmt.Fprintf(w, "    Token TTL:  %s\n", cfg.Auth.TokenTTL.Duration)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [schedule]")
	fmt.Fprintf(w, "    Due soon: %d days\n", cfg.Schedule.DueSoonDays)
	if cfg.Schedule.Timezone != "" {
		fmt.Fprintf(w, "    Timezone: %s\n", cfg.Schedule.Timezone)
	} else {
		fmt.Fprintln(w, "    Timezone: local")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [log]")
	fmt.Fprintf(w, "    Level:  %s\n", cfg.Log.Level)
	fmt.Fprintf(w, "    Format: %s\n", cfg.Log.Format)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [[workbench]]")
	for _, wb := range service.WithMainWorkbench(cfg.Workbenches) {
		switch {
		case wb.IsMain():
			fmt.Fprintf(w, "    %s (main)\n", wb.Title)
		case wb.LinkedAccountID != "":
			fmt.Fprintf(w, "    %s  tag=%s  account=%s\n", wb.Title, wb.Tag, wb.LinkedAccountID)
		default:
			fmt.Fprintf(w, "    %s  tag=%s\n", wb.Title, wb.Tag)
		}
	}
}

// maskSecret keeps the first and last four characters of long secrets.
func maskSecret(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}
