// Package cmd implements the agriiq CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/config"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string
	delayOverride time.Duration

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "agriiq",
	Short: "Agri IQ — sign in with your mobile number",
	Long:  "Agri IQ is the terminal client for the Agri IQ learning platform. Sign in with a mobile number and a one-time passcode.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")
	rootCmd.PersistentFlags().DurationVar(&delayOverride, "delay", 0, "simulated network delay (overrides config)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(configCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("agriiq %s (commit: %s)\n", version, commit))
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if themeOverride != "" {
		cfg.Theme = themeOverride
	}
	if rootCmd.PersistentFlags().Changed("delay") {
		cfg.Delay = delayOverride
	}
	if verbose {
		cfg.Log.Verbose = true
	}
	return cfg, nil
}
