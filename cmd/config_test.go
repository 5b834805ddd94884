package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/config"
)

func TestRunConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	useConfig(t, writeTestConfig(t, dir, "delay: 300ms\ntheme: dark\n"))
	themeOverride = "light"
	verbose = true
	if err := rootCmd.PersistentFlags().Set("delay", "2s"); err != nil {
		t.Fatalf("set --delay: %v", err)
	}

	c := &cobra.Command{}
	var out bytes.Buffer
	c.SetOut(&out)

	if err := runConfig(c, nil); err != nil {
		t.Fatalf("runConfig() error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"delay: 2s", "theme: light", "verbose: true", "name: Agri IQ"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestLoadConfig_DelayOverride(t *testing.T) {
	tests := []struct {
		name string
		flag string
		want time.Duration
	}{
		{"unset keeps file", "", 300 * time.Millisecond},
		{"zero", "0s", 0},
		{"explicit", "750ms", 750 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfig(t, writeTestConfig(t, t.TempDir(), "delay: 300ms\n"))
			if tt.flag != "" {
				if err := rootCmd.PersistentFlags().Set("delay", tt.flag); err != nil {
					t.Fatalf("set --delay: %v", err)
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				t.Fatalf("loadConfig() error: %v", err)
			}
			if cfg.Delay != tt.want {
				t.Errorf("Delay = %v, want %v", cfg.Delay, tt.want)
			}
		})
	}
}

func TestRunConfig_MissingFile(t *testing.T) {
	useConfig(t, filepath.Join(t.TempDir(), "nope.yaml"))

	c := &cobra.Command{}
	var out bytes.Buffer
	c.SetOut(&out)

	if err := runConfig(c, nil); err != nil {
		t.Fatalf("runConfig() error: %v", err)
	}
	if !strings.Contains(out.String(), "delay: 1.5s") {
		t.Errorf("defaults not printed:\n%s", out.String())
	}
}

func TestRunConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	useConfig(t, writeTestConfig(t, dir, "theme: neon\n"))

	err := runConfig(&cobra.Command{}, nil)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}
