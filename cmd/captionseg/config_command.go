package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"captionseg/internal/config"
)

func newConfigCommand(configFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *configFlag
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}
			path = config.ExpandPath(path)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("ensure config directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(config.Sample()), 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			limits := cfg.EngineLimits()
			fmt.Fprintf(cmd.OutOrStdout(), "max_chars_per_line = %d\n", limits.MaxCharsPerLine)
			fmt.Fprintf(cmd.OutOrStdout(), "max_chars_per_second = %g\n", limits.MaxCharsPerSecond)
			fmt.Fprintf(cmd.OutOrStdout(), "min_duration_seconds = %g\n", limits.MinDuration)
			fmt.Fprintf(cmd.OutOrStdout(), "max_duration_seconds = %g\n", limits.MaxDuration)
			fmt.Fprintf(cmd.OutOrStdout(), "min_chars = %d\n", limits.MinChars)
			fmt.Fprintf(cmd.OutOrStdout(), "pause_threshold_seconds = %g\n", limits.PauseThreshold)
			fmt.Fprintf(cmd.OutOrStdout(), "log.level = %s\n", cfg.Log.Level)
			fmt.Fprintf(cmd.OutOrStdout(), "log.format = %s\n", cfg.Log.Format)
			fmt.Fprintf(cmd.OutOrStdout(), "cache.enabled = %t\n", cfg.Cache.Enabled)
			fmt.Fprintf(cmd.OutOrStdout(), "cache.path = %s\n", cfg.Cache.Path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
