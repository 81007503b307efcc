package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depeter/stripview/internal/cache"
	"github.com/depeter/stripview/internal/config"
)

func newConfigCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(*cfgPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", *cfgPath)
			}
			if err := config.DefaultConfig().SaveFile(*cfgPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), *cfgPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), *cfgPath)
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.LoadFile(*cfgPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd, checkCmd)
	return cmd
}

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the thumbnail cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached thumbnails",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return err
			}
			ic, err := cache.NewImageCache(dir)
			if err != nil {
				return err
			}
			if err := ic.ClearDisk(); err != nil {
				return fmt.Errorf("clear %s: %w", ic.CacheDir(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cleared", ic.CacheDir())
			return nil
		},
	})
	return cmd
}
