package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sharkfolio/sharkgen/internal/config"
	"github.com/sharkfolio/sharkgen/internal/model"
	"github.com/sharkfolio/sharkgen/internal/roster"
)

func newInitCommand() *cobra.Command {
	var variant string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a sharkgen.yaml with the built-in roster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			v, err := model.ParseVariant(variant)
			if err != nil {
				return err
			}

			path, err := runInit(absDir, v, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s variant)\n", path, v)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", string(model.VariantEnhanced), "variant whose roster is written: simple or enhanced")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(dir string, v model.Variant, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default(v)
	r := roster.DefaultRoster(v)
	cfg.Roster = &r
	if err := config.Save(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}
