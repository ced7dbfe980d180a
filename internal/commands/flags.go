package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharkfolio/sharkgen/internal/config"
	"github.com/sharkfolio/sharkgen/internal/model"
)

// configFlags are shared by commands that read sharkgen.yaml.
type configFlags struct {
	path    string
	variant string
}

func (f *configFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "config", config.FileName, "config file; ignored if absent and not given explicitly")
	cmd.Flags().StringVar(&f.variant, "variant", string(model.VariantEnhanced), "output variant: simple or enhanced")
}

// load reads the config file, falling back to defaults when the default file
// does not exist, then applies --variant if it was given.
func (f *configFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default(model.VariantEnhanced)
	default:
		return nil, err
	}

	if cmd.Flags().Changed("variant") {
		v, err := model.ParseVariant(f.variant)
		if err != nil {
			return nil, err
		}
		cfg.Variant = v
	}
	return cfg, nil
}
