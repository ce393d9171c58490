package main

import (
	"github.com/spf13/cobra"

	"showcase.dev/internal/catalog"
	"showcase.dev/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "showcase",
	Short:        "Portfolio projects section server",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "showcase.yml", "config file path")
}

// loadAll reads the configuration and the catalog it points at
func loadAll() (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, nil, err
	}
	return cfg, cat, nil
}
