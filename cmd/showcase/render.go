package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"showcase.dev/internal/assets"
	"showcase.dev/internal/render"
	"showcase.dev/internal/snapshot"
)

var renderCmd = &cobra.Command{
	Use:   "render <output-dir>",
	Short: "Write every state of the section as static HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cat, err := loadAll()
		if err != nil {
			return err
		}

		res, err := snapshot.Write(args[0], cat, render.Options{
			Title:    cfg.Section.Title,
			Subtitle: cfg.Section.Subtitle,
			Motion:   cfg.Motion(),
			Resolver: render.NewScreenshotResolver(cfg.PublicFS(), cfg.PlaceholderURL),
		}, assets.Static())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, p := range res.Pages {
			fmt.Fprintf(out, "  Created %s\n", p)
		}
		fmt.Fprintf(out, "Done! %d pages, %d assets\n", len(res.Pages), res.Assets)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
