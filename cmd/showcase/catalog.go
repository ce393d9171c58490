package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogYAML bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the projects in catalog order",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cat, err := loadAll()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if catalogYAML {
			data, err := cat.Marshal()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tID\tTITLE\tSOURCE")
		for i, p := range cat.All() {
			src := "-"
			if p.HasSource() {
				src = p.GitHubLink
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, p.ID, p.Title, src)
		}
		return tw.Flush()
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogYAML, "yaml", false, "print the catalog as YAML")
	rootCmd.AddCommand(catalogCmd)
}
