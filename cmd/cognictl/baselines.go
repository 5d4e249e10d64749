package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mind-engage/mindengage-cognition/internal/baseline"
)

func newBaselinesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "baselines",
		Short: "Print the effective baseline table as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.table()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(baseline.File{Baselines: table.Entries()}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
