package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-cognition/internal/profile"
	"github.com/mind-engage/mindengage-cognition/internal/results"
	"github.com/mind-engage/mindengage-cognition/internal/traits"
)

const localUser = "local"

func newTraitsCmd(opts *options) *cobra.Command {
	var historyFile string
	cmd := &cobra.Command{
		Use:   "traits",
		Short: "Build a trait report from a history file",
		Example: `  cognictl traits --history results.json
  cat results.json | cognictl traits --history -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.table()
			if err != nil {
				return err
			}
			in, err := readInput(cmd, historyFile)
			if err != nil {
				return err
			}
			defer in.Close()

			var history []results.GameResult
			if err := json.NewDecoder(in).Decode(&history); err != nil {
				return fmt.Errorf("decode history: %w", err)
			}

			svc := profile.NewService(results.NewInMemoryStore(), traits.NewAggregator(traits.NewNormalizer(table)))
			for i, r := range history {
				r.UserID = localUser
				if _, err := svc.Record(cmd.Context(), r); err != nil {
					return fmt.Errorf("history[%d]: %w", i, err)
				}
			}
			rep, err := svc.TraitReport(cmd.Context(), localUser)
			if err != nil {
				return err
			}
			return opts.emit(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVar(&historyFile, "history", "", "JSON array of game results (- for stdin)")
	_ = cmd.MarkFlagRequired("history")
	return cmd
}
