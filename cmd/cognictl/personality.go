package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-cognition/internal/personality"
)

func newPersonalityCmd(opts *options) *cobra.Command {
	var (
		answersFile string
		strict      bool
	)
	cmd := &cobra.Command{
		Use:   "personality",
		Short: "Resolve a four-letter type from an answers file",
		Long: `Reads a JSON object mapping question id to a value in [-2, 2] and prints
the resolved type, the per-axis breakdown, and the type's record.

Unanswered questions count as neutral unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, answersFile)
			if err != nil {
				return err
			}
			defer in.Close()

			var answers personality.Answers
			if err := json.NewDecoder(in).Decode(&answers); err != nil {
				return fmt.Errorf("decode answers: %w", err)
			}
			for id, v := range answers {
				if err := personality.ValidateAnswer(v); err != nil {
					return fmt.Errorf("question %d: %w", id, err)
				}
			}
			n, total := personality.Completeness(answers)
			if n < total {
				if strict {
					return fmt.Errorf("%d of %d questions answered", n, total)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d of %d questions answered; the rest count as neutral\n", n, total)
			}

			p := personality.Reduce(answers)
			out := struct {
				Profile personality.Profile `json:"profile"`
				Record  *personality.Record `json:"record,omitempty"`
			}{Profile: p}
			if rec, ok := personality.Lookup(p.Type); ok {
				out.Record = &rec
			}
			return opts.emit(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&answersFile, "answers", "", "JSON answers file (- for stdin)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any question is unanswered")
	_ = cmd.MarkFlagRequired("answers")
	cmd.AddCommand(newPersonalityTypesCmd(opts))
	return cmd
}

func newPersonalityTypesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "types [CODE]",
		Short: "List type codes, or show one type's record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return opts.emit(cmd.OutOrStdout(), personality.AllTypes())
			}
			rec, ok := personality.Lookup(strings.ToUpper(args[0]))
			if !ok {
				return fmt.Errorf("unknown type %q", args[0])
			}
			return opts.emit(cmd.OutOrStdout(), rec)
		},
	}
}
