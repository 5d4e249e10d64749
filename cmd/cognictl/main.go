// Command cognictl scores game histories and questionnaire answers offline,
// using the same engine as the gateway.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mind-engage/mindengage-cognition/internal/baseline"
)

type options struct {
	baselineFile string
	compact      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "cognictl",
		Short: "Score cognitive game results and personality questionnaires",
		Long: `cognictl runs the trait and personality engine against local files.

History files are JSON arrays of game results; answer files map question ids
to Likert values in [-2, 2]. Baseline overrides are YAML.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.baselineFile, "baselines", os.Getenv("BASELINE_FILE"), "YAML baseline overrides")
	root.PersistentFlags().BoolVar(&opts.compact, "compact", false, "emit single-line JSON")

	root.AddCommand(
		newTraitsCmd(opts),
		newPersonalityCmd(opts),
		newBaselinesCmd(opts),
	)
	return root
}

func (o *options) table() (*baseline.Table, error) {
	return baseline.LoadFile(o.baselineFile)
}

func (o *options) emit(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if !o.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// readInput opens path, treating "-" as stdin.
func readInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file given")
	}
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
