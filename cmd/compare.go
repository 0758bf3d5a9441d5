package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treebump/treebump/internal/bus"
	"github.com/treebump/treebump/internal/ui"
	"github.com/treebump/treebump/treebump/version"
)

var compareCmd = &cobra.Command{
	Use:   "compare VERSION VERSION",
	Short: "compare two ebuild versions",
	Long: `compare two ebuild versions and show how they are ordered, along with the
confidence of the answer (structured when both versions parse under the strict
grammar, lexicographic otherwise)`,
	Args: cobra.ExactArgs(2),
	RunE: compareExec,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func compareExec(_ *cobra.Command, args []string) error {
	return eventLoop(
		compareWorker(args[0], args[1]),
		setupSignals(),
		eventSubscription,
		ui.NewLoggerUI(os.Stdout),
		func() {},
	)
}

func compareWorker(a, b string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		result := version.Compare(a, b)
		bus.Report(fmt.Sprintf("%s %s %s (%s)\n", a, result.Ordering.Symbol(), b, result.Confidence))
	}()
	return errs
}
