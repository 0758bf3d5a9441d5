package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wagoodman/go-partybus"

	"github.com/treebump/treebump/internal"
	"github.com/treebump/treebump/internal/bus"
	"github.com/treebump/treebump/internal/format"
	"github.com/treebump/treebump/internal/ui"
	"github.com/treebump/treebump/treebump/check"
	"github.com/treebump/treebump/treebump/event"
	"github.com/treebump/treebump/treebump/overlay"
	"github.com/treebump/treebump/treebump/presenter"
	"github.com/treebump/treebump/treebump/upstream"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [OVERLAY]", internal.ApplicationName),
	Short: "A package overlay update checker",
	Long: format.Tprintf(`Scan a package overlay and report which packages have a newer upstream release:
    {{.appName}}                       check the overlay in the current directory
    {{.appName}} path/to/overlay       check the overlay at the given path
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args:          cobra.MaximumNArgs(1),
	RunE:          rootExec,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// output & formatting options
	rootCmd.Flags().StringP(
		"output", "o", "",
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)

	rootCmd.Flags().BoolP(
		"fail-on-outdated", "f", false,
		"exit with a non-zero code when any package has an update available",
	)
}

func bindRootConfigOptions(flags *pflag.FlagSet) error {
	if err := viper.BindPFlag("output", flags.Lookup("output")); err != nil {
		return err
	}
	return viper.BindPFlag("fail-on-outdated", flags.Lookup("fail-on-outdated"))
}

func rootExec(_ *cobra.Command, args []string) error {
	overlayRoot := "."
	if len(args) > 0 {
		overlayRoot = args[0]
	}

	return eventLoop(
		startWorker(overlayRoot),
		setupSignals(),
		eventSubscription,
		ui.NewLoggerUI(os.Stdout),
		func() {},
	)
}

func startWorker(overlayRoot string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		} else if appConfig.Dev.ProfileMem {
			defer profile.Start(profile.MemProfile).Stop()
		}

		packages, err := overlay.Scan(afero.NewOsFs(), overlayRoot)
		if err != nil {
			errs <- fmt.Errorf("unable to scan overlay at %q: %w", overlayRoot, err)
			return
		}

		var resolver upstream.Resolver = upstream.NewGithubResolver(appConfig.Upstream.ToResolverConfig())
		if appConfig.Upstream.Cache {
			resolver = upstream.NewCachingResolver(resolver)
		}

		results := check.Run(context.Background(), resolver, packages, appConfig.ToOverrides())

		outputOption := presenter.ParseOption(appConfig.Output)
		if outputOption == presenter.UnknownPresenter {
			errs <- fmt.Errorf("cannot find an output presenter for option: %s", appConfig.Output)
			return
		}

		bus.Publish(partybus.Event{
			Type:  event.UpdateCheckFinished,
			Value: presenter.GetPresenter(outputOption, results),
		})

		if appConfig.FailOnOutdated && check.HasUpdates(results) {
			errs <- check.ErrUpdatesAvailable
		}
	}()
	return errs
}
