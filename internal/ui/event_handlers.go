package ui

import (
	"fmt"
	"io"

	"github.com/wagoodman/go-partybus"

	"github.com/treebump/treebump/treebump/event/parsers"
)

func handleUpdateCheckFinished(e partybus.Event, reportOutput io.Writer) error {
	pres, err := parsers.ParseUpdateCheckFinished(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}

	if err := pres.Present(reportOutput); err != nil {
		return fmt.Errorf("unable to show report: %w", err)
	}
	return nil
}

func handleNonRootCommandFinished(e partybus.Event, reportOutput io.Writer) error {
	result, err := parsers.ParseNonRootCommandFinished(e)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", e.Type, err)
	}

	if _, err := io.WriteString(reportOutput, *result); err != nil {
		return fmt.Errorf("unable to show command output: %w", err)
	}
	return nil
}
