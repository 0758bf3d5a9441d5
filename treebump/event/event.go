package event

import "github.com/wagoodman/go-partybus"

const (
	// UpdateCheckStarted is fired once the set of packages to examine is known; the
	// payload is a check.Monitor with live progress counters.
	UpdateCheckStarted partybus.EventType = "treebump-update-check-started"

	// UpdateCheckFinished is fired when all packages have a decision; the payload is
	// a presenter.Presenter holding the final report.
	UpdateCheckFinished partybus.EventType = "treebump-update-check-finished"

	// NonRootCommandFinished carries the final output of helper commands (payload is
	// the report string).
	NonRootCommandFinished partybus.EventType = "treebump-non-root-command-finished"
)
