package bus

import (
	"github.com/wagoodman/go-partybus"

	"github.com/treebump/treebump/treebump/event"
)

func Report(report string) {
	Publish(partybus.Event{
		Type:  event.NonRootCommandFinished,
		Value: report,
	})
}
