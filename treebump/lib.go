package treebump

import (
	"github.com/wagoodman/go-partybus"

	"github.com/treebump/treebump/internal/bus"
	"github.com/treebump/treebump/internal/log"
	"github.com/treebump/treebump/treebump/logger"
)

// SetLogger sets the logger object used for all logging calls.
func SetLogger(logger logger.Logger) {
	log.Log = logger
}

// SetBus sets the event bus for all published events onto (in-library subscriptions are not allowed).
func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}
