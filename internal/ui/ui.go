package ui

import (
	"github.com/wagoodman/go-partybus"
)

// UI presents bus events to the user for the duration of a command. Setup receives
// the unsubscribe callback the handler invokes once it has seen the final report
// event; Teardown(force) is called after the event loop drains (force on interrupt).
type UI interface {
	Setup(unsubscribe func() error) error
	partybus.Handler
	Teardown(force bool) error
}
