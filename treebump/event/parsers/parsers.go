package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/treebump/treebump/treebump/check"
	"github.com/treebump/treebump/treebump/event"
	"github.com/treebump/treebump/treebump/presenter"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

func ParseUpdateCheckStarted(e partybus.Event) (*check.Monitor, error) {
	if err := checkEventType(e.Type, event.UpdateCheckStarted); err != nil {
		return nil, err
	}

	monitor, ok := e.Value.(check.Monitor)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &monitor, nil
}

func ParseUpdateCheckFinished(e partybus.Event) (presenter.Presenter, error) {
	if err := checkEventType(e.Type, event.UpdateCheckFinished); err != nil {
		return nil, err
	}

	pres, ok := e.Value.(presenter.Presenter)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return pres, nil
}

func ParseNonRootCommandFinished(e partybus.Event) (*string, error) {
	if err := checkEventType(e.Type, event.NonRootCommandFinished); err != nil {
		return nil, err
	}

	result, ok := e.Value.(string)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &result, nil
}
