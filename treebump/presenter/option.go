package presenter

import "strings"

const (
	UnknownPresenter Option = iota
	JSONPresenter
	TablePresenter
)

// Option is a dedicated type to represent a specific kind of presenter output format.
type Option int

var optionStr = []string{
	"UnknownPresenter",
	"json",
	"table",
}

var Options = []Option{
	JSONPresenter,
	TablePresenter,
}

// ParseOption returns the presenter option specified by the given user input.
func ParseOption(userStr string) Option {
	switch strings.ToLower(userStr) {
	case strings.ToLower(JSONPresenter.String()):
		return JSONPresenter
	case strings.ToLower(TablePresenter.String()), "":
		return TablePresenter
	}
	return UnknownPresenter
}

func (o Option) String() string {
	if int(o) >= len(optionStr) || o < 0 {
		return optionStr[0]
	}
	return optionStr[o]
}
