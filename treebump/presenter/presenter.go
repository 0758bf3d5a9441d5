package presenter

import (
	"io"

	"github.com/treebump/treebump/treebump/check"
	"github.com/treebump/treebump/treebump/presenter/json"
	"github.com/treebump/treebump/treebump/presenter/table"
)

// Presenter is the main interface other modules can use to render a report.
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter returns a presenter for the given option, or nil when the option is
// not supported.
func GetPresenter(option Option, results []check.Result) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter(results)
	case TablePresenter:
		return table.NewPresenter(results)
	}
	return nil
}
