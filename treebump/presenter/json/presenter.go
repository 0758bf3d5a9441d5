package json

import (
	"encoding/json"
	"io"

	"github.com/treebump/treebump/internal"
	"github.com/treebump/treebump/internal/version"
	"github.com/treebump/treebump/treebump/check"
)

type document struct {
	Descriptor descriptor     `json:"descriptor"`
	Results    []check.Result `json:"results"`
}

// descriptor identifies the application that generated the report.
type descriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Presenter holds the fields needed to render a JSON update report.
type Presenter struct {
	results []check.Result
}

func NewPresenter(results []check.Result) *Presenter {
	return &Presenter{
		results: results,
	}
}

func (pres *Presenter) Present(output io.Writer) error {
	doc := document{
		Descriptor: descriptor{
			Name:    internal.ApplicationName,
			Version: version.FromBuild().Version,
		},
		Results: pres.results,
	}

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
