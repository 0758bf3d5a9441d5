package table

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/treebump/treebump/treebump/check"
)

// Presenter holds the fields needed to render a tabular update report.
type Presenter struct {
	results []check.Result
}

func NewPresenter(results []check.Result) *Presenter {
	return &Presenter{
		results: results,
	}
}

func (pres *Presenter) Present(output io.Writer) error {
	if len(pres.results) == 0 {
		_, err := io.WriteString(output, "No packages discovered\n")
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Package", "Installed", "Upstream", "Age", "Status", "Confidence"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, result := range pres.results {
		table.Append(newRow(result))
	}
	table.Render()

	return nil
}

func newRow(result check.Result) []string {
	age := ""
	if result.PublishedAt != nil {
		age = humanize.Time(*result.PublishedAt)
	}

	upstream := result.Normalized
	if upstream == "" {
		upstream = result.Reason
	}

	return []string{
		result.Package,
		result.Installed,
		upstream,
		age,
		string(result.Status),
		result.Confidence,
	}
}
