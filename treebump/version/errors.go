package version

import "fmt"

// InvalidFormatError indicates an input that does not match the strict ebuild
// grammar when lenient parsing was not requested.
type InvalidFormatError struct {
	Raw string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid ebuild version format: %q", e.Raw)
}
