package cmd

import (
	"fmt"
	"os"
	"strings"
)

// stderrPrintLnf keeps error output off stdout so report output stays pipeable.
func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}
