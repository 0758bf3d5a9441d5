package table

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treebump/treebump/treebump/check"
)

func TestTablePresenter(t *testing.T) {
	publishedAt := time.Now().Add(-48 * time.Hour)

	results := []check.Result{
		{
			Package:     "dev-util/foo",
			Installed:   "1.9.0",
			UpstreamTag: "v2.0.0",
			Normalized:  "2.0.0",
			PublishedAt: &publishedAt,
			Status:      check.UpdateAvailable,
			Confidence:  "structured",
		},
		{
			Package:   "net-misc/orphan",
			Installed: "1.0",
			Status:    check.Unknown,
			Reason:    "no upstream repository configured",
		},
	}

	var buffer bytes.Buffer
	require.NoError(t, NewPresenter(results).Present(&buffer))
	actual := buffer.String()

	assert.Contains(t, actual, "PACKAGE")
	assert.Contains(t, actual, "dev-util/foo")
	assert.Contains(t, actual, "1.9.0")
	assert.Contains(t, actual, "2.0.0")
	assert.Contains(t, actual, "2 days ago")
	assert.Contains(t, actual, "update-available")
	// packages without an upstream show the reason in place of a version
	assert.Contains(t, actual, "no upstream repository configured")
}

func TestTablePresenterEmpty(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, NewPresenter(nil).Present(&buffer))

	assert.Equal(t, "No packages discovered\n", buffer.String())
}
