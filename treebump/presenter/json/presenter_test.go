package json

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treebump/treebump/treebump/check"
)

func TestJsonPresenter(t *testing.T) {
	publishedAt := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)

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

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &doc))

	descriptor, ok := doc["descriptor"].(map[string]interface{})
	require.True(t, ok, "missing descriptor")
	assert.Equal(t, "treebump", descriptor["name"])

	rendered, ok := doc["results"].([]interface{})
	require.True(t, ok, "missing results")
	require.Len(t, rendered, 2)

	first, ok := rendered[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dev-util/foo", first["package"])
	assert.Equal(t, "update-available", first["status"])
	assert.Equal(t, "2.0.0", first["normalized"])

	second, ok := rendered[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "unknown", second["status"])
	// empty optional fields must be omitted entirely
	assert.NotContains(t, second, "upstreamTag")
	assert.NotContains(t, second, "publishedAt")
}

func TestJsonPresenterEmpty(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, NewPresenter(nil).Present(&buffer))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &doc))
	assert.Contains(t, doc, "results")
}
