// path: models/responses_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Optional text fields stay present (as empty strings) when unset, so
// clients always see the full record shape.
func TestLocationResponseKeepsOptionalKeys(t *testing.T) {
	loc := Location{Name: "Quiet Corner Cafe"}
	raw, err := json.Marshal(loc.Response())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Contains(t, m, "description")
	assert.Contains(t, m, "owner_id")
	assert.Equal(t, "", m["description"])
	assert.Equal(t, "", m["owner_id"])
}

func TestReviewResponseKeepsOptionalKeys(t *testing.T) {
	rev := Review{Anonymous: true}
	raw, err := json.Marshal(rev.Response())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Contains(t, m, "comment")
	assert.Contains(t, m, "reviewer_name")
	assert.Equal(t, "", m["comment"])
	assert.Equal(t, "", m["reviewer_name"])
}
