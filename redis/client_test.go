package redis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTaskDoc struct {
	Status   string   `json:"status"`
	Attempts int      `json:"attempts"`
	Errors   []string `json:"error_messages"`
}

func TestMergeUpdateChangesOnlyTouchedFields(t *testing.T) {
	raw := []byte(`{
		"status": "submitted",
		"attempts": 1,
		"error_messages": [],
		"submitted_by": "sequencer",
		"foreign_nested": {"owner": "other-service"}
	}`)

	var doc testTaskDoc
	merged, err := mergeUpdate(raw, &doc, func() {
		doc.Status = "started"
		doc.Attempts++
	})
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(merged, &result))

	require.Equal(t, "started", result["status"])
	require.Equal(t, float64(2), result["attempts"])

	// Fields owned by other services must survive the update.
	require.Equal(t, "sequencer", result["submitted_by"])
	require.Equal(t,
		map[string]interface{}{"owner": "other-service"},
		result["foreign_nested"],
	)
}

func TestMergeUpdateNoChanges(t *testing.T) {
	raw := []byte(`{"status":"submitted","attempts":0,"error_messages":null,"extra":42}`)

	var doc testTaskDoc
	merged, err := mergeUpdate(raw, &doc, func() {})
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(merged, &result))
	require.Equal(t, "submitted", result["status"])
	require.Equal(t, float64(42), result["extra"])
}

func TestMergeUpdateRejectsMalformedDocument(t *testing.T) {
	var doc testTaskDoc
	_, err := mergeUpdate([]byte(`not json`), &doc, func() {})
	require.Error(t, err)
}
