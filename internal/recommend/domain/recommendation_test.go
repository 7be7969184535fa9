package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDrafts(t *testing.T) {
	payload := []byte(`[
		{"title":"Dune","author":"Frank Herbert","price":12.99,"description":"Desert planet epic.","category":"Science Fiction","rating":4.8},
		{"title":"Free Book","author":"Anon","price":0,"description":"Zero price is a value, not an omission.","category":"Fiction","rating":0}
	]`)

	drafts, err := DecodeDrafts(payload)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "Dune", drafts[0].Title)
	assert.InDelta(t, 12.99, drafts[0].Price, 1e-9)

	// Explicit zeroes pass validation
	assert.Zero(t, drafts[1].Price)
	assert.Zero(t, drafts[1].Rating)
}

func TestDecodeDraftsEmptyArray(t *testing.T) {
	drafts, err := DecodeDrafts([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestDecodeDraftsRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{name: "not an array", payload: `{"title":"x"}`, wantMsg: "not a valid array"},
		{name: "not json", payload: `oops`, wantMsg: "not a valid array"},
		{
			name:    "missing title",
			payload: `[{"author":"a","price":1,"description":"d","category":"c","rating":4}]`,
			wantMsg: "record 0: missing title",
		},
		{
			name:    "missing rating in second record",
			payload: `[{"title":"t","author":"a","price":1,"description":"d","category":"c","rating":4},{"title":"t","author":"a","price":1,"description":"d","category":"c"}]`,
			wantMsg: "record 1: missing rating",
		},
		{
			name:    "mis-typed price",
			payload: `[{"title":"t","author":"a","price":"cheap","description":"d","category":"c","rating":4}]`,
			wantMsg: "not a valid array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDrafts([]byte(tt.payload))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
