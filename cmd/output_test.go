package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/fotmob/batch"
	"github.com/s0up4200/fotmob/fotmob"
)

func mustDecode(t *testing.T, s string) fotmob.Value {
	t.Helper()
	var v fotmob.Value
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestRender(t *testing.T) {
	doc := mustDecode(t, `{"name":"Palermo","ids":[1,2.5]}`)

	tests := []struct {
		name       string
		expression string
		indent     bool
		want       string
	}{
		{
			name: "compact",
			want: `{"ids":[1,2.5],"name":"Palermo"}` + "\n",
		},
		{
			name:   "indented",
			indent: true,
			want:   "{\n  \"ids\": [\n    1,\n    2.5\n  ],\n  \"name\": \"Palermo\"\n}\n",
		},
		{
			name:       "projected",
			expression: "ids[1]",
			want:       "2.5\n",
		},
		{
			name:       "projected collection",
			expression: "map(ids, # * 2)",
			want:       "[2,5]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render(&buf, doc, tt.expression, tt.indent))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderInvalidQuery(t *testing.T) {
	var buf bytes.Buffer
	err := render(&buf, fotmob.Null(), "1 +", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query")
	assert.Empty(t, buf.String())
}

func TestPrintBatchItem(t *testing.T) {
	resetFlags(rootCmd)

	var buf bytes.Buffer
	item := batch.Item{ID: "47", Value: mustDecode(t, `{"a":true}`)}

	require.NoError(t, printBatchItem(&buf, item))
	assert.Equal(t, `{"id":"47","data":{"a":true}}`+"\n", buf.String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}
