package mcplog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerEmptyPath(t *testing.T) {
	l, err := NewLogger("")
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestWriteAppendsJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tools.jsonl")

	l, err := NewLogger(path)
	require.NoError(t, err)
	defer l.Close()

	errMsg := "catalog not loaded"
	entries := []LogEntry{
		{Ts: "2026-01-02T15:04:05Z", Tool: "get_token", Params: map[string]any{"name": "color-primary"}, DurationMs: 3, ResponseBytes: 128, TokensEst: 32},
		{Ts: "2026-01-02T15:04:06Z", Tool: "check_contrast", Error: &errMsg},
	}
	for _, e := range entries {
		require.NoError(t, l.Write(e))
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var got []LogEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e LogEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		got = append(got, e)
	}
	require.NoError(t, sc.Err())

	require.Len(t, got, 2)
	assert.Equal(t, "get_token", got[0].Tool)
	assert.Equal(t, int64(3), got[0].DurationMs)
	assert.Nil(t, got[0].Error)
	require.NotNil(t, got[1].Error)
	assert.Equal(t, "catalog not loaded", *got[1].Error)
}

func TestSanitizeParams(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	args := map[string]any{
		"name":   "spacing-md",
		"styles": string(long),
		"limit":  float64(5),
	}

	out := SanitizeParams(args)

	assert.Equal(t, "spacing-md", out["name"])
	assert.Equal(t, float64(5), out["limit"])
	assert.NotContains(t, out, "styles")
	assert.Equal(t, 500, out["styles_len"])
}

func TestResponseBytes(t *testing.T) {
	assert.Equal(t, 0, ResponseBytes(nil))

	res := mcp.NewToolResultText(`{"name":"color-primary"}`)
	assert.Greater(t, ResponseBytes(res), 0)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(0))
	assert.Equal(t, 0, EstimateTokens(3))
	assert.Equal(t, 32, EstimateTokens(128))
}
