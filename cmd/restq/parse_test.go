package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParseDescribesEachFrame(t *testing.T) {
	reqPath := writeRequestFile(t, strings.Join([]string{
		"GET /person?age=gt.30",
		"",
		"POST /category(category_id,name)",
		"1,Fiction",
		"",
	}, "\n"))
	out := filepath.Join(t.TempDir(), "out.txt")

	err := runParse(&parseFlags{input: reqPath, output: out})
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SELECT from person")
	assert.Contains(t, lines[1], "INSERT into category")
}

func TestRunParseRejectsInvalidHeader(t *testing.T) {
	reqPath := writeRequestFile(t, "PUT /+category{*category_id:s32\n")
	err := runParse(&parseFlags{input: reqPath})
	assert.Error(t, err)
}
