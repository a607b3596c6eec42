package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/shadowCow/langfuzz/ast"
	"github.com/stretchr/testify/require"
)

func writeGrammarFile(t *testing.T, g *ast.Grammar) string {
	t.Helper()
	data, err := json.Marshal(g)
	require.NoError(t, err)
	path := t.TempDir() + "/grammar.json"
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunMisusesOnMissingArgument(t *testing.T) {
	var out, errOut bytes.Buffer
	code := runWithArgs(nil, &out, &errOut)
	require.Equal(t, exitMisuse, code)
	require.Contains(t, errOut.String(), "usage")
}

func TestRunMisusesOnUnreadableFile(t *testing.T) {
	var out, errOut bytes.Buffer
	code := runWithArgs([]string{t.TempDir() + "/does-not-exist.json"}, &out, &errOut)
	require.Equal(t, exitMisuse, code)
}

func TestRunGrammarErrorOnInvalidGrammar(t *testing.T) {
	path := writeGrammarFile(t, ast.LoopGrammar())

	var out, errOut bytes.Buffer
	code := runWithArgs([]string{path}, &out, &errOut)
	require.Equal(t, exitGrammarError, code)
	require.Contains(t, errOut.String(), "Infinite loop")
}

func TestRunGrammarErrorOnMalformedJSON(t *testing.T) {
	path := t.TempDir() + "/grammar.json"
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	var out, errOut bytes.Buffer
	code := runWithArgs([]string{path}, &out, &errOut)
	require.Equal(t, exitGrammarError, code)
}

func TestRunEmitsLimitedSentences(t *testing.T) {
	path := writeGrammarFile(t, ast.ExampleAlternatingAOrBGrammar())

	var out, errOut bytes.Buffer
	code := runWithArgs([]string{"--limit", "3", path}, &out, &errOut)
	require.Equal(t, exitSuccess, code)
	require.Empty(t, errOut.String())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Equal(t, []string{"a", "ba", "bba"}, lines)
}

func TestRunJSONEncodesEachSentence(t *testing.T) {
	path := writeGrammarFile(t, ast.ExampleAlternatingAOrBGrammar())

	var out, errOut bytes.Buffer
	code := runWithArgs([]string{"--json", "-n", "2", path}, &out, &errOut)
	require.Equal(t, exitSuccess, code)
	require.Equal(t, "\"a\"\n\"ba\"\n", out.String())
}

func TestRunTracesWithDebugFlag(t *testing.T) {
	path := writeGrammarFile(t, ast.ExampleAlternatingAOrBGrammar())

	var out, errOut bytes.Buffer
	code := runWithArgs([]string{"--debug", "-n", "1", path}, &out, &errOut)
	require.Equal(t, exitSuccess, code)
	require.NotEmpty(t, errOut.String())
}
