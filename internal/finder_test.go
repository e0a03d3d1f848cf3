package internal

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLine(t *testing.T, line string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = RunCommand(Tokenize(line), CommandConfig{Out: &out, Err: &errOut})
	return out.String(), errOut.String(), err
}

func TestRunCommand_NoArguments(t *testing.T) {
	_, _, err := runLine(t, "")
	assert.True(t, errors.Is(err, ErrNoArguments))
	_, _, err = runLine(t, `  "" `)
	assert.True(t, errors.Is(err, ErrNoArguments))
}

func TestRunCommand_UnknownCommand(t *testing.T) {
	out, errOut, err := runLine(t, "find foo -d .")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestRunCommand_MissingArguments(t *testing.T) {
	out, errOut, err := runLine(t, "search")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "Error: missing required arguments.\nUse 'search -h' to display help.\n", errOut)
}

func TestRunCommand_UsageWhenIncomplete(t *testing.T) {
	out, _, err := runLine(t, "search foo")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.NotContains(t, out, "Search summary")

	out, _, err = runLine(t, "search foo -d . -h")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestRunCommand_Search(t *testing.T) {
	dir := t.TempDir()
	mkTree(t, dir, "README.TXT", "docs/readme.md", "docs/deep/nested/readme_old")

	out, errOut, err := runLine(t, "search Readme -d "+dir+" --max-depth 1 --max-results x")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning: --max-results")

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Search pattern: Readme", lines[0])
	assert.Equal(t, "Search directory: "+dir, lines[1])
	assert.Equal(t, "[0]"+filepath.Join(dir, "README.TXT"), lines[3])
	assert.Equal(t, "[1]"+filepath.Join(dir, "docs", "readme.md"), lines[4])
	assert.Contains(t, out, "\nSearch summary:\n  Files found: 2\n  Time elapsed: ")
	assert.NotContains(t, out, "readme_old")
}

func TestRunCommand_LeadingSpace(t *testing.T) {
	dir := t.TempDir()
	mkTree(t, dir, "foo.txt")

	out, errOut, err := runLine(t, "  search foo -d "+dir)
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "[0]"+filepath.Join(dir, "foo.txt")+"\n")
	assert.Contains(t, out, "Files found: 1\n")
}

func TestRunCommand_MissingDirectoryIsSilent(t *testing.T) {
	dir := t.TempDir()
	out, errOut, err := runLine(t, "search foo -d "+filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Files found: 0\n  Time elapsed: 0 ms\n")
}
