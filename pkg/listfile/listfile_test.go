package listfile

import (
	"os"
	"path/filepath"
	"testing"

	"textcat/pkg/classify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return NewParser(classify.New(classify.DefaultRule()), nil)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestParseRoundTrip covers the canonical mixed list file: a relative
// path, a quoted path, a comment, a blank line, and a missing file.
func TestParseRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A")
	b := writeFile(t, dir, "b.md", "B")

	listPath := writeFile(t, dir, "files.list",
		"a.txt\n"+
			"\n"+
			"# a comment\n"+
			"; another comment\n"+
			"\"b.md\"\n"+
			"missing.txt\n")

	set, report, err := newTestParser().Parse(listPath)
	require.NoError(t, err)

	entries := set.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, a, entries[0].Path)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, b, entries[1].Path)

	assert.Equal(t, []string{a, b}, report.Added)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, filepath.Join(dir, "missing.txt"), report.Missing[0])
	assert.Empty(t, report.Duplicate)
	assert.Empty(t, report.NotAllowed)
	assert.Empty(t, report.Malformed)
}

func TestParseDuplicateSuppression(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A")

	listPath := writeFile(t, dir, "files.list", "a.txt\n'a.txt'\n")

	set, report, err := newTestParser().Parse(listPath)
	require.NoError(t, err)

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, []string{a}, report.Added)
	assert.Equal(t, []string{a}, report.Duplicate)
}

// TestParseClassificationOrder: a path that is both missing and outside
// the allow-list counts as missing, and an existing disallowed file
// counts as not-allowed, never missing.
func TestParseClassificationOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.ipynb", "{}")

	listPath := writeFile(t, dir, "files.list", "gone.ipynb\ndata.ipynb\n")

	set, report, err := newTestParser().Parse(listPath)
	require.NoError(t, err)

	assert.Equal(t, 0, set.Len())
	assert.Equal(t, []string{filepath.Join(dir, "gone.ipynb")}, report.Missing)
	assert.Equal(t, []string{filepath.Join(dir, "data.ipynb")}, report.NotAllowed)
}

func TestParseEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A")
	listPath := writeFile(t, dir, "files.list", "$DATA_DIR/a.txt\n")

	p := newTestParser()
	p.lookupEnv = func(name string) (string, bool) {
		if name == "DATA_DIR" {
			return dir, true
		}
		return "", false
	}

	set, report, err := p.Parse(listPath)
	require.NoError(t, err)
	assert.Equal(t, []string{a}, report.Added)
	assert.Equal(t, 1, set.Len())
}

func TestParseUndefinedEnvVarIsMalformed(t *testing.T) {
	dir := t.TempDir()
	listPath := writeFile(t, dir, "files.list", "$NO_SUCH_VAR_1234/a.txt\n")

	p := newTestParser()
	p.lookupEnv = func(string) (string, bool) { return "", false }

	set, report, err := p.Parse(listPath)
	require.NoError(t, err, "malformed lines must not abort the parse")

	assert.Equal(t, 0, set.Len())
	require.Len(t, report.Malformed, 1)
	assert.Equal(t, 1, report.Malformed[0].LineNo)
	assert.Contains(t, report.Malformed[0].Reason, "NO_SUCH_VAR_1234")
}

func TestParseHomeExpansion(t *testing.T) {
	home := t.TempDir()
	a := writeFile(t, home, "a.txt", "A")

	dir := t.TempDir()
	listPath := writeFile(t, dir, "files.list", "~/a.txt\n~user/a.txt\n")

	p := newTestParser()
	p.homeDir = func() (string, error) { return home, nil }

	set, report, err := p.Parse(listPath)
	require.NoError(t, err)

	assert.Equal(t, []string{a}, report.Added)
	assert.Equal(t, 1, set.Len())
	require.Len(t, report.Malformed, 1, "~user expansion is unsupported and must be reported")
	assert.Equal(t, 2, report.Malformed[0].LineNo)
}

func TestParseRelativeToListFileNotCwd(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	a := writeFile(t, sub, "a.txt", "A")

	// Relative entry resolves against the list file's directory even
	// though the process working directory is elsewhere.
	listPath := writeFile(t, sub, "files.list", "a.txt\n")

	set, report, err := newTestParser().Parse(listPath)
	require.NoError(t, err)
	assert.Equal(t, []string{a}, report.Added)
	assert.Equal(t, 1, set.Len())
}

func TestParseBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "A")

	listPath := writeFile(t, dir, "files.list", "\xEF\xBB\xBFa.txt\r\n")

	_, report, err := newTestParser().Parse(listPath)
	require.NoError(t, err)
	assert.Equal(t, []string{a}, report.Added)
}

func TestParseMissingListFileIsHardError(t *testing.T) {
	set, report, err := newTestParser().Parse(filepath.Join(t.TempDir(), "nope.list"))
	assert.Error(t, err)
	assert.Nil(t, set)
	assert.Nil(t, report)
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "double quoted", in: `"a b.txt"`, want: "a b.txt"},
		{name: "single quoted", in: "'a.txt'", want: "a.txt"},
		{name: "one layer only", in: `""a.txt""`, want: `"a.txt"`},
		{name: "mismatched kept", in: `"a.txt'`, want: `"a.txt'`},
		{name: "unterminated kept", in: `"a.txt`, want: `"a.txt`},
		{name: "bare", in: "a.txt", want: "a.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripQuotes(tt.in))
		})
	}
}
