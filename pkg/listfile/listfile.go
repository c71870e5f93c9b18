// Package listfile parses user-authored list files: plain-text files
// naming one path per line, with shell-like conveniences (comments,
// quoting, environment-variable and home-directory expansion, paths
// relative to the list file). Parsing is best-effort: individual bad
// lines are reported, never fatal; only an unreadable list file aborts.
package listfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textcat/pkg/classify"
	"textcat/pkg/concat"

	"go.uber.org/zap"
)

// MalformedLine describes a list-file line that could not be resolved
// into a path.
type MalformedLine struct {
	LineNo int    // 1-based line number in the list file
	Text   string // the line as read, trimmed
	Reason string
}

// ImportReport is the structured outcome of parsing a list file. All
// slices preserve file order. The report is read-only once returned.
type ImportReport struct {
	Added      []string // resolved paths appended to the FileSet
	Duplicate  []string // resolved paths already present in the set
	NotAllowed []string // existing files outside the allow-list
	Missing    []string // paths that do not name an existing regular file
	Malformed  []MalformedLine
}

// Skipped returns the total number of lines that named a path but did
// not produce a FileSet entry.
func (r *ImportReport) Skipped() int {
	return len(r.Duplicate) + len(r.NotAllowed) + len(r.Missing) + len(r.Malformed)
}

// Parser turns list files into validated FileSets.
type Parser struct {
	classifier *classify.Classifier
	logger     *zap.Logger

	lookupEnv func(string) (string, bool)
	homeDir   func() (string, error)
}

// NewParser returns a Parser validating entries against the given
// classifier. A nil logger disables logging.
func NewParser(classifier *classify.Classifier, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		classifier: classifier,
		logger:     logger,
		lookupEnv:  os.LookupEnv,
		homeDir:    os.UserHomeDir,
	}
}

// Parse reads the list file at listPath and resolves its lines into a
// FileSet plus an ImportReport. Line order is preserved. Lines that are
// blank or start with '#' or ';' are ignored; a line wrapped in
// matching single or double quotes loses exactly one layer of quoting;
// environment variables and a leading '~' are expanded; relative paths
// resolve against the list file's directory. Each resolved path is then
// classified as missing, not-allowed, duplicate, or added, in that
// order. Only a missing or unreadable list file is a hard error.
func (p *Parser) Parse(listPath string) (*concat.FileSet, *ImportReport, error) {
	raw, err := os.ReadFile(listPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read list file: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	absList, err := filepath.Abs(listPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve list file path: %w", err)
	}
	baseDir := filepath.Dir(absList)

	set := concat.NewFileSet()
	report := &ImportReport{}

	for i, rawLine := range strings.Split(string(raw), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(strings.TrimSuffix(rawLine, "\r"))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		line = stripQuotes(line)

		expanded, expandErr := p.expand(line)
		if expandErr != nil {
			p.logger.Debug("Malformed list-file line",
				zap.Int("line", lineNo),
				zap.String("text", line),
				zap.Error(expandErr))
			report.Malformed = append(report.Malformed, MalformedLine{
				LineNo: lineNo,
				Text:   line,
				Reason: expandErr.Error(),
			})
			continue
		}

		candidate := expanded
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(baseDir, candidate)
		}
		candidate = filepath.Clean(candidate)

		info, statErr := os.Stat(candidate)
		if statErr != nil || !info.Mode().IsRegular() {
			report.Missing = append(report.Missing, candidate)
			continue
		}
		if !p.classifier.Allowed(filepath.Base(candidate)) {
			report.NotAllowed = append(report.NotAllowed, candidate)
			continue
		}
		if !set.Add(concat.FileEntry{Path: candidate, Name: filepath.Base(candidate)}) {
			report.Duplicate = append(report.Duplicate, candidate)
			continue
		}
		report.Added = append(report.Added, candidate)
	}

	p.logger.Debug("Parsed list file",
		zap.String("listFile", absList),
		zap.Int("added", len(report.Added)),
		zap.Int("skipped", report.Skipped()))
	return set, report, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripQuotes removes exactly one layer of matching single or double
// quotes wrapping the whole line. Unmatched quotes are left alone.
func stripQuotes(line string) string {
	if len(line) < 2 {
		return line
	}
	first, last := line[0], line[len(line)-1]
	if first == last && (first == '"' || first == '\'') {
		return line[1 : len(line)-1]
	}
	return line
}

// expand applies home-directory and environment-variable expansion. A
// reference to an undefined variable or an unsupported '~user' form is
// an error; silently expanding to the empty string would turn a typo
// into a mangled path and a misleading missing-file report.
func (p *Parser) expand(line string) (string, error) {
	if line == "~" || strings.HasPrefix(line, "~/") || strings.HasPrefix(line, `~\`) {
		home, err := p.homeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}
		line = home + line[1:]
	} else if strings.HasPrefix(line, "~") {
		return "", fmt.Errorf("unsupported home-directory reference %q", line)
	}

	var missing []string
	expanded := os.Expand(line, func(name string) string {
		if val, ok := p.lookupEnv(name); ok {
			return val
		}
		missing = append(missing, name)
		return ""
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("undefined environment variable %q", missing[0])
	}
	return expanded, nil
}
