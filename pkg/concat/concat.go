// Package concat resolves sets of plain-text files and concatenates
// them into a single labeled output file. Discovery filters a folder's
// immediate entries through the type classifier and orders them
// naturally; concatenation reads each entry in turn, isolating per-file
// read failures so one bad file never aborts a run.
package concat

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"textcat/pkg/classify"
	"textcat/pkg/natsort"

	"go.uber.org/zap"
)

// Engine performs folder discovery and file concatenation. Runs are
// synchronous and self-contained; an Engine holds no per-run state and
// may be reused freely.
type Engine struct {
	classifier *classify.Classifier
	logger     *zap.Logger
}

// NewEngine returns an Engine using the given classifier. A nil logger
// disables logging.
func NewEngine(classifier *classify.Classifier, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{classifier: classifier, logger: logger}
}

// Discover lists the immediate entries of folder, keeps regular files
// the classifier allows, and returns them as a FileSet in natural order
// of filename. It does not recurse. An unreadable folder is a hard
// error.
func (e *Engine) Discover(folder string) (*FileSet, error) {
	absFolder, err := filepath.Abs(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder path: %w", err)
	}

	info, err := os.Stat(absFolder)
	if err != nil {
		return nil, fmt.Errorf("folder does not exist or cannot be accessed: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", absFolder)
	}

	dirEntries, err := os.ReadDir(absFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if !de.Type().IsRegular() {
			e.logger.Debug("Skipping non-regular entry", zap.String("name", de.Name()))
			continue
		}
		if !e.classifier.Allowed(de.Name()) {
			e.logger.Debug("Skipping file outside allow-list", zap.String("name", de.Name()))
			continue
		}
		names = append(names, de.Name())
	}
	natsort.Sort(names)

	set := NewFileSet()
	for _, name := range names {
		set.Add(FileEntry{Path: filepath.Join(absFolder, name), Name: name})
	}

	e.logger.Debug("Discovered files",
		zap.String("folder", absFolder),
		zap.Int("count", set.Len()))
	return set, nil
}

// Concatenate reads every entry of set in order and writes the labeled
// sections to outputPath, overwriting any existing file there. An entry
// that cannot be read is recorded as failed and skipped; undecodable
// UTF-8 byte sequences are replaced with U+FFFD rather than treated as
// errors. Only an unwritable output destination is a hard error.
func (e *Engine) Concatenate(set *FileSet, outputPath string) (*ConcatenationResult, error) {
	outFile, err := os.Create(outputPath)
	if err != nil {
		e.logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			e.logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(cerr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	result := &ConcatenationResult{}

	for _, entry := range set.Entries() {
		raw, readErr := os.ReadFile(entry.Path)
		if readErr != nil {
			e.logger.Warn("Skipping unreadable file",
				zap.String("file", entry.Path),
				zap.Error(readErr))
			result.Failed = append(result.Failed, FileFailure{Entry: entry, Reason: readErr.Error()})
			continue
		}

		if _, err := writer.WriteString(formatSection(entry.Name, decodeUTF8(raw))); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		result.Succeeded = append(result.Succeeded, entry)
		e.logger.Debug("Wrote file section",
			zap.String("file", entry.Path),
			zap.Int("sizeBytes", len(raw)))
	}

	if err := writer.Flush(); err != nil {
		e.logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return nil, fmt.Errorf("failed to flush output: %w", err)
	}

	e.logger.Info("Concatenation completed",
		zap.String("outputFile", outputPath),
		zap.Int("written", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)))
	return result, nil
}

// formatSection renders one file's labeled block: the header line, one
// blank line, the content, then two blank lines.
func formatSection(name, content string) string {
	return fmt.Sprintf("--- File: %s ---\n\n%s\n\n\n", name, content)
}

// decodeUTF8 interprets raw as UTF-8, substituting the replacement
// character for any invalid byte sequence.
func decodeUTF8(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}

func sortEntries(entries []FileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return natsort.Less(entries[i].Name, entries[j].Name)
	})
}
