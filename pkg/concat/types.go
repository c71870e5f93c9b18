package concat

import "path/filepath"

// FileEntry identifies one input file: its resolved absolute path and
// the display name used in section headers.
type FileEntry struct {
	Path string // resolved absolute path
	Name string // basename shown in the output header
}

// NewFileEntry builds a FileEntry for path, resolving it to a cleaned
// absolute path. Resolution is lexical; symlinks are not followed.
func NewFileEntry(path string) (FileEntry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileEntry{}, err
	}
	abs = filepath.Clean(abs)
	return FileEntry{Path: abs, Name: filepath.Base(abs)}, nil
}

// FileSet is an ordered collection of FileEntry with a uniqueness
// guarantee: no two entries share the same resolved absolute path.
type FileSet struct {
	entries []FileEntry
	seen    map[string]bool
}

// NewFileSet returns an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{seen: make(map[string]bool)}
}

// Add appends entry to the set, preserving insertion order. It returns
// false without modifying the set when the entry's path is already
// present.
func (s *FileSet) Add(entry FileEntry) bool {
	if s.seen[entry.Path] {
		return false
	}
	s.seen[entry.Path] = true
	s.entries = append(s.entries, entry)
	return true
}

// Contains reports whether the resolved path is already in the set.
func (s *FileSet) Contains(path string) bool {
	return s.seen[path]
}

// Len returns the number of entries.
func (s *FileSet) Len() int {
	return len(s.entries)
}

// Entries returns the entries in order. The returned slice is a copy;
// mutating it does not affect the set.
func (s *FileSet) Entries() []FileEntry {
	out := make([]FileEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// SortNatural reorders the set in natural order of display names. List
// imports preserve user order by default; this is the explicit opt-in.
func (s *FileSet) SortNatural() {
	sortEntries(s.entries)
}

// FileFailure records one input file the engine could not read.
type FileFailure struct {
	Entry  FileEntry
	Reason string
}

// ConcatenationResult partitions a run's input set: every entry lands
// in exactly one of Succeeded or Failed, both in input order.
type ConcatenationResult struct {
	Succeeded []FileEntry
	Failed    []FileFailure
}

// OK reports whether every input file was written.
func (r *ConcatenationResult) OK() bool {
	return len(r.Failed) == 0
}
