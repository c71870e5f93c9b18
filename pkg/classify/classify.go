// Package classify decides whether a filename names an allowed
// plain-text file. Classification is purely lexical: extension and
// special-name lookups against an immutable allow rule, no I/O.
package classify

import "strings"

// AllowRule is the immutable allow-list a Classifier evaluates against.
// Extensions are stored lowercase with a leading dot; special names are
// stored lowercase and matched case-insensitively against the whole
// filename.
type AllowRule struct {
	extensions   map[string]bool
	specialNames map[string]bool
}

// NewAllowRule builds an AllowRule from explicit extension and special
// filename lists. Inputs are normalized to lowercase; extensions
// missing their leading dot get one.
func NewAllowRule(extensions, specialNames []string) AllowRule {
	rule := AllowRule{
		extensions:   make(map[string]bool, len(extensions)),
		specialNames: make(map[string]bool, len(specialNames)),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		rule.extensions[ext] = true
	}
	for _, name := range specialNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		rule.specialNames[name] = true
	}
	return rule
}

// DefaultRule returns the built-in allow-list: common plain-text and
// source-code extensions plus well-known extensionless files.
func DefaultRule() AllowRule {
	return NewAllowRule(DefaultExtensions(), DefaultSpecialNames())
}

// DefaultExtensions returns a copy of the built-in extension allow-list.
func DefaultExtensions() []string {
	out := make([]string, len(defaultExtensions))
	copy(out, defaultExtensions)
	return out
}

// DefaultSpecialNames returns a copy of the built-in special filename
// allow-list.
func DefaultSpecialNames() []string {
	out := make([]string, len(defaultSpecialNames))
	copy(out, defaultSpecialNames)
	return out
}

var defaultExtensions = []string{
	".txt", ".md", ".markdown", ".rst", ".html", ".htm", ".xml", ".csv", ".tsv",
	".ini", ".cfg", ".conf", ".properties", ".env",
	".json", ".yaml", ".yml", ".toml",
	".py", ".js", ".jsx", ".ts", ".tsx",
	".java", ".c", ".cpp", ".h", ".hpp", ".cs", ".go", ".rb", ".php", ".swift", ".kt",
	".sh", ".bash", ".zsh", ".fish", ".ps1", ".bat",
	".sql", ".pl", ".lua", ".r", ".scala", ".clj", ".groovy", ".dart",
	".css", ".scss", ".less",
}

var defaultSpecialNames = []string{
	"license", "makefile", "dockerfile",
	".editorconfig", ".gitattributes", ".gitignore", ".dockerignore",
}

// Classifier answers whether a filename is an allowed plain-text file.
type Classifier struct {
	rule AllowRule
}

// New returns a Classifier evaluating the given rule.
func New(rule AllowRule) *Classifier {
	return &Classifier{rule: rule}
}

// Allowed reports whether name refers to an allowed plain-text file.
// Special names match the full filename case-insensitively; otherwise
// the text after the last dot, lowercased, must be a listed extension.
// Total over any string; the empty string is not allowed.
func (c *Classifier) Allowed(name string) bool {
	lower := strings.ToLower(name)
	if c.rule.specialNames[lower] {
		return true
	}
	idx := strings.LastIndexByte(lower, '.')
	if idx < 0 {
		return false
	}
	return c.rule.extensions[lower[idx:]]
}
