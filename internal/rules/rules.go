package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultSensitiveFiles are substrings that mark a staged path as sensitive.
var DefaultSensitiveFiles = []string{
	".env",
	"credentials",
	".pem",
	".key",
}

// DefaultSensitivePatterns are regex heuristics for secrets in diff content.
// They are matched case-insensitively.
var DefaultSensitivePatterns = []string{
	`password\s*=\s*["'][^"']+["']`,
	`secret\s*=\s*["'][^"']+["']`,
	`api[_-]?key\s*=\s*["'][^"']+["']`,
	`token\s*=\s*["'][^"']+["']`,
	`credential`,
	`private[_-]?key`,
}

// DefaultSkipDirectories are path prefixes excluded from every check.
var DefaultSkipDirectories = []string{
	".claude/",
}

// Kind identifies which check produced an issue.
type Kind string

const (
	KindFile    Kind = "file"
	KindPattern Kind = "pattern"
)

// Issue describes one violation found in a staged file.
type Issue struct {
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
	Rule string `json:"rule"`
}

func (i Issue) String() string {
	if i.Kind == KindFile {
		return "Sensitive file detected: " + i.Path
	}
	return fmt.Sprintf("Sensitive pattern in %s: %s", i.Path, i.Rule)
}

// ContentRule is a compiled content pattern. Pattern keeps the source text
// so issues report the rule as it was written.
type ContentRule struct {
	Pattern string
	re      *regexp.Regexp
}

// MatchString reports whether the rule matches text.
func (r ContentRule) MatchString(text string) bool {
	return r.re.MatchString(text)
}

// Set is an immutable, ordered rule set.
type Set struct {
	files    []string
	content  []ContentRule
	skipDirs []string
}

// Default returns the built-in rule set.
func Default() *Set {
	s, err := Compile(nil, nil, nil)
	if err != nil {
		// Built-in patterns are static and known to compile.
		panic(err)
	}
	return s
}

// Compile builds a Set from the defaults plus the given extra entries.
// Extras are appended in order; entries already present are dropped.
func Compile(files, patterns, skipDirs []string) (*Set, error) {
	s := &Set{
		files:    merge(DefaultSensitiveFiles, files),
		skipDirs: merge(DefaultSkipDirectories, skipDirs),
	}
	for _, p := range merge(DefaultSensitivePatterns, patterns) {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", p, err)
		}
		s.content = append(s.content, ContentRule{Pattern: p, re: re})
	}
	return s, nil
}

// Files returns the filename substrings in match order.
func (s *Set) Files() []string {
	return append([]string(nil), s.files...)
}

// Content returns the content rules in match order.
func (s *Set) Content() []ContentRule {
	return append([]ContentRule(nil), s.content...)
}

// SkipDirectories returns the excluded path prefixes.
func (s *Set) SkipDirectories() []string {
	return append([]string(nil), s.skipDirs...)
}

// Skipped reports whether path sits under an excluded directory.
func (s *Set) Skipped(path string) bool {
	for _, dir := range s.skipDirs {
		if strings.HasPrefix(path, dir) {
			return true
		}
	}
	return false
}

// CheckName returns one issue per sensitive substring found in the
// lowercased path.
func (s *Set) CheckName(path string) []Issue {
	lower := strings.ToLower(path)
	var issues []Issue
	for _, sub := range s.files {
		if strings.Contains(lower, strings.ToLower(sub)) {
			issues = append(issues, Issue{Kind: KindFile, Path: path, Rule: sub})
		}
	}
	return issues
}

// CheckContent returns one issue per content rule matching diff.
func (s *Set) CheckContent(path, diff string) []Issue {
	if diff == "" {
		return nil
	}
	var issues []Issue
	for _, r := range s.content {
		if r.MatchString(diff) {
			issues = append(issues, Issue{Kind: KindPattern, Path: path, Rule: r.Pattern})
		}
	}
	return issues
}

func merge(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, v := range list {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
