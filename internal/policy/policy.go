// SPDX-License-Identifier: AGPL-3.0-or-later

// Package policy holds the coding-standard configuration the checks run
// against: which extensions are policy-subject, size thresholds, marker
// tokens and the regular-expression tables. A Policy is plain data loadable
// from YAML; Compile turns it into the read-only Set the checks consume.
package policy

import (
	"fmt"
	"regexp"
	"strings"
)

// IncludePattern is one entry of the data-driven C++ include table. New
// disallowed forms are added here, not in check code.
type IncludePattern struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Message string `yaml:"message"`
}

// Policy is the raw, YAML-shaped configuration.
type Policy struct {
	// CheckedExtensions classifies files as policy-subject text. Content
	// checks skip everything else.
	CheckedExtensions []string `yaml:"checked_extensions"`

	// NewlineExtensions need a terminating newline.
	NewlineExtensions []string `yaml:"newline_extensions"`

	// TabExtensions disallow literal tabs. Empty means "same as
	// checked_extensions".
	TabExtensions []string `yaml:"tab_extensions"`

	// CppExtensions are subject to the include and exception rules.
	CppExtensions []string `yaml:"cpp_extensions"`

	IncludePatterns []IncludePattern `yaml:"include_patterns"`

	// ThrowPattern flags direct use of the base exception type.
	ThrowPattern string `yaml:"throw_pattern"`

	// IssuePattern recognizes an issue-tracker ID in the commit message.
	IssuePattern string `yaml:"issue_pattern"`

	// MergeExemptPattern exempts git-generated merge messages from the
	// issue-ID requirement.
	MergeExemptPattern string `yaml:"merge_exempt_pattern"`

	NoIssueMarker   string `yaml:"no_issue_marker"`
	LargeFileMarker string `yaml:"large_file_marker"`

	ForbiddenMarkers    []string `yaml:"forbidden_markers"`
	MarkerCaseSensitive bool     `yaml:"marker_case_sensitive"`

	// RecheckRenames re-runs the filename rules on modified (not only new)
	// paths, so renames that slipped in earlier are still caught.
	RecheckRenames *bool `yaml:"recheck_renames"`

	MaxPathLength int `yaml:"max_path_length"`

	// Size limits in bytes. The new-file limit is the soft one that the
	// large-file marker can lift; the modified-file limit is hard.
	NewFileSizeLimit      int64 `yaml:"new_file_size_limit"`
	ModifiedFileSizeLimit int64 `yaml:"modified_file_size_limit"`
}

const mib = 1 << 20

// Default returns the built-in policy. The values mirror the hook this
// tool replaces.
func Default() *Policy {
	return &Policy{
		CheckedExtensions: []string{
			".bat", ".c", ".cgi", ".cmake", ".cpp", ".cs", ".css",
			".F", ".f", ".h", ".inc", ".inl", ".java", ".js", ".php",
			".pri", ".pro", ".ps1", ".py", ".sed", ".sh", ".svc", ".tpl",
		},
		NewlineExtensions: []string{".c", ".cpp", ".h", ".inl"},
		CppExtensions:     []string{".cpp", ".h", ".inl"},
		IncludePatterns: []IncludePattern{
			{
				Name:    "backslash-include",
				Pattern: `^\s*#\s*include\s*["<][^">]*\\`,
				Message: "backslash in #include path",
			},
		},
		ThrowPattern:       `\bthrow\s+(std\s*::\s*)?exception\s*\(`,
		IssuePattern:       `\b[A-Z]{2,8}-[0-9]{1,5}\b`,
		MergeExemptPattern: `^Merge (branch|commit) '.+?'( of [^\s]+)? into .+`,
		NoIssueMarker:      "NO_JIRA",
		LargeFileMarker:    "LARGE_FILE",
		ForbiddenMarkers:   []string{"DO NOT MERGE", "DO NOT COMMIT"},
		MaxPathLength:      208,

		NewFileSizeLimit:      5 * mib,
		ModifiedFileSizeLimit: 99 * mib,
	}
}

// Set is the compiled, immutable form consumed by the checks. Safe for
// concurrent use.
type Set struct {
	checkedExts map[string]bool
	newlineExts map[string]bool
	tabExts     map[string]bool
	cppExts     map[string]bool

	includePatterns []CompiledInclude
	throwPattern    *regexp.Regexp
	issuePattern    *regexp.Regexp
	mergeExempt     *regexp.Regexp

	NoIssueMarker   string
	LargeFileMarker string

	ForbiddenMarkers    []string
	MarkerCaseSensitive bool

	RecheckRenames bool
	MaxPathLength  int

	NewFileSizeLimit      int64
	ModifiedFileSizeLimit int64
}

// CompiledInclude is a compiled row of the include table.
type CompiledInclude struct {
	Name    string
	Pattern *regexp.Regexp
	Message string
}

// Compile validates the policy and builds the Set.
func (p *Policy) Compile() (*Set, error) {
	s := &Set{
		checkedExts: extSet(p.CheckedExtensions),
		newlineExts: extSet(p.NewlineExtensions),
		cppExts:     extSet(p.CppExtensions),

		NoIssueMarker:       p.NoIssueMarker,
		LargeFileMarker:     p.LargeFileMarker,
		ForbiddenMarkers:    p.ForbiddenMarkers,
		MarkerCaseSensitive: p.MarkerCaseSensitive,
		RecheckRenames:      true,
		MaxPathLength:       p.MaxPathLength,

		NewFileSizeLimit:      p.NewFileSizeLimit,
		ModifiedFileSizeLimit: p.ModifiedFileSizeLimit,
	}
	if p.RecheckRenames != nil {
		s.RecheckRenames = *p.RecheckRenames
	}
	if len(p.TabExtensions) > 0 {
		s.tabExts = extSet(p.TabExtensions)
	} else {
		s.tabExts = s.checkedExts
	}

	for _, ip := range p.IncludePatterns {
		re, err := regexp.Compile(ip.Pattern)
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", ip.Name, err)
		}
		s.includePatterns = append(s.includePatterns, CompiledInclude{
			Name:    ip.Name,
			Pattern: re,
			Message: ip.Message,
		})
	}

	var err error
	if s.throwPattern, err = compileOptional(p.ThrowPattern); err != nil {
		return nil, fmt.Errorf("throw pattern: %w", err)
	}
	if s.issuePattern, err = compileOptional(p.IssuePattern); err != nil {
		return nil, fmt.Errorf("issue pattern: %w", err)
	}
	if s.mergeExempt, err = compileOptional(p.MergeExemptPattern); err != nil {
		return nil, fmt.Errorf("merge exempt pattern: %w", err)
	}
	return s, nil
}

func compileOptional(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	return regexp.Compile(expr)
}

func extSet(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		m[e] = true
	}
	return m
}

func hasExt(exts map[string]bool, path string) bool {
	for ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Checked reports whether the path is in the policy-subject text class.
func (s *Set) Checked(path string) bool { return hasExt(s.checkedExts, path) }

// NeedsNewline reports whether the path must end with a newline.
func (s *Set) NeedsNewline(path string) bool { return hasExt(s.newlineExts, path) }

// TabsDisallowed reports whether literal tabs are banned for the path.
func (s *Set) TabsDisallowed(path string) bool { return hasExt(s.tabExts, path) }

// Cpp reports whether the C++ rules apply to the path.
func (s *Set) Cpp(path string) bool { return hasExt(s.cppExts, path) }

// TextSubject reports whether the content checks should scan the file:
// policy-subject extension and no NUL byte. Binary blobs are skipped, not
// decoded.
func (s *Set) TextSubject(path string, raw []byte) bool {
	if !s.Checked(path) {
		return false
	}
	for _, b := range raw {
		if b == 0 {
			return false
		}
	}
	return true
}

// IncludeTable returns the compiled include rules.
func (s *Set) IncludeTable() []CompiledInclude { return s.includePatterns }

// ThrowPattern returns the compiled exception rule, nil when disabled.
func (s *Set) ThrowPattern() *regexp.Regexp { return s.throwPattern }

// IssuePattern returns the compiled issue-ID rule, nil when disabled.
func (s *Set) IssuePattern() *regexp.Regexp { return s.issuePattern }

// MergeExempt returns the merge-message exemption, nil when disabled.
func (s *Set) MergeExempt() *regexp.Regexp { return s.mergeExempt }
