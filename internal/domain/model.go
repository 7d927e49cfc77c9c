package domain

import "encoding/json"

// StructureReport is the result of analyzing a role's directory layout.
type StructureReport struct {
	RoleName        string                     `json:"role_name"`
	Structure       map[string]DirectoryStatus `json:"structure"`
	Metadata        *RoleMetadata              `json:"metadata,omitempty"`
	Issues          []Issue                    `json:"issues"`
	Recommendations []Recommendation           `json:"recommendations"`
	Summary         StructureSummary           `json:"summary"`
}

// DirectoryStatus describes one expected subdirectory of the role.
// FileCount is set only when the directory exists.
type DirectoryStatus struct {
	Exists      bool   `json:"exists"`
	FileCount   *int   `json:"file_count,omitempty"`
	Description string `json:"description"`
}

// Issue is a hard compliance violation.
type Issue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

const SeverityError = "error"

// Recommendation is a soft best-practice suggestion.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	RecDocumentation = "documentation"
	RecMetadata      = "metadata"
	RecVariables     = "variables"
	RecTesting       = "testing"
	RecNaming        = "naming"
)

// RecommendationTypes lists every type a Recommendation can carry.
var RecommendationTypes = []string{
	RecDocumentation,
	RecMetadata,
	RecVariables,
	RecTesting,
	RecNaming,
}

// StructureSummary aggregates the other report fields.
type StructureSummary struct {
	DirectoriesPresent  int `json:"directories_present"`
	TotalExpected       int `json:"total_expected"`
	IssueCount          int `json:"issue_count"`
	RecommendationCount int `json:"recommendation_count"`
}

// RoleMetadata is the Galaxy metadata parsed from meta/main.yml.
type RoleMetadata struct {
	Author            string `json:"author,omitempty"`
	Description       string `json:"description,omitempty"`
	License           string `json:"license,omitempty"`
	MinAnsibleVersion string `json:"min_ansible_version,omitempty"`
	DependencyCount   int    `json:"dependency_count"`
}

// LintReport is the normalized result of one external lint invocation.
// Success is false only for invocation-level failures; a completed run with
// findings is still a success.
type LintReport struct {
	Success  bool      `json:"success"`
	Findings *Findings `json:"findings,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Stderr   string    `json:"stderr,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// LintFailure builds the report for an invocation that never completed.
func LintFailure(msg string) *LintReport {
	return &LintReport{Success: false, Error: msg}
}

// Findings holds lint output as either a parsed JSON value or raw text.
// The linter's JSON schema is opaque; nothing beyond "is it valid JSON" is
// validated.
type Findings struct {
	Structured any
	Raw        string
	IsRaw      bool
}

// StructuredFindings wraps a parsed JSON value.
func StructuredFindings(v any) *Findings {
	return &Findings{Structured: v}
}

// RawFindings wraps unparseable linter output verbatim.
func RawFindings(text string) *Findings {
	return &Findings{Raw: text, IsRaw: true}
}

// Count returns the number of finding records and whether the output was a
// sequence at all.
func (f *Findings) Count() (int, bool) {
	if f == nil || f.IsRaw {
		return 0, false
	}
	if f.Structured == nil {
		return 0, true
	}
	seq, ok := f.Structured.([]any)
	if !ok {
		return 0, false
	}
	return len(seq), true
}

func (f Findings) MarshalJSON() ([]byte, error) {
	if f.IsRaw {
		return json.Marshal(f.Raw)
	}
	if f.Structured == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.Structured)
}

func (f *Findings) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*f = Findings{Raw: raw, IsRaw: true}
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Findings{Structured: v}
	return nil
}

// HistoryEntry is one saved review summary.
type HistoryEntry struct {
	Timestamp           string `json:"timestamp"`
	RolePath            string `json:"role_path"`
	RoleName            string `json:"role_name"`
	CommitHash          string `json:"commit_hash,omitempty"`
	DirectoriesPresent  int    `json:"directories_present"`
	IssueCount          int    `json:"issue_count"`
	RecommendationCount int    `json:"recommendation_count"`
}
