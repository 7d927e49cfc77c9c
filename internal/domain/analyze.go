package domain

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
)

// AnalyzeStructure maps a role scan to a structure report. Pure: all
// filesystem access happens in the scanner, so identical scans produce
// identical reports.
func AnalyzeStructure(scan *RoleScan, metadata *RoleMetadata, cfg ReviewConfig) *StructureReport {
	report := &StructureReport{
		RoleName:        scan.RoleName,
		Structure:       make(map[string]DirectoryStatus, len(ExpectedDirs)),
		Metadata:        metadata,
		Issues:          []Issue{},
		Recommendations: []Recommendation{},
	}

	present := 0
	for _, entry := range ExpectedDirs {
		es := scan.Entries[entry.Name]
		status := DirectoryStatus{
			Exists:      es.Exists,
			Description: entry.Description,
		}
		if es.Exists {
			count := es.FileCount
			status.FileCount = &count
			present++
		}
		report.Structure[entry.Name] = status
	}

	// tasks/main.yml is the only hard requirement; everything else is
	// advisory.
	if !scan.HasTasksMain {
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Message:  "Missing tasks/main.yml - required entry point for role",
		})
	}

	// Recommendation checks are independent of each other and of the
	// issue check.
	recommend := func(recType, message string) {
		if cfg.Skip.SkipsRecommendation(recType) {
			return
		}
		report.Recommendations = append(report.Recommendations, Recommendation{
			Type:    recType,
			Message: message,
		})
	}

	if !scan.HasReadme {
		recommend(RecDocumentation, "Consider adding README.md to document the role")
	}
	if !scan.HasMetaMain {
		recommend(RecMetadata, "Consider adding meta/main.yml for Ansible Galaxy compatibility")
	}
	if !scan.HasDefaultsMain {
		recommend(RecVariables, "Consider adding defaults/main.yml to define role defaults")
	}
	if !scan.HasTestsDir && !scan.HasMoleculeDir {
		recommend(RecTesting, "Consider adding tests/ or molecule/ directory for role testing")
	}
	if suggested := GalaxyRoleName(scan.RoleName); suggested != scan.RoleName {
		recommend(RecNaming, fmt.Sprintf(
			"Consider renaming role to %q - Ansible Galaxy expects lowercase letters, digits and underscores", suggested))
	}

	report.Summary = StructureSummary{
		DirectoriesPresent:  present,
		TotalExpected:       len(ExpectedDirs),
		IssueCount:          len(report.Issues),
		RecommendationCount: len(report.Recommendations),
	}

	return report
}

// GalaxyRoleName normalizes a role name to the snake_case form Ansible
// Galaxy expects. Names that are already compliant come back unchanged.
func GalaxyRoleName(name string) string {
	split := camelcase.Split(name)
	// camelcase treats digit runs as their own words; "nginx2" is already
	// fine, so fold digits back into the preceding word.
	words := make([]string, 0, len(split))
	for _, w := range split {
		if isDigits(w) && len(words) > 0 {
			words[len(words)-1] += w
			continue
		}
		words = append(words, w)
	}
	joined := strings.Join(words, "_")
	joined = strings.Map(func(r rune) rune {
		switch r {
		case '-', ' ', '.':
			return '_'
		}
		return r
	}, joined)
	for strings.Contains(joined, "__") {
		joined = strings.ReplaceAll(joined, "__", "_")
	}
	return strings.ToLower(strings.Trim(joined, "_"))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
