package domain_test

import (
	"testing"

	"github.com/rolelens/rolelens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyScan(name string) *domain.RoleScan {
	return &domain.RoleScan{
		RootPath: "/tmp/" + name,
		RoleName: name,
		Entries:  map[string]domain.EntryScan{},
	}
}

func fullScan(name string) *domain.RoleScan {
	scan := emptyScan(name)
	for _, entry := range domain.ExpectedDirs {
		scan.Entries[entry.Name] = domain.EntryScan{Exists: true, FileCount: 1}
	}
	scan.HasTasksMain = true
	scan.HasMetaMain = true
	scan.HasDefaultsMain = true
	scan.HasReadme = true
	scan.HasTestsDir = true
	return scan
}

func TestAnalyzeStructure_EmptyRole(t *testing.T) {
	report := domain.AnalyzeStructure(emptyScan("myrole"), nil, domain.DefaultConfig())

	assert.Equal(t, "myrole", report.RoleName)
	assert.Len(t, report.Structure, 10)
	for name, status := range report.Structure {
		assert.False(t, status.Exists, "entry %s should be absent", name)
		assert.Nil(t, status.FileCount, "absent entry %s should omit file_count", name)
		assert.NotEmpty(t, status.Description)
	}

	require.Len(t, report.Issues, 1)
	assert.Equal(t, domain.SeverityError, report.Issues[0].Severity)
	assert.Contains(t, report.Issues[0].Message, "tasks/main.yml")

	require.Len(t, report.Recommendations, 4)
	types := []string{}
	for _, r := range report.Recommendations {
		types = append(types, r.Type)
	}
	assert.Equal(t, []string{
		domain.RecDocumentation,
		domain.RecMetadata,
		domain.RecVariables,
		domain.RecTesting,
	}, types)

	assert.Equal(t, domain.StructureSummary{
		DirectoriesPresent:  0,
		TotalExpected:       10,
		IssueCount:          1,
		RecommendationCount: 4,
	}, report.Summary)
}

func TestAnalyzeStructure_FullRole(t *testing.T) {
	report := domain.AnalyzeStructure(fullScan("myrole"), nil, domain.DefaultConfig())

	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Recommendations)
	assert.Equal(t, 10, report.Summary.DirectoriesPresent)
	assert.Equal(t, 10, report.Summary.TotalExpected)

	tasks := report.Structure["tasks"]
	assert.True(t, tasks.Exists)
	require.NotNil(t, tasks.FileCount)
	assert.Equal(t, 1, *tasks.FileCount)
}

func TestAnalyzeStructure_PresentEmptyDirKeepsFileCount(t *testing.T) {
	scan := emptyScan("myrole")
	scan.Entries["handlers"] = domain.EntryScan{Exists: true, FileCount: 0}

	report := domain.AnalyzeStructure(scan, nil, domain.DefaultConfig())

	handlers := report.Structure["handlers"]
	assert.True(t, handlers.Exists)
	require.NotNil(t, handlers.FileCount)
	assert.Equal(t, 0, *handlers.FileCount)
}

func TestAnalyzeStructure_MissingTasksMainIsOnlyIssue(t *testing.T) {
	scan := fullScan("myrole")
	scan.HasTasksMain = false

	report := domain.AnalyzeStructure(scan, nil, domain.DefaultConfig())

	require.Len(t, report.Issues, 1)
	assert.Equal(t, "Missing tasks/main.yml - required entry point for role", report.Issues[0].Message)
	assert.Equal(t, 1, report.Summary.IssueCount)
}

func TestAnalyzeStructure_RecommendationsAreIndependent(t *testing.T) {
	scan := fullScan("myrole")
	scan.HasDefaultsMain = false // meta present, defaults absent

	report := domain.AnalyzeStructure(scan, nil, domain.DefaultConfig())

	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, domain.RecVariables, report.Recommendations[0].Type)
}

func TestAnalyzeStructure_MoleculeCountsAsTesting(t *testing.T) {
	scan := fullScan("myrole")
	scan.HasTestsDir = false
	scan.HasMoleculeDir = true

	report := domain.AnalyzeStructure(scan, nil, domain.DefaultConfig())
	for _, r := range report.Recommendations {
		assert.NotEqual(t, domain.RecTesting, r.Type)
	}
}

func TestAnalyzeStructure_NamingRecommendation(t *testing.T) {
	report := domain.AnalyzeStructure(fullScan("MyWebRole"), nil, domain.DefaultConfig())

	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, domain.RecNaming, report.Recommendations[0].Type)
	assert.Contains(t, report.Recommendations[0].Message, `"my_web_role"`)
}

func TestAnalyzeStructure_SkipSuppressesRecommendation(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Skip.Recommendations = []string{domain.RecDocumentation}

	report := domain.AnalyzeStructure(emptyScan("myrole"), nil, cfg)

	require.Len(t, report.Recommendations, 3)
	for _, r := range report.Recommendations {
		assert.NotEqual(t, domain.RecDocumentation, r.Type)
	}
	assert.Equal(t, 3, report.Summary.RecommendationCount)
}

func TestAnalyzeStructure_AttachesMetadata(t *testing.T) {
	meta := &domain.RoleMetadata{Author: "ops", License: "MIT"}
	report := domain.AnalyzeStructure(fullScan("myrole"), meta, domain.DefaultConfig())
	require.NotNil(t, report.Metadata)
	assert.Equal(t, "ops", report.Metadata.Author)
}

func TestGalaxyRoleName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"myrole", "myrole"},
		{"my_role", "my_role"},
		{"MyRole", "my_role"},
		{"my-role", "my_role"},
		{"my-Role", "my_role"},
		{"nginx2", "nginx2"},
		{"Web Server", "web_server"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.GalaxyRoleName(tt.in), "input %q", tt.in)
	}
}
