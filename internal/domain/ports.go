package domain

import "context"

// RoleScanner walks a role directory and returns what was found on disk.
type RoleScanner interface {
	Scan(rolePath string) (*RoleScan, error)
}

// RoleScan holds the filesystem facts the structure analysis consumes.
type RoleScan struct {
	RootPath string
	RoleName string
	// Entries is keyed by catalog entry name.
	Entries map[string]EntryScan

	HasTasksMain    bool
	HasMetaMain     bool
	HasDefaultsMain bool
	HasReadme       bool
	HasTestsDir     bool
	HasMoleculeDir  bool
}

// EntryScan is the on-disk state of one expected subdirectory.
type EntryScan struct {
	Exists    bool
	FileCount int
}

// CommandRunner abstracts external process execution for testability.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// ConfigLoader reads the review configuration for a role.
type ConfigLoader interface {
	Load(rolePath string) (ReviewConfig, error)
}

// MetadataLoader parses Galaxy metadata from a role, returning nil when
// meta/main.yml is absent or unparseable.
type MetadataLoader interface {
	Load(rolePath string) *RoleMetadata
}

// GitInfo reports version-control facts about a role's repository.
type GitInfo interface {
	IsGitRepo(rolePath string) bool
	CommitHash(rolePath string) (string, error)
}

// ReviewHistory persists review summaries across runs.
type ReviewHistory interface {
	Save(entry HistoryEntry) error
	Load(rolePath string) ([]HistoryEntry, error)
}
