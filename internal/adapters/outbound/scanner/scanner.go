package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rolelens/rolelens/internal/domain"
)

// RoleScanner implements domain.RoleScanner by walking the role directory.
// Filesystem access failures on subpaths are treated the same as absence;
// the scan never fails on the analyzed role's contents.
type RoleScanner struct{}

func New() *RoleScanner {
	return &RoleScanner{}
}

func (s *RoleScanner) Scan(rolePath string) (*domain.RoleScan, error) {
	absPath, err := filepath.Abs(rolePath)
	if err != nil {
		return nil, err
	}

	scan := &domain.RoleScan{
		RootPath: absPath,
		RoleName: filepath.Base(absPath),
		Entries:  make(map[string]domain.EntryScan, len(domain.ExpectedDirs)),
	}

	for _, entry := range domain.ExpectedDirs {
		dirPath := filepath.Join(absPath, entry.Name)
		info, err := os.Stat(dirPath)
		if err != nil || !info.IsDir() {
			scan.Entries[entry.Name] = domain.EntryScan{}
			continue
		}
		scan.Entries[entry.Name] = domain.EntryScan{
			Exists:    true,
			FileCount: countRegularFiles(dirPath),
		}
	}

	scan.HasTasksMain = pathExists(filepath.Join(absPath, "tasks", "main.yml"))
	scan.HasMetaMain = pathExists(filepath.Join(absPath, "meta", "main.yml"))
	scan.HasDefaultsMain = pathExists(filepath.Join(absPath, "defaults", "main.yml"))
	scan.HasReadme = hasReadme(absPath)
	scan.HasTestsDir = pathExists(filepath.Join(absPath, "tests"))
	scan.HasMoleculeDir = pathExists(filepath.Join(absPath, "molecule"))

	return scan, nil
}

// countRegularFiles walks dirPath recursively and counts regular files.
// Symlinks, directories and special files are excluded.
func countRegularFiles(dirPath string) int {
	count := 0
	_ = filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree counts as empty.
			return nil
		}
		if d.Type().IsRegular() {
			count++
		}
		return nil
	})
	return count
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// hasReadme reports whether any README* file sits directly under root.
func hasReadme(root string) bool {
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "README") {
			return true
		}
	}
	return false
}
