package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rolelens/rolelens/internal/domain"
)

const historyFile = "rolelens/history.json"

// FileHistory implements domain.ReviewHistory using JSON file storage under
// the user cache directory. Reviews never write into the role itself.
type FileHistory struct {
	baseDir string
}

// New creates a FileHistory rooted at the user cache directory.
func New() *FileHistory {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return &FileHistory{baseDir: base}
}

// NewAt creates a FileHistory rooted at baseDir.
func NewAt(baseDir string) *FileHistory {
	return &FileHistory{baseDir: baseDir}
}

func (h *FileHistory) Save(entry domain.HistoryEntry) error {
	entries, err := h.loadAll()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(h.baseDir, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0o644)
}

// Load returns the saved entries for one role, oldest first.
func (h *FileHistory) Load(rolePath string) ([]domain.HistoryEntry, error) {
	entries, err := h.loadAll()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(rolePath)
	if err != nil {
		return nil, err
	}

	var matched []domain.HistoryEntry
	for _, e := range entries {
		if e.RolePath == abs {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (h *FileHistory) loadAll() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(filepath.Join(h.baseDir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
