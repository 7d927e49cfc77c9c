package application

import (
	"fmt"

	"github.com/rolelens/rolelens/internal/domain"
)

// StructureService orchestrates the structure pipeline:
// load config → scan role dir → parse metadata → analyze.
type StructureService struct {
	scanner      domain.RoleScanner
	metadata     domain.MetadataLoader
	configLoader domain.ConfigLoader
}

func NewStructureService(
	scanner domain.RoleScanner,
	metadata domain.MetadataLoader,
	configLoader domain.ConfigLoader,
) *StructureService {
	return &StructureService{
		scanner:      scanner,
		metadata:     metadata,
		configLoader: configLoader,
	}
}

// AnalyzeRole produces a structure report for the role at rolePath. The
// role's contents can never fail the analysis; only environmental faults
// (an unreadable config file) surface as errors.
func (s *StructureService) AnalyzeRole(rolePath string) (*domain.StructureReport, error) {
	cfg, err := s.configLoader.Load(rolePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(rolePath)
	if err != nil {
		return nil, fmt.Errorf("scanning role: %w", err)
	}

	meta := s.metadata.Load(rolePath)

	return domain.AnalyzeStructure(scan, meta, cfg), nil
}
