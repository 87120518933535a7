package repository

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/shenikar/imagery_catalog/internal/models"
	"github.com/shenikar/imagery_catalog/internal/service"
)

const (
	capturesFile      = "captures.json"
	opportunitiesFile = "opportunities.json"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

// CatalogRepository хранит наборы данных в памяти. После загрузки данные не изменяются,
// поэтому репозиторий безопасен для одновременного чтения без блокировок.
type CatalogRepository struct {
	captures      []*models.Capture
	features      []*models.ArchiveFeature
	opportunities []*models.Opportunity
}

var _ service.ImageryRepository = (*CatalogRepository)(nil)

// NewCatalogRepository загружает наборы данных из каталога dir, при пустом dir - встроенные данные
func NewCatalogRepository(dir string) (*CatalogRepository, error) {
	fsys, err := fixturesFS(dir)
	if err != nil {
		return nil, err
	}
	return LoadCatalog(fsys)
}

// LoadCatalog читает captures.json и opportunities.json из fsys.
// Архив строится из съемок, чтобы оба представления одной сущности не расходились.
func LoadCatalog(fsys fs.FS) (*CatalogRepository, error) {
	var captures []*models.Capture
	if err := readJSON(fsys, capturesFile, &captures); err != nil {
		return nil, err
	}
	var opportunities []*models.Opportunity
	if err := readJSON(fsys, opportunitiesFile, &opportunities); err != nil {
		return nil, err
	}

	if err := normalizeCaptures(captures); err != nil {
		return nil, err
	}
	if err := normalizeOpportunities(opportunities); err != nil {
		return nil, err
	}

	features := make([]*models.ArchiveFeature, 0, len(captures))
	for _, c := range captures {
		features = append(features, models.FeatureFromCapture(c))
	}

	return &CatalogRepository{
		captures:      captures,
		features:      features,
		opportunities: opportunities,
	}, nil
}

// Captures возвращает съемки в порядке объявления. Срез нельзя изменять.
func (r *CatalogRepository) Captures(_ context.Context) ([]*models.Capture, error) {
	return r.captures, nil
}

// ArchiveFeatures возвращает объекты архива в порядке объявления. Срез нельзя изменять.
func (r *CatalogRepository) ArchiveFeatures(_ context.Context) ([]*models.ArchiveFeature, error) {
	return r.features, nil
}

// Opportunities возвращает прогнозы съемок в порядке объявления. Срез нельзя изменять.
func (r *CatalogRepository) Opportunities(_ context.Context) ([]*models.Opportunity, error) {
	return r.opportunities, nil
}

func fixturesFS(dir string) (fs.FS, error) {
	if dir == "" {
		sub, err := fs.Sub(embeddedFixtures, "fixtures")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded fixtures: %w", err)
		}
		return sub, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixtures path %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

func readJSON(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func normalizeCaptures(captures []*models.Capture) error {
	seen := make(map[string]struct{}, len(captures))
	for i, c := range captures {
		if c == nil || c.ID == "" {
			return fmt.Errorf("%s: record %d has no captureId", capturesFile, i)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%s: duplicate captureId %s", capturesFile, c.ID)
		}
		seen[c.ID] = struct{}{}
		c.CaptureDate = c.CaptureDate.UTC()
	}
	return nil
}

// normalizeOpportunities не отклоняет записи без координат: фильтр подставит для них (0, 0)
func normalizeOpportunities(opportunities []*models.Opportunity) error {
	seen := make(map[string]struct{}, len(opportunities))
	for i, o := range opportunities {
		if o == nil || o.ID == "" {
			return fmt.Errorf("%s: record %d has no opportunityId", opportunitiesFile, i)
		}
		if _, ok := seen[o.ID]; ok {
			return fmt.Errorf("%s: duplicate opportunityId %s", opportunitiesFile, o.ID)
		}
		seen[o.ID] = struct{}{}
		if !o.Confidence.Valid() {
			return fmt.Errorf("%s: opportunity %s has no confidence", opportunitiesFile, o.ID)
		}
		o.EstimatedCaptureDate = o.EstimatedCaptureDate.UTC()
	}
	return nil
}
