package service

import (
	"context"
	"time"

	"github.com/datacatalog/metadata-system/internal/core/domain"
	"github.com/datacatalog/metadata-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// CatalogService coordinates CRUD across the five catalog repositories.
// Field-level validation happens at the transport layer; this layer owns
// cross-field rules (date normalization) and delegates persistence. Not-found
// and duplicate-key outcomes surface as domain sentinel errors from the
// repositories.
type CatalogService struct {
	attributes    ports.AttributeRepository
	owners        ports.BusinessTermOwnerRepository
	entities      ports.EntityRepository
	glossary      ports.GlossaryTermRepository
	sourceSystems ports.SourceSystemRepository
}

func NewCatalogService(
	attributes ports.AttributeRepository,
	owners ports.BusinessTermOwnerRepository,
	entities ports.EntityRepository,
	glossary ports.GlossaryTermRepository,
	sourceSystems ports.SourceSystemRepository,
) *CatalogService {
	return &CatalogService{
		attributes:    attributes,
		owners:        owners,
		entities:      entities,
		glossary:      glossary,
		sourceSystems: sourceSystems,
	}
}

// --- Attributes ---

func (s *CatalogService) ListAttributes(ctx context.Context) ([]domain.Attribute, error) {
	return s.attributes.List(ctx)
}

func (s *CatalogService) CreateAttribute(ctx context.Context, a *domain.Attribute) error {
	return s.attributes.Create(ctx, a)
}

func (s *CatalogService) UpdateAttribute(ctx context.Context, id int64, a *domain.Attribute) error {
	return s.attributes.Update(ctx, id, a)
}

func (s *CatalogService) DeleteAttribute(ctx context.Context, id int64) error {
	return s.attributes.Delete(ctx, id)
}

// --- Business term owners ---

func (s *CatalogService) ListBusinessTermOwners(ctx context.Context) ([]domain.BusinessTermOwner, error) {
	return s.owners.List(ctx)
}

func (s *CatalogService) CreateBusinessTermOwner(ctx context.Context, o *domain.BusinessTermOwner) error {
	return s.owners.Create(ctx, o)
}

func (s *CatalogService) UpdateBusinessTermOwner(ctx context.Context, code string, o *domain.BusinessTermOwner) error {
	return s.owners.Update(ctx, code, o)
}

func (s *CatalogService) DeleteBusinessTermOwner(ctx context.Context, code string) error {
	return s.owners.Delete(ctx, code)
}

// --- Entities ---

func (s *CatalogService) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	return s.entities.List(ctx)
}

func (s *CatalogService) CreateEntity(ctx context.Context, e *domain.Entity) error {
	return s.entities.Create(ctx, e)
}

func (s *CatalogService) UpdateEntity(ctx context.Context, id int64, e *domain.Entity) error {
	return s.entities.Update(ctx, id, e)
}

func (s *CatalogService) DeleteEntity(ctx context.Context, id int64) error {
	return s.entities.Delete(ctx, id)
}

// --- Glossary terms ---

func (s *CatalogService) ListGlossaryTerms(ctx context.Context) ([]domain.GlossaryTerm, error) {
	return s.glossary.List(ctx)
}

func (s *CatalogService) CreateGlossaryTerm(ctx context.Context, g *domain.GlossaryTerm) error {
	normalized, err := normalizeDate(g.DateTermDefined)
	if err != nil {
		return domain.ErrMissingFields
	}
	g.DateTermDefined = normalized
	return s.glossary.Create(ctx, g)
}

func (s *CatalogService) UpdateGlossaryTerm(ctx context.Context, name string, g *domain.GlossaryTerm) error {
	normalized, err := normalizeDate(g.DateTermDefined)
	if err != nil {
		return domain.ErrMissingFields
	}
	g.DateTermDefined = normalized
	return s.glossary.Update(ctx, name, g)
}

func (s *CatalogService) DeleteGlossaryTerm(ctx context.Context, name string) error {
	return s.glossary.Delete(ctx, name)
}

// --- Source systems ---

func (s *CatalogService) ListSourceSystems(ctx context.Context) ([]domain.SourceSystem, error) {
	return s.sourceSystems.List(ctx)
}

func (s *CatalogService) CreateSourceSystem(ctx context.Context, src *domain.SourceSystem) error {
	return s.sourceSystems.Create(ctx, src)
}

func (s *CatalogService) UpdateSourceSystem(ctx context.Context, id int64, src *domain.SourceSystem) error {
	return s.sourceSystems.Update(ctx, id, src)
}

func (s *CatalogService) DeleteSourceSystem(ctx context.Context, id int64) error {
	return s.sourceSystems.Delete(ctx, id)
}

// normalizeDate parses a YYYY-MM-DD date and re-renders it, so every stored
// glossary date has a single canonical form.
func normalizeDate(s string) (string, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}
