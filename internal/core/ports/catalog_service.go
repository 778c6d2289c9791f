package ports

import (
	"context"

	"github.com/datacatalog/metadata-system/internal/core/domain"
)

// CatalogService is the application-facing surface for catalog CRUD.
type CatalogService interface {
	ListAttributes(ctx context.Context) ([]domain.Attribute, error)
	CreateAttribute(ctx context.Context, a *domain.Attribute) error
	UpdateAttribute(ctx context.Context, id int64, a *domain.Attribute) error
	DeleteAttribute(ctx context.Context, id int64) error

	ListBusinessTermOwners(ctx context.Context) ([]domain.BusinessTermOwner, error)
	CreateBusinessTermOwner(ctx context.Context, o *domain.BusinessTermOwner) error
	UpdateBusinessTermOwner(ctx context.Context, code string, o *domain.BusinessTermOwner) error
	DeleteBusinessTermOwner(ctx context.Context, code string) error

	ListEntities(ctx context.Context) ([]domain.Entity, error)
	CreateEntity(ctx context.Context, e *domain.Entity) error
	UpdateEntity(ctx context.Context, id int64, e *domain.Entity) error
	DeleteEntity(ctx context.Context, id int64) error

	ListGlossaryTerms(ctx context.Context) ([]domain.GlossaryTerm, error)
	CreateGlossaryTerm(ctx context.Context, g *domain.GlossaryTerm) error
	UpdateGlossaryTerm(ctx context.Context, name string, g *domain.GlossaryTerm) error
	DeleteGlossaryTerm(ctx context.Context, name string) error

	ListSourceSystems(ctx context.Context) ([]domain.SourceSystem, error)
	CreateSourceSystem(ctx context.Context, s *domain.SourceSystem) error
	UpdateSourceSystem(ctx context.Context, id int64, s *domain.SourceSystem) error
	DeleteSourceSystem(ctx context.Context, id int64) error
}
