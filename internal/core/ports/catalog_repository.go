package ports

import (
	"context"

	"github.com/datacatalog/metadata-system/internal/core/domain"
)

// Each catalog resource gets its own small repository interface keyed on the
// record's primary key. Update replaces every non-key field; Update and
// Delete return domain.ErrRecordNotFound when no record has the key, Create
// returns domain.ErrRecordExists on a duplicate key.

type AttributeRepository interface {
	List(ctx context.Context) ([]domain.Attribute, error)
	Create(ctx context.Context, a *domain.Attribute) error
	Update(ctx context.Context, id int64, a *domain.Attribute) error
	Delete(ctx context.Context, id int64) error
}

type BusinessTermOwnerRepository interface {
	List(ctx context.Context) ([]domain.BusinessTermOwner, error)
	Create(ctx context.Context, o *domain.BusinessTermOwner) error
	Update(ctx context.Context, code string, o *domain.BusinessTermOwner) error
	Delete(ctx context.Context, code string) error
}

type EntityRepository interface {
	List(ctx context.Context) ([]domain.Entity, error)
	Create(ctx context.Context, e *domain.Entity) error
	Update(ctx context.Context, id int64, e *domain.Entity) error
	Delete(ctx context.Context, id int64) error
}

type GlossaryTermRepository interface {
	List(ctx context.Context) ([]domain.GlossaryTerm, error)
	Create(ctx context.Context, g *domain.GlossaryTerm) error
	Update(ctx context.Context, name string, g *domain.GlossaryTerm) error
	Delete(ctx context.Context, name string) error
}

type SourceSystemRepository interface {
	List(ctx context.Context) ([]domain.SourceSystem, error)
	Create(ctx context.Context, s *domain.SourceSystem) error
	Update(ctx context.Context, id int64, s *domain.SourceSystem) error
	Delete(ctx context.Context, id int64) error
}
