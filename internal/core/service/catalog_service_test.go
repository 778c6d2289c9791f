package service

import (
	"context"
	"testing"

	"github.com/datacatalog/metadata-system/internal/core/domain"
)

type stubEntityRepo struct {
	records map[int64]domain.Entity
}

func newStubEntityRepo() *stubEntityRepo {
	return &stubEntityRepo{records: make(map[int64]domain.Entity)}
}

func (r *stubEntityRepo) List(context.Context) ([]domain.Entity, error) {
	out := make([]domain.Entity, 0, len(r.records))
	for _, e := range r.records {
		out = append(out, e)
	}
	return out, nil
}

func (r *stubEntityRepo) Create(_ context.Context, e *domain.Entity) error {
	if _, exists := r.records[e.EntityID]; exists {
		return domain.ErrRecordExists
	}
	r.records[e.EntityID] = *e
	return nil
}

func (r *stubEntityRepo) Update(_ context.Context, id int64, e *domain.Entity) error {
	if _, exists := r.records[id]; !exists {
		return domain.ErrRecordNotFound
	}
	updated := *e
	updated.EntityID = id
	r.records[id] = updated
	return nil
}

func (r *stubEntityRepo) Delete(_ context.Context, id int64) error {
	if _, exists := r.records[id]; !exists {
		return domain.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

type stubGlossaryRepo struct {
	records map[string]domain.GlossaryTerm
}

func newStubGlossaryRepo() *stubGlossaryRepo {
	return &stubGlossaryRepo{records: make(map[string]domain.GlossaryTerm)}
}

func (r *stubGlossaryRepo) List(context.Context) ([]domain.GlossaryTerm, error) {
	out := make([]domain.GlossaryTerm, 0, len(r.records))
	for _, g := range r.records {
		out = append(out, g)
	}
	return out, nil
}

func (r *stubGlossaryRepo) Create(_ context.Context, g *domain.GlossaryTerm) error {
	if _, exists := r.records[g.BusinessTermShortName]; exists {
		return domain.ErrRecordExists
	}
	r.records[g.BusinessTermShortName] = *g
	return nil
}

func (r *stubGlossaryRepo) Update(_ context.Context, name string, g *domain.GlossaryTerm) error {
	if _, exists := r.records[name]; !exists {
		return domain.ErrRecordNotFound
	}
	updated := *g
	updated.BusinessTermShortName = name
	r.records[name] = updated
	return nil
}

func (r *stubGlossaryRepo) Delete(_ context.Context, name string) error {
	if _, exists := r.records[name]; !exists {
		return domain.ErrRecordNotFound
	}
	delete(r.records, name)
	return nil
}

func newEntityOnlyService(entities *stubEntityRepo) *CatalogService {
	return NewCatalogService(nil, nil, entities, newStubGlossaryRepo(), nil)
}

func TestCatalogService_Entity_CreateListRoundTrip(t *testing.T) {
	repo := newStubEntityRepo()
	svc := newEntityOnlyService(repo)
	ctx := context.Background()

	rec := domain.Entity{EntityID: 1, EntityName: "Customer", EntityDescription: "Core customer information"}
	if err := svc.CreateEntity(ctx, &rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.ListEntities(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}
	if list[0] != rec {
		t.Fatalf("round trip mismatch: %+v", list[0])
	}
}

func TestCatalogService_Entity_DuplicateKey(t *testing.T) {
	svc := newEntityOnlyService(newStubEntityRepo())
	ctx := context.Background()

	_ = svc.CreateEntity(ctx, &domain.Entity{EntityID: 1, EntityName: "Customer"})
	err := svc.CreateEntity(ctx, &domain.Entity{EntityID: 1, EntityName: "Order"})
	if err != domain.ErrRecordExists {
		t.Fatalf("expected ErrRecordExists, got %v", err)
	}
}

func TestCatalogService_Entity_UpdateReplacesNonKeyFields(t *testing.T) {
	repo := newStubEntityRepo()
	svc := newEntityOnlyService(repo)
	ctx := context.Background()

	_ = svc.CreateEntity(ctx, &domain.Entity{EntityID: 1, EntityName: "Customer", EntityDescription: "old"})
	if err := svc.UpdateEntity(ctx, 1, &domain.Entity{EntityName: "Customer", EntityDescription: "new"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := repo.records[1]
	if got.EntityID != 1 || got.EntityDescription != "new" {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestCatalogService_Entity_UpdateAbsent(t *testing.T) {
	svc := newEntityOnlyService(newStubEntityRepo())

	err := svc.UpdateEntity(context.Background(), 99, &domain.Entity{EntityName: "Ghost"})
	if err != domain.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestCatalogService_Entity_DeleteIdempotence(t *testing.T) {
	svc := newEntityOnlyService(newStubEntityRepo())
	ctx := context.Background()

	_ = svc.CreateEntity(ctx, &domain.Entity{EntityID: 1, EntityName: "Customer"})
	if err := svc.DeleteEntity(ctx, 1); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteEntity(ctx, 1); err != domain.ErrRecordNotFound {
		t.Fatalf("second delete: expected ErrRecordNotFound, got %v", err)
	}
}

func TestCatalogService_GlossaryTerm_DateNormalized(t *testing.T) {
	glossary := newStubGlossaryRepo()
	svc := NewCatalogService(nil, nil, nil, glossary, nil)
	ctx := context.Background()

	if err := svc.CreateGlossaryTerm(ctx, &domain.GlossaryTerm{BusinessTermShortName: "CUST", DateTermDefined: "2024-01-05"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := glossary.records["CUST"].DateTermDefined; got != "2024-01-05" {
		t.Fatalf("unexpected stored date: %q", got)
	}
}

func TestCatalogService_GlossaryTerm_BadDate(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil, newStubGlossaryRepo(), nil)

	err := svc.CreateGlossaryTerm(context.Background(), &domain.GlossaryTerm{BusinessTermShortName: "CUST", DateTermDefined: "05/01/2024"})
	if err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for malformed date, got %v", err)
	}
}
