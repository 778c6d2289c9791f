// Catalog repositories. Each of the five resources lives in its own
// collection, keyed by a unique index on the record's primary key field. The
// helpers at the bottom keep the duplicate-key / not-found mapping in one
// place.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/datacatalog/metadata-system/internal/core/domain"
)

const (
	attributeCollection    = "attribute"
	ownerCollection        = "business_term_owner"
	entityCollection       = "entity"
	glossaryCollection     = "glossary_of_business_terms"
	sourceSystemCollection = "source_systems"
)

// --- Attributes ---

type AttributeRepository struct {
	col *mongo.Collection
}

func NewAttributeRepository(db *mongo.Database) *AttributeRepository {
	return &AttributeRepository{col: db.Collection(attributeCollection)}
}

func (r *AttributeRepository) List(ctx context.Context) ([]domain.Attribute, error) {
	out := []domain.Attribute{}
	if err := listAll(ctx, r.col, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AttributeRepository) Create(ctx context.Context, a *domain.Attribute) error {
	return insertOne(ctx, r.col, a)
}

func (r *AttributeRepository) Update(ctx context.Context, id int64, a *domain.Attribute) error {
	return updateByKey(ctx, r.col, "attribute_id", id, bson.M{
		"attribute_name":        a.AttributeName,
		"attribute_datatype":    a.AttributeDatatype,
		"attribute_description": a.AttributeDescription,
		"typical_values":        a.TypicalValues,
		"validation_criteria":   a.ValidationCriteria,
	})
}

func (r *AttributeRepository) Delete(ctx context.Context, id int64) error {
	return deleteByKey(ctx, r.col, "attribute_id", id)
}

func (r *AttributeRepository) EnsureIndexes(ctx context.Context) error {
	return ensureKeyIndex(ctx, r.col, "attribute_id")
}

// --- Business term owners ---

type BusinessTermOwnerRepository struct {
	col *mongo.Collection
}

func NewBusinessTermOwnerRepository(db *mongo.Database) *BusinessTermOwnerRepository {
	return &BusinessTermOwnerRepository{col: db.Collection(ownerCollection)}
}

func (r *BusinessTermOwnerRepository) List(ctx context.Context) ([]domain.BusinessTermOwner, error) {
	out := []domain.BusinessTermOwner{}
	if err := listAll(ctx, r.col, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BusinessTermOwnerRepository) Create(ctx context.Context, o *domain.BusinessTermOwner) error {
	return insertOne(ctx, r.col, o)
}

func (r *BusinessTermOwnerRepository) Update(ctx context.Context, code string, o *domain.BusinessTermOwner) error {
	return updateByKey(ctx, r.col, "term_owner_code", code, bson.M{
		"term_owner_description": o.TermOwnerDescription,
	})
}

func (r *BusinessTermOwnerRepository) Delete(ctx context.Context, code string) error {
	return deleteByKey(ctx, r.col, "term_owner_code", code)
}

func (r *BusinessTermOwnerRepository) EnsureIndexes(ctx context.Context) error {
	return ensureKeyIndex(ctx, r.col, "term_owner_code")
}

// --- Entities ---

type EntityRepository struct {
	col *mongo.Collection
}

func NewEntityRepository(db *mongo.Database) *EntityRepository {
	return &EntityRepository{col: db.Collection(entityCollection)}
}

func (r *EntityRepository) List(ctx context.Context) ([]domain.Entity, error) {
	out := []domain.Entity{}
	if err := listAll(ctx, r.col, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EntityRepository) Create(ctx context.Context, e *domain.Entity) error {
	return insertOne(ctx, r.col, e)
}

func (r *EntityRepository) Update(ctx context.Context, id int64, e *domain.Entity) error {
	return updateByKey(ctx, r.col, "entity_id", id, bson.M{
		"entity_name":        e.EntityName,
		"entity_description": e.EntityDescription,
	})
}

func (r *EntityRepository) Delete(ctx context.Context, id int64) error {
	return deleteByKey(ctx, r.col, "entity_id", id)
}

func (r *EntityRepository) EnsureIndexes(ctx context.Context) error {
	return ensureKeyIndex(ctx, r.col, "entity_id")
}

// --- Glossary terms ---

type GlossaryTermRepository struct {
	col *mongo.Collection
}

func NewGlossaryTermRepository(db *mongo.Database) *GlossaryTermRepository {
	return &GlossaryTermRepository{col: db.Collection(glossaryCollection)}
}

func (r *GlossaryTermRepository) List(ctx context.Context) ([]domain.GlossaryTerm, error) {
	out := []domain.GlossaryTerm{}
	if err := listAll(ctx, r.col, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GlossaryTermRepository) Create(ctx context.Context, g *domain.GlossaryTerm) error {
	return insertOne(ctx, r.col, g)
}

func (r *GlossaryTermRepository) Update(ctx context.Context, name string, g *domain.GlossaryTerm) error {
	return updateByKey(ctx, r.col, "business_term_short_name", name, bson.M{
		"date_term_defined": g.DateTermDefined,
	})
}

func (r *GlossaryTermRepository) Delete(ctx context.Context, name string) error {
	return deleteByKey(ctx, r.col, "business_term_short_name", name)
}

func (r *GlossaryTermRepository) EnsureIndexes(ctx context.Context) error {
	return ensureKeyIndex(ctx, r.col, "business_term_short_name")
}

// --- Source systems ---

type SourceSystemRepository struct {
	col *mongo.Collection
}

func NewSourceSystemRepository(db *mongo.Database) *SourceSystemRepository {
	return &SourceSystemRepository{col: db.Collection(sourceSystemCollection)}
}

func (r *SourceSystemRepository) List(ctx context.Context) ([]domain.SourceSystem, error) {
	out := []domain.SourceSystem{}
	if err := listAll(ctx, r.col, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SourceSystemRepository) Create(ctx context.Context, s *domain.SourceSystem) error {
	return insertOne(ctx, r.col, s)
}

func (r *SourceSystemRepository) Update(ctx context.Context, id int64, s *domain.SourceSystem) error {
	return updateByKey(ctx, r.col, "src_system_id", id, bson.M{
		"src_system_name": s.SrcSystemName,
	})
}

func (r *SourceSystemRepository) Delete(ctx context.Context, id int64) error {
	return deleteByKey(ctx, r.col, "src_system_id", id)
}

func (r *SourceSystemRepository) EnsureIndexes(ctx context.Context) error {
	return ensureKeyIndex(ctx, r.col, "src_system_id")
}

// --- Shared helpers ---

func listAll(ctx context.Context, col *mongo.Collection, out any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := col.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("list %s: %w", col.Name(), err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRecordExists
		}
		return fmt.Errorf("insert %s: %w", col.Name(), err)
	}
	return nil
}

func updateByKey(ctx context.Context, col *mongo.Collection, keyField string, key any, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx, bson.M{keyField: key}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update %s: %w", col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func deleteByKey(ctx context.Context, col *mongo.Collection, keyField string, key any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.DeleteOne(ctx, bson.M{keyField: key})
	if err != nil {
		return fmt.Errorf("delete %s: %w", col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func ensureKeyIndex(ctx context.Context, col *mongo.Collection, keyField string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: keyField, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
