package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"foundation_api/internal/apperr"
	"foundation_api/model"
)

// ProjectFilter narrows project list queries. Nil pointers mean "no filter".
type ProjectFilter struct {
	Status      string
	Highlighted *bool
	// Search is a case-insensitive substring match against the title.
	Search string
}

func (f ProjectFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Highlighted != nil {
		filter["is_highlighted"] = *f.Highlighted
	}
	if f.Search != "" {
		filter["title"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}
	return filter
}

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection("projects")}
}

// List returns one page of projects (newest first) plus the total count.
func (r *ProjectRepository) List(ctx context.Context, f ProjectFilter, page, limit int64) ([]model.Project, int64, error) {
	filter := f.toBSON()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := []model.Project{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// FindBySlug has no publish gate; projects carry no draft concept.
func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var p model.Project
	err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Project, error) {
	var p model.Project
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Insert(ctx context.Context, p *model.Project) error {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("A project with this slug already exists.")
		}
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		p.ID = id
	}
	return nil
}

func (r *ProjectRepository) Replace(ctx context.Context, p *model.Project) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("A project with this slug already exists.")
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
