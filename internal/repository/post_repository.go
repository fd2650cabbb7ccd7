package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"foundation_api/internal/apperr"
	"foundation_api/model"
)

// PostFilter narrows post list queries. Nil pointers mean "no filter".
type PostFilter struct {
	Published *bool
	Type      string
	Featured  *bool
	// Search is a case-insensitive substring match against title and excerpt.
	Search string
}

func (f PostFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Published != nil {
		filter["published"] = *f.Published
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Featured != nil {
		filter["is_featured"] = *f.Featured
	}
	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"excerpt": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

// Sort orders used by the post list endpoints.
var (
	SortPublic = bson.D{{Key: "published_at", Value: -1}, {Key: "created_at", Value: -1}}
	SortAdmin  = bson.D{{Key: "created_at", Value: -1}}
)

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection("posts")}
}

// List returns one page of posts plus the total count for the filter.
func (r *PostRepository) List(ctx context.Context, f PostFilter, sort bson.D, page, limit int64) ([]model.Post, int64, error) {
	filter := f.toBSON()

	opts := options.Find().
		SetSort(sort).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := []model.Post{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpcomingEvents returns published events whose start date is strictly in the
// future, soonest first.
func (r *PostRepository) UpcomingEvents(ctx context.Context, now time.Time, limit int64) ([]model.Post, error) {
	filter := bson.M{
		"published":        true,
		"type":             model.PostTypeEvent,
		"event_start_date": bson.M{"$gt": now},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "event_start_date", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []model.Post{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindPublishedBySlug is the public detail lookup; drafts stay invisible.
func (r *PostRepository) FindPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var p model.Post
	err := r.coll.FindOne(ctx, bson.M{"slug": slug, "published": true}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert persists a new post and fills in its generated id. A duplicate slug
// comes back as a 409 conflict, not a raw store error.
func (r *PostRepository) Insert(ctx context.Context, p *model.Post) error {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("A post with this slug already exists.")
		}
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		p.ID = id
	}
	return nil
}

// Replace overwrites the stored post with the merged document.
func (r *PostRepository) Replace(ctx context.Context, p *model.Post) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("A post with this slug already exists.")
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
