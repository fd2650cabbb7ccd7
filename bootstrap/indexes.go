// Package bootstrap performs one-time startup work against the database.
package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique and query indexes the API relies on.
// Slug and email uniqueness is enforced here rather than by read-then-write
// checks in handlers; duplicate writes surface as conflict errors.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("posts").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_slug")},
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "type", Value: 1}, {Key: "published_at", Value: -1}}, Options: options.Index().SetName("published_type_publishedAt")},
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "is_featured", Value: 1}, {Key: "published_at", Value: -1}}, Options: options.Index().SetName("published_featured_publishedAt")},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "event_start_date", Value: 1}, {Key: "published", Value: 1}}, Options: options.Index().SetName("type_eventStart_published")},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("projects").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_slug")},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("status_createdAt")},
		{Keys: bson.D{{Key: "is_highlighted", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("highlighted_createdAt")},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("admin_users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("settings").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_key")},
	})
	return err
}
