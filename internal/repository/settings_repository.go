package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"foundation_api/model"
)

type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection("settings")}
}

// GetOrCreate returns the singleton settings document, creating it with
// defaults on first read. The upsert keeps concurrent first reads from
// racing each other.
func (r *SettingsRepository) GetOrCreate(ctx context.Context) (*model.Settings, error) {
	now := time.Now().UTC()

	update := bson.M{"$setOnInsert": bson.M{
		"key":                    model.SettingsKey,
		"donation_bank_details":  "",
		"donation_qr_image_urls": []string{},
		"external_donate_url":    "",
		"created_at":             now,
		"updated_at":             now,
	}}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var s model.Settings
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"key": model.SettingsKey}, update, opts).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Save persists the merged singleton. Settings are updated in place, never
// deleted.
func (r *SettingsRepository) Save(ctx context.Context, s *model.Settings) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"key": model.SettingsKey}, s)
	return err
}
