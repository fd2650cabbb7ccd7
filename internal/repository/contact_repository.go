package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"foundation_api/model"
)

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection("contact_messages")}
}

func (r *ContactRepository) Insert(ctx context.Context, m *model.ContactMessage) error {
	res, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		m.ID = id
	}
	return nil
}
