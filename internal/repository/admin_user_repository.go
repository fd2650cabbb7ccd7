package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"foundation_api/internal/apperr"
	"foundation_api/model"
)

type AdminUserRepository struct {
	coll *mongo.Collection
}

func NewAdminUserRepository(db *mongo.Database) *AdminUserRepository {
	return &AdminUserRepository{coll: db.Collection("admin_users")}
}

// FindByEmail looks up an admin by lowercased email.
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert is used by the seed script only; admins are never created over HTTP.
func (r *AdminUserRepository) Insert(ctx context.Context, u *model.AdminUser) error {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Conflict("An admin with this email already exists.")
		}
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		u.ID = id
	}
	return nil
}
