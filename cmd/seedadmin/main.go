// Command seedadmin creates the first admin user. Admins are never created
// over HTTP; run this once per environment:
//
//	ADMIN_EMAIL=ops@example.org ADMIN_PASSWORD=... go run ./cmd/seedadmin
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"foundation_api/database"
	"foundation_api/internal/config"
	"foundation_api/internal/repository"
	"foundation_api/model"
)

const bcryptCost = 12

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer database.Disconnect(client)

	admins := repository.NewAdminUserRepository(client.Database(cfg.MongoDBName))

	if _, err := admins.FindByEmail(ctx, email); err == nil {
		log.Printf("admin already exists for email: %s", email)
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Fatalf("lookup admin: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now().UTC()
	admin := model.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := admins.Insert(ctx, &admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin user created for email: %s", email)
}
