package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kaushals1950/DhaaraAI/internal/accounts"
	"github.com/kaushals1950/DhaaraAI/internal/articles"
	"github.com/kaushals1950/DhaaraAI/internal/auth"
	"github.com/kaushals1950/DhaaraAI/internal/config"
	"github.com/kaushals1950/DhaaraAI/internal/db"
	"github.com/kaushals1950/DhaaraAI/internal/lawyers"
	"github.com/kaushals1950/DhaaraAI/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required to seed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	lawyersRepo := lawyers.NewMongoRepository(cols.Lawyers, cols.LawyerReviews)
	for _, l := range lawyers.FixtureLawyers() {
		if err := lawyersRepo.UpsertLawyer(ctx, l); err != nil {
			log.Fatalf("seed error for lawyer %s: %v", l.ID, err)
		}
	}
	for _, rv := range lawyers.FixtureReviews() {
		if err := lawyersRepo.UpsertReview(ctx, rv); err != nil {
			log.Fatalf("seed error for review %s: %v", rv.ID, err)
		}
	}

	articlesRepo := articles.NewMongoRepository(cols.Articles)
	for _, a := range articles.FixtureArticles() {
		if err := articlesRepo.Upsert(ctx, a); err != nil {
			log.Fatalf("seed error for section %s: %v", a.Section, err)
		}
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("seed admin: ADMIN_EMAIL or ADMIN_PASSWORD missing, skipping")
	} else if err := seedAdminUser(ctx, cols, envOrDefault("ADMIN_USER", "admin"), email, password); err != nil {
		log.Fatalf("seed admin error for %s: %v", email, err)
	}

	log.Println("seed completed")
}

// seedAdminUser upserts by email and always resets the password hash.
func seedAdminUser(ctx context.Context, cols *db.Collections, username, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	update := bson.M{
		"$set": bson.M{
			"password_hash": hash,
			"role":          accounts.RoleAdmin,
		},
		"$setOnInsert": bson.M{
			"_id":        utils.NewID("usr"),
			"username":   username,
			"created_at": time.Now().UTC(),
		},
	}
	_, err = cols.Users.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	return err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
