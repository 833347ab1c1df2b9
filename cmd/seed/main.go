// Command main runs the database seeder for blogicum.
package main

import (
	"context"
	"flag"
	"log"

	"blogicum/internal/config"
	"blogicum/internal/database"
	"blogicum/internal/observability"
	"blogicum/internal/seed"

	"gorm.io/gorm"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	sqliteDSN := flag.String("sqlite", "", "Seed a SQLite database at this path instead of Postgres")
	flag.Parse()

	var db *gorm.DB
	var err error
	if *sqliteDSN != "" {
		db, err = database.ConnectSQLite(*sqliteDSN)
	} else {
		var cfg *config.Config
		cfg, err = config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		db, err = database.Connect(cfg)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := observability.WithCorrelationID(context.Background(), observability.GenerateCorrelationID())

	s := seed.NewSeeder(db)
	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}
	if err := s.Run(ctx, seed.Options{NumUsers: *numUsers, NumPosts: *numPosts}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
