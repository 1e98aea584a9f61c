// Command seed provisions the initial owner account and a set of demo
// locations. There is no self-registration; every account is created out of
// band, and this tool creates the first one.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/app"
	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/service"
	"github.com/tikkaspice/opsboard/internal/dashboard/store"
	"github.com/tikkaspice/opsboard/internal/dashboard/store/drivers/sqlite"
	"github.com/tikkaspice/opsboard/pkg/cryptox"
	"github.com/tikkaspice/opsboard/pkg/idx"
)

func main() {
	cfg := app.LoadConfig()

	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	ctx := context.Background()

	empty, err := db.Users().IsEmpty(ctx)
	if err != nil {
		log.Fatalf("failed to inspect users: %v", err)
	}
	if !empty {
		log.Println("users already exist, nothing to seed")
		return
	}

	password := os.Getenv("SEED_OWNER_PASSWORD")
	generated := false
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			log.Fatalf("failed to generate password: %v", err)
		}
		generated = true
	}

	// Owner and demo roster land in one transaction; a half-seeded database
	// would trip the IsEmpty guard on the next run and never get its roster.
	email := envOrDefault("SEED_OWNER_EMAIL", "owner@example.com")
	err = db.WithTx(ctx, func(tx store.Store) error {
		if err := seedOwner(ctx, tx, email, password); err != nil {
			return err
		}
		return seedLocations(ctx, tx)
	})
	if err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	log.Printf("seeded owner account %s", email)
	if generated {
		// Printed once; it is never recoverable from the stored hash.
		log.Printf("generated owner password: %s", password)
	}
}

func seedOwner(ctx context.Context, db store.Store, email, password string) error {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return db.Users().Create(ctx, domain.User{
		ID:           idx.New(),
		Email:        email,
		FirstName:    envOrDefault("SEED_OWNER_FIRST_NAME", "Dashboard"),
		LastName:     envOrDefault("SEED_OWNER_LAST_NAME", "Owner"),
		Role:         domain.RoleOwner,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func seedLocations(ctx context.Context, db store.Store) error {
	locations := &service.LocationService{Store: db}
	demo := []service.LocationInput{
		{Name: "Downtown", Address: "100 Main St", PosLocationID: "POS-001"},
		{Name: "Riverside", Address: "42 River Rd", PosLocationID: "POS-002"},
		{Name: "Airport", Address: "1 Terminal Way", PosLocationID: "POS-003"},
	}
	for _, in := range demo {
		if _, err := locations.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
