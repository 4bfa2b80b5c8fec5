package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"budget-backend/internal/config"
	"budget-backend/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Standalone migration runner. Deployments that keep AUTO_MIGRATE off on
// the API server run this as a one-shot job before rolling out.
func main() {
	_ = godotenv.Load()

	var (
		status = flag.Bool("status", false, "print the current migration version and exit")
		seed   = flag.Bool("seed", false, "load SQL seed files after migrating (requires SEED_DATABASE=true)")
	)
	flag.Parse()

	cfg := config.Load()
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("database not reachable: %v", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatalf("failed to get migration status: %v", err)
		}
		log.Printf("Migration status - Version: %d, Dirty: %v", version, dirty)
		os.Exit(0)
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if *seed {
		if err := runner.LoadSeeds(); err != nil {
			log.Fatalf("seed loading failed: %v", err)
		}
	}

	log.Println("Migrations complete")
}
