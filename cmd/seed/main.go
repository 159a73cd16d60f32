// Seeds the Postgres rate tables from a JSON rates file. The file is
// validated the same way the server validates it, so a catalog that seeds
// successfully will also load successfully.
package main

import (
	"context"
	"log"

	"profitcalc/internal/catalog"
	"profitcalc/internal/config"
	"profitcalc/internal/repositories"
)

func main() {
	config.LoadEnv()

	path := config.GetEnv("CATALOG_FILE", "config/rates.json")
	cat, err := catalog.NewFileSource(path).Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load rates file %s: %v", path, err)
	}

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
		}
	}()

	repo := repositories.NewCatalogRepository(db)
	if err := repo.ReplaceAll(context.Background(), cat.Tables()); err != nil {
		log.Fatalf("Failed to seed rate tables: %v", err)
	}

	sizes := cat.TableSizes()
	log.Printf("✅ Rate tables seeded from %s (%d categories, %d lanes)",
		path, sizes["referralRules"], sizes["weightBands"])
}
