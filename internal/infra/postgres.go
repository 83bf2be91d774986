package infra

import (
	"log"
	"os"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nomadtrip/internal/models/db_models"
)

var (
	pgOnce      sync.Once
	pgSingleton *gorm.DB
)

// InitPostgresql opens the shared connection pool. It is called lazily and
// only when a Postgres-backed store is selected; memory stores never touch it.
func InitPostgresql() *gorm.DB {
	pgOnce.Do(func() {
		dsn := os.Getenv("POSTGRES_URL")

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("Error connecting to database: %v", err)
			log.Fatal("Error connecting to database")
		}

		if err := db.AutoMigrate(&db_models.Account{}, &db_models.Booking{}); err != nil {
			log.Fatalf("Error migrating schema: %v", err)
		}

		pgSingleton = db
	})
	return pgSingleton
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
