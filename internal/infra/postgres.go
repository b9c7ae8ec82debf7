package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitPostgresql opens the generation audit database. An empty dsn means the
// audit log is disabled and nil is returned.
func InitPostgresql(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		log.Println("POSTGRES_URL not set, generation audit log disabled")
		return nil, nil
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}
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
