package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"qna_service/models"
)

// Connect opens the Postgres connection pool. Default per-statement
// transactions are disabled; the repository layer opens its own.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Question{},
		&models.Answer{},
	)
}
