package repository

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"qna_service/database"
	"qna_service/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// one connection so every statement sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedQuestion(t *testing.T, db *gorm.DB, text string, createdAt time.Time) models.Question {
	t.Helper()
	question := models.Question{Text: text, CreatedAt: createdAt}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return question
}

func seedAnswer(t *testing.T, db *gorm.DB, questionID uint, userID, text string, createdAt time.Time) models.Answer {
	t.Helper()
	answer := models.Answer{QuestionID: questionID, UserID: userID, Text: text, CreatedAt: createdAt}
	if err := db.Create(&answer).Error; err != nil {
		t.Fatalf("seed answer: %v", err)
	}
	return answer
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var count int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}
