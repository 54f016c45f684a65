package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"qna_service/models"
)

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Create persists a new answer. The caller is expected to have confirmed the
// parent question exists; the foreign key still rejects a racing delete.
func (r *AnswerRepository) Create(ctx context.Context, questionID uint, userID, text string) (models.Answer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Answer{}, ErrEmptyText
	}

	answer := models.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Text:       text,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&answer).Error
	})
	if err != nil {
		return models.Answer{}, err
	}
	return answer, nil
}

func (r *AnswerRepository) GetByID(ctx context.Context, id uint) (models.Answer, error) {
	var answer models.Answer
	err := r.db.WithContext(ctx).First(&answer, "id = ?", id).Error
	return answer, err
}

// Delete removes one answer by id. Returns the deleted id, or
// gorm.ErrRecordNotFound if it does not exist.
func (r *AnswerRepository) Delete(ctx context.Context, id uint) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Answer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
