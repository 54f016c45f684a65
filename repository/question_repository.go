package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"gorm.io/gorm"

	"qna_service/models"
)

// ErrEmptyText is returned when a create is attempted with text that is
// empty after trimming. Handlers validate first, so hitting this means the
// caller bypassed the schema layer.
var ErrEmptyText = errors.New("text must not be empty after trimming")

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List returns all questions, most recent first. Equal timestamps fall back
// to id descending.
func (r *QuestionRepository) List(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Create(ctx context.Context, text string) (models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Question{}, ErrEmptyText
	}

	question := models.Question{Text: text}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&question).Error
	})
	if err != nil {
		return models.Question{}, err
	}
	return question, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id uint) (models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error
	return question, err
}

// GetWithAnswers loads a question and all of its answers. The nested
// collection is sorted here rather than trusting the store's join order.
func (r *QuestionRepository) GetWithAnswers(ctx context.Context, id uint) (models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).
		Preload("Answers").
		First(&question, "id = ?", id).Error
	if err != nil {
		return models.Question{}, err
	}

	sort.SliceStable(question.Answers, func(i, j int) bool {
		a, b := question.Answers[i], question.Answers[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return question, nil
}

// Delete removes a question and every answer attached to it in one
// transaction. Returns the deleted id, or gorm.ErrRecordNotFound if no such
// question exists (in which case nothing is deleted).
func (r *QuestionRepository) Delete(ctx context.Context, id uint) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Question{}, "id = ?", id)
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
