package schemas

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"qna_service/models"
)

type CreateAnswerRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// Validate trims Text, checks it is non-empty, and normalizes UserID to the
// canonical UUID form.
func (r *CreateAnswerRequest) Validate() *ValidationError {
	if err := validate.Struct(r); err != nil {
		return firstFieldError(err)
	}
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	uid, err := uuid.Parse(r.UserID)
	if err != nil {
		return &ValidationError{Field: "user_id", Reason: "must be a valid UUID"}
	}
	r.UserID = uid.String()
	return nil
}

type AnswerResponse struct {
	ID         uint      `json:"id"`
	QuestionID uint      `json:"question_id"`
	UserID     string    `json:"user_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAnswerResponse(answer models.Answer) AnswerResponse {
	return AnswerResponse{
		ID:         answer.ID,
		QuestionID: answer.QuestionID,
		UserID:     answer.UserID,
		Text:       answer.Text,
		CreatedAt:  answer.CreatedAt,
	}
}

func NewAnswerList(answers []models.Answer) []AnswerResponse {
	out := make([]AnswerResponse, len(answers))
	for i, answer := range answers {
		out[i] = NewAnswerResponse(answer)
	}
	return out
}
