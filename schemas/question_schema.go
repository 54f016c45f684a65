package schemas

import (
	"strings"
	"time"

	"qna_service/models"
)

type CreateQuestionRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate trims Text in place and reports the first failing constraint.
func (r *CreateQuestionRequest) Validate() *ValidationError {
	if err := validate.Struct(r); err != nil {
		return firstFieldError(err)
	}
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	return nil
}

type QuestionResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type QuestionWithAnswersResponse struct {
	QuestionResponse
	Answers []AnswerResponse `json:"answers"`
}

func NewQuestionResponse(question models.Question) QuestionResponse {
	return QuestionResponse{
		ID:        question.ID,
		Text:      question.Text,
		CreatedAt: question.CreatedAt,
	}
}

func NewQuestionList(questions []models.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, question := range questions {
		out[i] = NewQuestionResponse(question)
	}
	return out
}

func NewQuestionWithAnswers(question models.Question) QuestionWithAnswersResponse {
	return QuestionWithAnswersResponse{
		QuestionResponse: NewQuestionResponse(question),
		Answers:          NewAnswerList(question.Answers),
	}
}
