package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"qna_service/repository"
	"qna_service/schemas"
)

type AnswerHandler struct {
	answers   *repository.AnswerRepository
	questions *repository.QuestionRepository
}

func NewAnswerHandler(answers *repository.AnswerRepository, questions *repository.QuestionRepository) *AnswerHandler {
	return &AnswerHandler{answers: answers, questions: questions}
}

func (h *AnswerHandler) CreateAnswer(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("id")
	if err != nil || questionID < 1 {
		return notFound(c, CodeQuestionNotFound)
	}

	var req schemas.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cannot parse JSON")
	}
	if verr := req.Validate(); verr != nil {
		return unprocessable(c, verr)
	}

	// The parent question must exist before anything is written.
	if _, err := h.questions.GetByID(c.UserContext(), uint(questionID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, CodeQuestionNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load question")
	}

	answer, err := h.answers.Create(c.UserContext(), uint(questionID), req.UserID, req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyText) {
			return unprocessable(c, &schemas.ValidationError{Field: "text", Reason: "must not be empty"})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create answer")
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.NewAnswerResponse(answer))
}

func (h *AnswerHandler) GetAnswer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return notFound(c, CodeAnswerNotFound)
	}

	answer, err := h.answers.GetByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, CodeAnswerNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load answer")
	}

	return c.JSON(schemas.NewAnswerResponse(answer))
}

func (h *AnswerHandler) DeleteAnswer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return notFound(c, CodeAnswerNotFound)
	}

	if _, err := h.answers.Delete(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, CodeAnswerNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete answer")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
