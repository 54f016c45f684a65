package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"qna_service/repository"
	"qna_service/schemas"
)

type QuestionHandler struct {
	questions *repository.QuestionRepository
}

func NewQuestionHandler(questions *repository.QuestionRepository) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.questions.List(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list questions")
	}
	return c.JSON(schemas.NewQuestionList(questions))
}

func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req schemas.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "cannot parse JSON")
	}
	if verr := req.Validate(); verr != nil {
		return unprocessable(c, verr)
	}

	question, err := h.questions.Create(c.UserContext(), req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyText) {
			return unprocessable(c, &schemas.ValidationError{Field: "text", Reason: "must not be empty"})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create question")
	}

	return c.Status(fiber.StatusCreated).JSON(schemas.NewQuestionResponse(question))
}

func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return notFound(c, CodeQuestionNotFound)
	}

	question, err := h.questions.GetWithAnswers(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, CodeQuestionNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load question")
	}

	return c.JSON(schemas.NewQuestionWithAnswers(question))
}

func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return notFound(c, CodeQuestionNotFound)
	}

	if _, err := h.questions.Delete(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, CodeQuestionNotFound)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete question")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
