package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"qna_service/schemas"
)

// Machine-readable codes surfaced in 404 bodies.
const (
	CodeQuestionNotFound = "question_not_found"
	CodeAnswerNotFound   = "answer_not_found"
)

func notFound(c *fiber.Ctx, code string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": code})
}

func unprocessable(c *fiber.Ctx, verr *schemas.ValidationError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": []*schemas.ValidationError{verr},
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": message})
}

// ErrorHandler is the app-level Fiber error handler: anything the route
// handlers did not map themselves ends up here.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(code).JSON(fiber.Map{"detail": message})
}
