package routes

import (
	"github.com/gofiber/fiber/v2"

	"qna_service/handlers"
)

func AnswerRoutes(app *fiber.App, answers *handlers.AnswerHandler) {
	group := app.Group("/answers")

	group.Get("/:id", answers.GetAnswer)
	group.Delete("/:id", answers.DeleteAnswer)
}
