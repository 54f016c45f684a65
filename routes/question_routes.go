package routes

import (
	"github.com/gofiber/fiber/v2"

	"qna_service/handlers"
)

func QuestionRoutes(app *fiber.App, questions *handlers.QuestionHandler, answers *handlers.AnswerHandler) {
	group := app.Group("/questions")

	group.Get("/", questions.ListQuestions)
	group.Post("/", questions.CreateQuestion)
	group.Get("/:id", questions.GetQuestion)
	group.Delete("/:id", questions.DeleteQuestion)
	group.Post("/:id/answers/", answers.CreateAnswer)
}
