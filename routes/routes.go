package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"qna_service/handlers"
	"qna_service/repository"
)

// Setup wires repositories and handlers onto the app.
func Setup(app *fiber.App, db *gorm.DB) {
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	questionHandler := handlers.NewQuestionHandler(questionRepo)
	answerHandler := handlers.NewAnswerHandler(answerRepo, questionRepo)

	QuestionRoutes(app, questionHandler, answerHandler)
	AnswerRoutes(app, answerHandler)
}
