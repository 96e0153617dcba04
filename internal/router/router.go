package router

import (
	"trivia-backend/internal/handlers"
	"trivia-backend/internal/logger"
	"trivia-backend/internal/middleware"
	"trivia-backend/internal/services"
	"trivia-backend/internal/ws"

	_ "trivia-backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Dependencies struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Hub    *ws.Hub
	// QuestionService overrides the default service, e.g. with a fixed
	// quiz question picker.
	QuestionService *services.QuestionService
}

// New wires services and handlers into a gin engine.
func New(deps Dependencies) *gin.Engine {
	log := deps.Logger

	categoryService := services.NewCategoryService(deps.DB)
	questionService := deps.QuestionService
	if questionService == nil {
		questionService = services.NewQuestionService(deps.DB)
	}

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService, log)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, deps.Hub, log)
	quizHandler := handlers.NewQuizHandler(questionService, log)
	healthHandler := handlers.NewHealthHandler(deps.DB, log)
	wsHandler := handlers.NewWSHandler(deps.Hub, log)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log, handlers.InternalError),
		middleware.CORS(),
	)

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/questions", wsHandler.HandleQuestionEvents)
	r.GET("/healthz", healthHandler.Health)

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id/questions", categoryHandler.ListCategoryQuestions)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateOrSearchQuestions)
		questions.GET("/export", questionHandler.ExportQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	r.POST("/quizzes", quizHandler.NextQuizQuestion)

	return r
}
