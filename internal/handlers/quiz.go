package handlers

import (
	"net/http"

	"trivia-backend/internal/logger"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	questions *services.QuestionService
	log       *logger.Logger
}

func NewQuizHandler(questions *services.QuestionService, log *logger.Logger) *QuizHandler {
	return &QuizHandler{questions: questions, log: log}
}

// QuizCategory selects the quiz category. ID 0 means all categories.
type QuizCategory struct {
	ID   FlexInt `json:"id" swaggertype:"integer" example:"5"`
	Type string  `json:"type,omitempty" example:"Entertainment"`
}

type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions" example:"2,6"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuizResponse struct {
	Success  bool      `json:"success" example:"true"`
	Question *Question `json:"question"`
}

// NextQuizQuestion godoc
// @Summary      Next quiz question
// @Description  A random question not in previous_questions, optionally limited to one category.
// @Description  question is null once every candidate has been played.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuizQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn().Err(err).Msg("decode quiz request")
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	categoryID := 0
	if req.QuizCategory != nil {
		categoryID = int(req.QuizCategory.ID)
	}

	question, err := h.questions.RandomQuizQuestion(c.Request.Context(), req.PreviousQuestions, categoryID)
	if err != nil {
		h.log.Error().Err(err).Int("category_id", categoryID).Msg("pick quiz question")
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
