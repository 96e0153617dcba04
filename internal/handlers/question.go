package handlers

import (
	"errors"
	"net/http"

	"trivia-backend/internal/logger"
	"trivia-backend/internal/services"
	"trivia-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questions  *services.QuestionService
	categories *services.CategoryService
	hub        *ws.Hub
	log        *logger.Logger
}

func NewQuestionHandler(questions *services.QuestionService, categories *services.CategoryService, hub *ws.Hub, log *logger.Logger) *QuestionHandler {
	return &QuestionHandler{questions: questions, categories: categories, hub: hub, log: log}
}

// QuestionRequest is the body of POST /questions. A non-empty SearchTerm
// selects search, otherwise the remaining fields describe a new question.
type QuestionRequest struct {
	Question   string   `json:"question" example:"What is the heaviest organ in the human body?"`
	Answer     string   `json:"answer" example:"The Liver"`
	Category   *FlexInt `json:"category" swaggertype:"integer" example:"1"`
	Difficulty *FlexInt `json:"difficulty" swaggertype:"integer" example:"4"`
	SearchTerm string   `json:"searchTerm" example:"title"`
}

type QuestionsResponse struct {
	Success         bool            `json:"success" example:"true"`
	Questions       []Question      `json:"questions"`
	TotalQuestions  int64           `json:"total_questions" example:"19"`
	Categories      map[uint]string `json:"categories"`
	CurrentCategory *uint           `json:"current_category"`
}

type SearchQuestionsResponse struct {
	Success        bool       `json:"success" example:"true"`
	Questions      []Question `json:"questions"`
	TotalQuestions int64      `json:"total_questions" example:"2"`
}

type CreateQuestionResponse struct {
	Success        bool  `json:"success" example:"true"`
	Created        uint  `json:"created" example:"24"`
	TotalQuestions int64 `json:"total_questions" example:"20"`
}

type DeleteQuestionResponse struct {
	Success        bool  `json:"success" example:"true"`
	Deleted        uint  `json:"deleted" example:"9"`
	TotalQuestions int64 `json:"total_questions" example:"18"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Paginated questions ordered by id, 10 per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	questions, total, err := h.questions.List(ctx, pageParam(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list questions")
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if len(questions) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	types, err := h.categories.Types(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list categories")
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		Categories:      types,
		CurrentCategory: nil,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	total, err := h.questions.Delete(c.Request.Context(), questionID)
	if errors.Is(err, services.ErrQuestionNotFound) {
		abortWithError(c, http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Uint("question_id", questionID).Msg("delete question")
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	h.hub.Broadcast(ws.Event{
		Type: ws.EventQuestionDeleted,
		Data: ws.QuestionChange{ID: questionID, TotalQuestions: total},
	})

	c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        questionID,
		TotalQuestions: total,
	})
}

// CreateOrSearchQuestions godoc
// @Summary      Create or search questions
// @Description  With a non-empty searchTerm, returns paginated questions containing it (case-insensitive).
// @Description  Otherwise creates a question from question, answer, category and difficulty.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page    query int             false "Page number for search results" default(1)
// @Param        request body  QuestionRequest true  "New question or search term"
// @Success      200 {object} CreateQuestionResponse
// @Success      200 {object} SearchQuestionsResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn().Err(err).Msg("decode question request")
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	if req.SearchTerm != "" {
		h.searchQuestions(c, req.SearchTerm)
		return
	}

	h.createQuestion(c, req)
}

func (h *QuestionHandler) searchQuestions(c *gin.Context, term string) {
	questions, total, err := h.questions.Search(c.Request.Context(), term, pageParam(c))
	if err != nil {
		h.log.Error().Err(err).Str("search_term", term).Msg("search questions")
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: total,
	})
}

func (h *QuestionHandler) createQuestion(c *gin.Context, req QuestionRequest) {
	question, total, err := h.questions.Create(c.Request.Context(), services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.intPtr(),
		Difficulty: req.Difficulty.intPtr(),
	})
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			h.log.Warn().Err(err).Msg("create question")
		} else {
			h.log.Error().Err(err).Msg("create question")
		}
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	h.hub.Broadcast(ws.Event{
		Type: ws.EventQuestionCreated,
		Data: ws.QuestionChange{ID: question.ID, TotalQuestions: total},
	})

	c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:        true,
		Created:        question.ID,
		TotalQuestions: total,
	})
}
