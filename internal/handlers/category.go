package handlers

import (
	"net/http"

	"trivia-backend/internal/logger"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *services.CategoryService
	questions  *services.QuestionService
	log        *logger.Logger
}

func NewCategoryHandler(categories *services.CategoryService, questions *services.QuestionService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, questions: questions, log: log}
}

type CategoriesResponse struct {
	Success         bool            `json:"success" example:"true"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories" example:"6"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success" example:"true"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int64      `json:"total_questions" example:"3"`
	CurrentCategory uint       `json:"current_category" example:"5"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  All categories as an id to type mapping
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	types, err := h.categories.Types(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list categories")
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:         true,
		Categories:      types,
		TotalCategories: len(types),
	})
}

// ListCategoryQuestions godoc
// @Summary      List questions of a category
// @Description  Paginated questions of one category. An empty page is not an error.
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, ok := idParam(c, "id")
	if !ok {
		abortWithError(c, http.StatusNotFound)
		return
	}

	questions, total, err := h.questions.ListByCategory(c.Request.Context(), int(categoryID), pageParam(c))
	if err != nil {
		h.log.Error().Err(err).Uint("category_id", categoryID).Msg("list category questions")
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		CurrentCategory: categoryID,
	})
}
