package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var exportHeader = []string{"id", "question", "answer", "category", "difficulty"}

// ExportQuestions godoc
// @Summary      Export the question bank
// @Description  Every question ordered by id, as a JSON array or CSV file
// @Tags         questions
// @Produce      json
// @Produce      text/csv
// @Param        format query string false "Export format" Enums(json, csv) default(json)
// @Success      200 {array} Question
// @Failure      422 {object} ErrorResponse
// @Router       /questions/export [get]
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	questions, err := h.questions.All(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("export questions")
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	if format == "json" {
		c.Header("Content-Disposition", `attachment; filename="questions.json"`)
		c.JSON(http.StatusOK, questions)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="questions.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	rows := make([][]string, 0, len(questions)+1)
	rows = append(rows, exportHeader)
	for _, q := range questions {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(q.ID), 10),
			q.Question,
			q.Answer,
			strconv.Itoa(q.Category),
			strconv.Itoa(q.Difficulty),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		h.log.Error().Err(err).Msg("write questions csv")
	}
}
