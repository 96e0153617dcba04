package handlers

import (
	"context"
	"net/http"
	"time"

	"trivia-backend/internal/database"
	"trivia-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthHandler(db *gorm.DB, log *logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

type HealthResponse struct {
	Success bool `json:"success" example:"true"`
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} ErrorResponse
// @Router       /healthz [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		h.log.Error().Err(err).Msg("database ping")
		abortWithError(c, http.StatusServiceUnavailable)
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Success: true})
}
