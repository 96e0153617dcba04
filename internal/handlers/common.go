package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"trivia-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

// Type alias so swag can resolve the model in annotations.
type Question = models.Question

var errorMessages = map[int]string{
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not found",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "database unavailable",
}

func abortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	})
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound)
}

// MethodNotAllowed answers known routes requested with the wrong verb.
func MethodNotAllowed(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed)
}

// InternalError answers recovered panics.
func InternalError(c *gin.Context, _ any) {
	abortWithError(c, http.StatusInternalServerError)
}

// pageParam reads the 1-based ?page parameter. Missing, malformed and
// non-positive values all mean page 1. Positive values too large for int
// are kept past the last page.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if errors.Is(err, strconv.ErrRange) && page > 0 {
		return math.MaxInt
	}
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idParam reads a non-negative integer path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return uint(id), true
}

// FlexInt accepts either a JSON number or a string holding one, since
// browser forms post select values as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return errors.New("expected an integer string")
		}
		*f = FlexInt(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexInt(v)
	return nil
}

func (f *FlexInt) intPtr() *int {
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}
