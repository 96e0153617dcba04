package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	AllowedMethods = []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions}
	AllowedHeaders = []string{"Content-Type", "Authorization"}
)

// CORS allows every origin. The allowed methods and headers are sent on
// every response, not only on preflight.
func CORS() gin.HandlerFunc {
	handleCORS := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    AllowedMethods,
		AllowHeaders:    AllowedHeaders,
		MaxAge:          12 * time.Hour,
	})

	allowMethods := strings.Join(AllowedMethods, ",")
	allowHeaders := strings.Join(AllowedHeaders, ",")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Allow-Methods", allowMethods)
		handleCORS(c)
	}
}
