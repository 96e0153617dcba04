package router_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"trivia-backend/internal/database/databasetest"
	"trivia-backend/internal/logger"
	"trivia-backend/internal/router"
	"trivia-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newEngine(t *testing.T) (*gin.Engine, *ws.Hub) {
	t.Helper()

	log := logger.Nop()
	hub := ws.NewHub(log)
	engine := router.New(router.Dependencies{
		DB:     databasetest.NewSQLite(t),
		Logger: log,
		Hub:    hub,
	})
	return engine, hub
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func assertEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	assert.JSONEq(t, fmt.Sprintf(`{"success": false, "error": %d, "message": %q}`, status, message), rec.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)

	testCases := []struct {
		method string
		target string
	}{
		{method: http.MethodPut, target: "/questions"},
		{method: http.MethodPatch, target: "/categories"},
		{method: http.MethodGet, target: "/questions/3"},
		{method: http.MethodGet, target: "/quizzes"},
		{method: http.MethodDelete, target: "/categories/1/questions"},
	}
	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := serve(engine, httptest.NewRequest(tc.method, tc.target, nil))
			assertEnvelope(t, rec, http.StatusMethodNotAllowed, "method not found")
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/question?page=1000", nil))
	assertEnvelope(t, rec, http.StatusNotFound, "resource not found")
}

func TestRouter_Recovery(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assertEnvelope(t, rec, http.StatusInternalServerError, "internal server error")
}

func TestRouter_CORSHeaders(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)

	testCases := []struct {
		desc           string
		method         string
		target         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			desc:           "cross-origin request",
			method:         http.MethodGet,
			target:         "/categories",
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
		},
		{
			desc:           "same-origin request",
			method:         http.MethodGet,
			target:         "/categories",
			expectedStatus: http.StatusOK,
		},
		{
			desc:           "error response",
			method:         http.MethodGet,
			target:         "/questions",
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusNotFound,
			expectedOrigin: "*",
		},
		{
			desc:           "preflight",
			method:         http.MethodOptions,
			target:         "/questions",
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "*",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}

			rec := serve(engine, req)
			require.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET,PUT,POST,DELETE,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type,Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/categories", nil))
	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	rec = serve(engine, req)
	assert.Equal(t, "trace-42", rec.Header().Get("X-Request-ID"))
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}

func TestRouter_Swagger(t *testing.T) {
	t.Parallel()

	engine, _ := newEngine(t)

	rec := serve(engine, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/quizzes"`)
}

func TestRouter_QuestionEvents(t *testing.T) {
	t.Parallel()

	engine, hub := newEngine(t)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/questions"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	body := `{"question": "What is the capital of Peru?", "answer": "Lima", "category": 3, "difficulty": 2}`
	resp, err := http.Post(srv.URL+"/questions", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event struct {
		Type string            `json:"type"`
		Data ws.QuestionChange `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, ws.EventQuestionCreated, event.Type)
	assert.Equal(t, uint(1), event.Data.ID)
	assert.Equal(t, int64(1), event.Data.TotalQuestions)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/questions/1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, ws.EventQuestionDeleted, event.Type)
	assert.Equal(t, uint(1), event.Data.ID)
	assert.Equal(t, int64(0), event.Data.TotalQuestions)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}
