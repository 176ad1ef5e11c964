package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performWithError(err error) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"grade not found", apperrors.ErrGradeNotFound, http.StatusNotFound},
		{"empty semester", apperrors.ErrSemesterEmpty, http.StatusNotFound},
		{"duplicate student", apperrors.ErrStudentCodeExists, http.StatusConflict},
		{"duplicate course", apperrors.ErrCourseCodeExists, http.StatusConflict},
		{"duplicate grade", apperrors.ErrGradeAlreadyExists, http.StatusConflict},
		{"score out of range", apperrors.ErrScoreOutOfRange, http.StatusBadRequest},
		{"validation failure", apperrors.NewValidationError("enrollment code cannot be empty"), http.StatusBadRequest},
		{"unexpected error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := performWithError(tt.err)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	recorder := performWithError(errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.Contains(t, recorder.Body.String(), "Internal server error")
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := apperrors.NewCustomError(apperrors.ErrScoreOutOfRange, "score 1 must be between 0 and 10")

	recorder := performWithError(wrapped)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "score 1 must be between 0 and 10")
}

func TestRequestIDGenerated(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestRequestIDPreserved(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "client-supplied-id", recorder.Header().Get("X-Request-ID"))
}
