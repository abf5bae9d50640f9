package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/hongyeon/internal/saju"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("test validation error", "field1")

	assert.Equal(t, "[VALIDATION_ERROR] test validation error", err.Error())
	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "field1", err.Fields["validation_details"])
}

func TestNewMissingYearError(t *testing.T) {
	err := NewMissingYearError("person_a", "person_b")

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.ErrorIs(t, err, saju.ErrMissingYear)
	assert.Equal(t, saju.MissingYearPrompt, err.Response()["error"])
	assert.Equal(t, "person_a,person_b", err.Fields["missing_year"])
}

func TestNewRateLimitError(t *testing.T) {
	err := NewRateLimitError(1500 * time.Millisecond)

	assert.Equal(t, "RATE_LIMIT_EXCEEDED", err.Code())
	assert.Equal(t, http.StatusTooManyRequests, err.HTTPStatus)
	assert.Equal(t, "2s", err.Fields["retry_after"])
}

func TestToAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		err              error
		expectedCategory ErrorCategory
		expectedStatus   int
	}{
		{
			name:             "missing year wrapped by scorer",
			err:              fmt.Errorf("person a: %w", saju.ErrMissingYear),
			expectedCategory: CategoryValidation,
			expectedStatus:   http.StatusBadRequest,
		},
		{
			name:             "json syntax error",
			err:              json.Unmarshal([]byte(`{"a":`), &struct{}{}),
			expectedCategory: CategoryValidation,
			expectedStatus:   http.StatusBadRequest,
		},
		{
			name:             "oversized body",
			err:              fmt.Errorf("bind: %w", &http.MaxBytesError{Limit: 16}),
			expectedCategory: CategoryValidation,
			expectedStatus:   http.StatusRequestEntityTooLarge,
		},
		{
			name:             "existing app error is kept",
			err:              NewConfigurationError("bad port", nil),
			expectedCategory: CategoryConfiguration,
			expectedStatus:   http.StatusInternalServerError,
		},
		{
			name:             "unknown error is internal",
			err:              fmt.Errorf("boom"),
			expectedCategory: CategoryInternal,
			expectedStatus:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			appErr := ToAppError(tt.err)
			assert.Equal(t, tt.expectedCategory, appErr.Category)
			assert.Equal(t, tt.expectedStatus, appErr.HTTPStatus)
		})
	}

	assert.Nil(t, ToAppError(nil))
}

func TestErrorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(RecoveryHandler())
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(NewValidationError("bad input"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	t.Run("collected error is written", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/fail", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "bad input", body["error"])
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
	})

	t.Run("panic is recovered", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/panic", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "INTERNAL_ERROR", body["code"])
	})
}
