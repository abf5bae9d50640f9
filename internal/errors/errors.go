package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/ZanzyTHEbar/hongyeon/internal/saju"
	"github.com/gin-gonic/gin"
)

// ErrorCategory defines the type of error for proper handling
type ErrorCategory string

const (
	CategoryValidation    ErrorCategory = "validation"
	CategoryTimeout       ErrorCategory = "timeout"
	CategoryRateLimit     ErrorCategory = "rate_limit"
	CategoryInternal      ErrorCategory = "internal"
	CategoryConfiguration ErrorCategory = "configuration"
)

// AppError wraps an errbuilder error with HTTP context
type AppError struct {
	*errbuilder.ErrBuilder
	Category   ErrorCategory     `json:"category"`
	HTTPStatus int               `json:"http_status"`
	Timestamp  time.Time         `json:"timestamp"`
	RequestID  string            `json:"request_id,omitempty"`
	Fields     map[string]string `json:"details,omitempty"`
	StackTrace string            `json:"stack_trace,omitempty"`
}

// Code maps the errbuilder code to the string clients see
func (e *AppError) Code() string {
	switch e.ErrBuilder.ErrCode() {
	case errbuilder.CodeInvalidArgument:
		return "VALIDATION_ERROR"
	case errbuilder.CodeDeadlineExceeded:
		return "TIMEOUT_ERROR"
	case errbuilder.CodeResourceExhausted:
		return "RATE_LIMIT_EXCEEDED"
	case errbuilder.CodeInternal:
		return "INTERNAL_ERROR"
	case errbuilder.CodeFailedPrecondition:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code(), e.ErrBuilder.Msg)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.ErrBuilder.Unwrap()
}

// Response is the body written to clients
func (e *AppError) Response() gin.H {
	body := gin.H{
		"error":    e.ErrBuilder.Msg,
		"code":     e.Code(),
		"category": e.Category,
	}
	if len(e.Fields) > 0 {
		body["details"] = e.Fields
	}
	if e.RequestID != "" {
		body["request_id"] = e.RequestID
	}
	return body
}

// NewAppError creates an AppError from errbuilder with additional context
func NewAppError(builder *errbuilder.ErrBuilder, category ErrorCategory, httpStatus int) *AppError {
	return &AppError{
		ErrBuilder: builder,
		Category:   category,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
	}
}

// withFields records details on both the builder and the response
func (e *AppError) withFields(fields map[string]string) *AppError {
	if len(fields) == 0 {
		return e
	}

	errorMap := errbuilder.ErrorMap{}
	for k, v := range fields {
		errorMap.Set(k, errors.New(v))
	}
	e.ErrBuilder = e.ErrBuilder.WithDetails(errbuilder.NewErrDetails(errorMap))
	e.Fields = fields
	return e
}

// NewValidationError creates a validation error
func NewValidationError(message string, details ...interface{}) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(message)

	appErr := NewAppError(builder, CategoryValidation, http.StatusBadRequest)
	if len(details) > 0 {
		appErr.withFields(map[string]string{"validation_details": fmt.Sprintf("%v", details[0])})
	}
	return appErr
}

// NewMissingYearError creates the validation error shown when a birth
// year is absent. The message is the prompt the form displays.
func NewMissingYearError(persons ...string) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(saju.MissingYearPrompt).
		WithCause(saju.ErrMissingYear)

	appErr := NewAppError(builder, CategoryValidation, http.StatusBadRequest)
	if len(persons) > 0 {
		appErr.withFields(map[string]string{"missing_year": strings.Join(persons, ",")})
	}
	return appErr
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(message string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeDeadlineExceeded).
		WithMsg(message)

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return NewAppError(builder, CategoryTimeout, http.StatusGatewayTimeout)
}

// NewRateLimitError creates a rate limit error
func NewRateLimitError(retryAfter time.Duration) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeResourceExhausted).
		WithMsg("Rate limit exceeded")

	appErr := NewAppError(builder, CategoryRateLimit, http.StatusTooManyRequests)
	return appErr.withFields(map[string]string{"retry_after": retryAfter.Round(time.Second).String()})
}

// NewPayloadTooLargeError is returned when a body exceeds the configured limit
func NewPayloadTooLargeError(limit int64) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("Request body too large")

	appErr := NewAppError(builder, CategoryValidation, http.StatusRequestEntityTooLarge)
	return appErr.withFields(map[string]string{"max_bytes": fmt.Sprintf("%d", limit)})
}

// NewUnsupportedMediaTypeError rejects request bodies the API cannot decode
func NewUnsupportedMediaTypeError(contentType string) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("Unsupported content type")

	appErr := NewAppError(builder, CategoryValidation, http.StatusUnsupportedMediaType)
	return appErr.withFields(map[string]string{"content_type": contentType})
}

// NewInternalError creates an internal server error. The message is kept
// in the details, clients only see a generic message.
func NewInternalError(message string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("Internal server error")

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	appErr := NewAppError(builder, CategoryInternal, http.StatusInternalServerError)
	appErr.withFields(map[string]string{"internal_details": message})

	if gin.Mode() == gin.DebugMode || gin.Mode() == gin.TestMode {
		appErr.StackTrace = captureStackTrace()
	}

	return appErr
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(message string, cause error) *AppError {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("Configuration error")

	if cause != nil {
		builder = builder.WithCause(cause)
	}

	appErr := NewAppError(builder, CategoryConfiguration, http.StatusInternalServerError)
	return appErr.withFields(map[string]string{"config_details": message})
}

// captureStackTrace captures a stack trace for debugging
func captureStackTrace() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}

// ToAppError converts any error to an AppError
func ToAppError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if ebErr, ok := err.(*errbuilder.ErrBuilder); ok {
		return NewAppError(ebErr, CategoryInternal, http.StatusInternalServerError)
	}

	if errors.Is(err, saju.ErrMissingYear) {
		return NewMissingYearError()
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return NewPayloadTooLargeError(maxBytesErr.Limit)
	}

	// Malformed request bodies
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		strings.Contains(err.Error(), "EOF") {
		return NewValidationError("invalid request body", err.Error())
	}

	if errors.Is(err, context.Canceled) {
		return NewTimeoutError("Request cancelled", err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError("Request deadline exceeded", err)
	}

	return NewInternalError("An unexpected error occurred", err)
}

// Abort logs the error and writes it as the response
func Abort(c *gin.Context, err error) {
	appErr := ToAppError(err)
	if appErr.RequestID == "" {
		appErr.RequestID = c.GetString("request_id")
	}
	LogError(c, appErr)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.Response())
}

// ErrorHandler is a Gin middleware that provides centralized error handling
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			Abort(c, c.Errors.Last().Err)
		}
	}
}

// RecoveryHandler provides panic recovery with structured error responses
func RecoveryHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		appErr := NewInternalError(
			fmt.Sprintf("Panic recovered: %v", err),
			fmt.Errorf("%v", err),
		)
		appErr.StackTrace = captureStackTrace()

		Abort(c, appErr)
	})
}

// LogError logs an error with appropriate level and context
func LogError(c *gin.Context, err *AppError) {
	logEntry := slog.With(
		"error_category", err.Category,
		"error_code", err.Code(),
		"http_status", err.HTTPStatus,
		"ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", err.RequestID,
	)

	errorMsg := err.ErrBuilder.Msg

	switch err.Category {
	case CategoryValidation, CategoryRateLimit:
		if len(err.Fields) > 0 {
			logEntry.Warn(errorMsg, "details", err.Fields)
		} else {
			logEntry.Warn(errorMsg)
		}
	case CategoryTimeout:
		if cause := err.ErrBuilder.Unwrap(); cause != nil {
			logEntry.Info(errorMsg, "cause", cause)
		} else {
			logEntry.Info(errorMsg)
		}
	default:
		if cause := err.ErrBuilder.Unwrap(); cause != nil {
			logEntry.Error(errorMsg, "cause", cause, "details", err.Fields)
		} else {
			logEntry.Error(errorMsg, "details", err.Fields)
		}
	}

	if err.StackTrace != "" && (gin.Mode() == gin.DebugMode || gin.Mode() == gin.TestMode) {
		logEntry.Debug("stack_trace", "trace", err.StackTrace)
	}
}
