// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and writes the JSON error.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	}
}

// LogServerError logs at error level and responds 500 with detail.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, detail string) {
	e.Log.Error(msg, e.fields(r, err)...)
	WriteDetail(w, http.StatusInternalServerError, detail)
}

// LogBadRequest logs at info level and responds 400 with detail.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, detail string) {
	e.Log.Info(msg, e.fields(r, err)...)
	WriteDetail(w, http.StatusBadRequest, detail)
}

// LogValidation logs at debug level and responds 422 with the validation message.
func (e *ErrorLogger) LogValidation(w http.ResponseWriter, r *http.Request, err error) {
	e.Log.Debug("request validation failed", e.fields(r, err)...)
	WriteDetail(w, http.StatusUnprocessableEntity, err.Error())
}
