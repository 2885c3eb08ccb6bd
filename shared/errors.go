package shared

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status through the service layer so the
// top-level fiber error handler can translate it into a response.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(statusCode int, message string, data interface{}) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, nil)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, nil)
}

func NewInternalError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
