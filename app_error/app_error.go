package app_error

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// Validation marks malformed input. Never retried.
func Validation(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), http.StatusBadRequest}
}

func NotFound(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), http.StatusNotFound}
}

// Conflict marks a collision the caller may retry with a different value.
func Conflict(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), http.StatusConflict}
}

// Locked marks writes rejected because the judge already submitted.
func Locked(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), http.StatusForbidden}
}

func Unauthorized(format string, args ...any) error {
	return statusError{fmt.Errorf(format, args...), http.StatusUnauthorized}
}

// StatusOf resolves the HTTP status for an error returned by a service.
func StatusOf(err error) int {
	var withStatus interface{ HTTPStatus() int }
	if errors.As(err, &withStatus) {
		return withStatus.HTTPStatus()
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// Respond writes err with the status StatusOf picks for it.
func Respond(c *gin.Context, err error) {
	WithHTTPStatus(c, err, StatusOf(err))
}
