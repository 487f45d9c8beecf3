package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", Validation("bad value %d", 3), http.StatusBadRequest},
		{"not found", NotFound("entry %d not found", 1), http.StatusNotFound},
		{"conflict", Conflict("position taken"), http.StatusConflict},
		{"locked", Locked("judge submitted"), http.StatusForbidden},
		{"unauthorized", Unauthorized("invalid credentials"), http.StatusUnauthorized},
		{"wrapped", fmt.Errorf("saving: %w", Locked("judge submitted")), http.StatusForbidden},
		{"gorm not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"gorm duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusOf(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, Conflict("position %d is taken", 5))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"position 5 is taken"}`, w.Body.String())
}
