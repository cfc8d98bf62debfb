package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"linkshortener/internal/service"
)

func TestErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "validation carries reason",
			err:         &service.Error{Kind: service.KindValidation, Reason: "url must not be empty"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "url must not be empty",
		},
		{"not found", service.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "not found"},
		{"conflict", service.ErrConflict, http.StatusConflict, "CONFLICT", "already exists"},
		{"gone", service.ErrGone, http.StatusGone, "GONE", "link expired"},
		{
			name:        "database cause hidden",
			err:         &service.Error{Kind: service.KindDatabase, Err: errors.New("password authentication failed")},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "internal error",
		},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error"},
		{"foreign error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := errorResponse(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			assert.Nil(t, body.Data)
			if assert.NotNil(t, body.Error) {
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.Equal(t, tt.wantMessage, body.Error.Message)
			}
		})
	}
}
