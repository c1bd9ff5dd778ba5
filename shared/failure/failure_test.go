package failure_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tripbook/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest, msg: "bad"},
		{name: "bad request from string", err: failure.BadRequestFromString("missing"), code: http.StatusBadRequest, msg: "missing"},
		{name: "unauthorized", err: failure.Unauthorized("login first"), code: http.StatusUnauthorized, msg: "login first"},
		{name: "custom", err: failure.New(http.StatusUnprocessableEntity, "odd"), code: http.StatusUnprocessableEntity, msg: "odd"},
		{name: "not found", err: failure.NotFound("flight not found"), code: http.StatusNotFound, msg: "flight not found"},
		{name: "conflict", err: failure.Conflict("sold out"), code: http.StatusConflict, msg: "sold out"},
		{name: "timeout", err: failure.Timeout("too slow"), code: http.StatusGatewayTimeout, msg: "too slow"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError, msg: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", failure.Conflict("sold out"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusGatewayTimeout, failure.GetCode(fmt.Errorf("load catalog: %w", context.DeadlineExceeded)))
	assert.Equal(t, http.StatusConflict, failure.GetCode(fmt.Errorf("%w: %w", failure.Conflict("sold out"), context.DeadlineExceeded)))
}
