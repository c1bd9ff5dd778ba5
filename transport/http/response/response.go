package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"tripbook/shared/constant"
	"tripbook/shared/failure"
	"tripbook/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error   *string        `json:"error,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// NotFound points the client back to a listing it can search instead.
type NotFound struct {
	Error  *string `json:"error,omitempty"`
	Search string  `json:"search"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// detailed errors carry machine readable hints, such as the wizard field that failed.
type detailed interface {
	Details() map[string]any
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	write(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends the failure code of err with its message and any details it carries.
func WithError(writer http.ResponseWriter, err error) {
	errMsg := err.Error()
	body := Error{Error: &errMsg}

	var d detailed
	if errors.As(err, &d) {
		body.Details = d.Details()
	}

	write(writer, failure.GetCode(err), body)
}

// WithNotFound sends a 404 carrying a link to the listing the missing item came from
func WithNotFound(writer http.ResponseWriter, err error, searchLink string) {
	errMsg := err.Error()

	write(writer, http.StatusNotFound, NotFound{Error: &errMsg, Search: searchLink})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
