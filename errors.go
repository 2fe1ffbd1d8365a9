package tengepay

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// TimeoutError reports that a single request attempt timed out.
type TimeoutError struct{}

func (e *TimeoutError) Error() string {
	return "request timed out"
}

// TransportError reports a connection or protocol level failure that is
// not a timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is the shape shared by every non-2xx response error: the
// HTTP status plus the server-supplied code and message.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationError is raised on HTTP 400.
type ValidationError struct{ StatusError }

// UnauthenticatedError is raised on HTTP 401, commonly on an invalid
// api key.
type UnauthenticatedError struct{ StatusError }

// UnauthorizedError is raised on HTTP 403, commonly when permission is
// not granted for the resource.
type UnauthorizedError struct{ StatusError }

// NotFoundError is raised on HTTP 404.
type NotFoundError struct{ StatusError }

// ConflictError is raised on HTTP 409, when the resource already exists
// or the operation is impossible in the current state.
type ConflictError struct{ StatusError }

// DecodeError reports a response payload that does not match the server
// contract. No partially built entity is ever returned alongside it.
type DecodeError struct {
	Entity string
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decoding %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("decoding %s field %q: %v", e.Entity, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsStatusError extracts the common status/code/message shape from any of
// the status-mapped error variants.
func AsStatusError(err error) (*StatusError, bool) {
	switch e := err.(type) {
	case *ValidationError:
		return &e.StatusError, true
	case *UnauthenticatedError:
		return &e.StatusError, true
	case *UnauthorizedError:
		return &e.StatusError, true
	case *NotFoundError:
		return &e.StatusError, true
	case *ConflictError:
		return &e.StatusError, true
	case *StatusError:
		return e, true
	}
	return nil, false
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classifyStatus maps a transport outcome to the error taxonomy. It is
// pure and total: 2xx yields nil, the five mapped statuses yield their
// specific variant carrying the server code and message, and every other
// status yields a generic StatusError with the raw response text and
// code "Unknown". Both call surfaces go through it unchanged.
func classifyStatus(statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	switch statusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusConflict:
	default:
		return &StatusError{
			StatusCode: statusCode,
			Code:       "Unknown",
			Message:    string(body),
		}
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = errorBody{Message: string(body)}
	}
	base := StatusError{
		StatusCode: statusCode,
		Code:       parsed.Code,
		Message:    parsed.Message,
	}

	switch statusCode {
	case http.StatusBadRequest:
		return &ValidationError{base}
	case http.StatusUnauthorized:
		return &UnauthenticatedError{base}
	case http.StatusForbidden:
		return &UnauthorizedError{base}
	case http.StatusNotFound:
		return &NotFoundError{base}
	default:
		return &ConflictError{base}
	}
}
