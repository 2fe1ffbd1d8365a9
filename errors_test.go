package tengepay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	errBody := []byte(`{"code":"SOME_CODE","message":"some message"}`)

	t.Run("2xx is success", func(t *testing.T) {
		assert.NoError(t, classifyStatus(200, []byte(`{}`)))
		assert.NoError(t, classifyStatus(201, errBody))
		assert.NoError(t, classifyStatus(204, nil))
	})

	t.Run("400 maps to ValidationError", func(t *testing.T) {
		err := classifyStatus(400, errBody)

		var typed *ValidationError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, 400, typed.StatusCode)
		assert.Equal(t, "SOME_CODE", typed.Code)
		assert.Equal(t, "some message", typed.Message)
	})

	t.Run("401 maps to UnauthenticatedError", func(t *testing.T) {
		var typed *UnauthenticatedError
		require.ErrorAs(t, classifyStatus(401, errBody), &typed)
		assert.Equal(t, 401, typed.StatusCode)
	})

	t.Run("403 maps to UnauthorizedError", func(t *testing.T) {
		var typed *UnauthorizedError
		require.ErrorAs(t, classifyStatus(403, errBody), &typed)
		assert.Equal(t, 403, typed.StatusCode)
	})

	t.Run("404 maps to NotFoundError", func(t *testing.T) {
		err := classifyStatus(404, []byte(`{"code":"ORDER_NOT_FOUND","message":"no such order"}`))

		var typed *NotFoundError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, "ORDER_NOT_FOUND", typed.Code)
		assert.Equal(t, "no such order", typed.Message)
	})

	t.Run("409 maps to ConflictError", func(t *testing.T) {
		var typed *ConflictError
		require.ErrorAs(t, classifyStatus(409, errBody), &typed)
		assert.Equal(t, 409, typed.StatusCode)
	})

	t.Run("any other non-2xx maps to generic StatusError", func(t *testing.T) {
		for _, status := range []int{302, 418, 422, 500, 502, 503} {
			err := classifyStatus(status, []byte("upstream exploded"))

			var typed *StatusError
			require.ErrorAs(t, err, &typed, "status %d", status)
			assert.Equal(t, status, typed.StatusCode)
			assert.Equal(t, "Unknown", typed.Code)
			assert.Equal(t, "upstream exploded", typed.Message)
		}
	})

	t.Run("unparseable error body falls back to raw text", func(t *testing.T) {
		err := classifyStatus(400, []byte("not json"))

		var typed *ValidationError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, "not json", typed.Message)
		assert.Empty(t, typed.Code)
	})
}

func TestStatusErrorRendering(t *testing.T) {
	err := &NotFoundError{StatusError{
		StatusCode: 404,
		Code:       "ORDER_NOT_FOUND",
		Message:    "no such order",
	}}

	assert.Equal(t, "ORDER_NOT_FOUND: no such order", err.Error())
	assert.Equal(t, "ORDER_NOT_FOUND: no such order", fmt.Sprintf("%v", error(err)))
}

func TestAsStatusError(t *testing.T) {
	t.Run("extracts the shared shape from every variant", func(t *testing.T) {
		variants := []error{
			classifyStatus(400, []byte(`{"code":"C","message":"m"}`)),
			classifyStatus(401, []byte(`{"code":"C","message":"m"}`)),
			classifyStatus(403, []byte(`{"code":"C","message":"m"}`)),
			classifyStatus(404, []byte(`{"code":"C","message":"m"}`)),
			classifyStatus(409, []byte(`{"code":"C","message":"m"}`)),
			classifyStatus(500, []byte("boom")),
		}

		for _, err := range variants {
			statusErr, ok := AsStatusError(err)
			require.True(t, ok, "%T", err)
			assert.NotZero(t, statusErr.StatusCode)
		}
	})

	t.Run("rejects unrelated errors", func(t *testing.T) {
		_, ok := AsStatusError(fmt.Errorf("plain"))
		assert.False(t, ok)
	})
}
