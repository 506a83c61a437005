package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		check  func(error) bool
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, IsNotFound},
		{"translated duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, IsUniqueConstraintViolationError},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "categories_name_key"`), http.StatusConflict, IsUniqueConstraintViolationError},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: categories.name"), http.StatusConflict, IsUniqueConstraintViolationError},
		{"translated foreign key", gorm.ErrForeignKeyViolated, http.StatusBadRequest, IsForeignKeyConstraintError},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest, IsForeignKeyConstraintError},
		{"connection", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, func(err error) bool { return errors.Is(err, ErrDatabaseConnection) }},
		{"anything else", errors.New("syntax error"), http.StatusInternalServerError, func(err error) bool { return errors.Is(err, ErrDatabaseQuery) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "category", fmt.Errorf("wrapped: %w", tt.cause))
			assert.Equal(t, tt.status, err.StatusCode)
			assert.True(t, tt.check(err), err.GetFullError())
		})
	}
}

func TestRequestErrors(t *testing.T) {
	malformed := NewMalformedPayloadError("project", errors.New("unexpected EOF"))
	assert.True(t, IsMalformedPayloadError(malformed))
	assert.Equal(t, "payload", malformed.Field)
	assert.Equal(t, "malformed payload: Malformed project payload -> unexpected EOF", malformed.GetFullError())

	tooLarge := NewMaxBodySizeExceededError(1024)
	assert.True(t, IsMaxBodySizeExceededError(tooLarge))
	assert.Equal(t, http.StatusRequestEntityTooLarge, tooLarge.StatusCode)
	assert.False(t, IsMalformedPayloadError(tooLarge))

	assert.True(t, IsMissingRequiredFieldError(NewMissingRequiredFieldError("start_date")))
	assert.True(t, IsInvalidFieldError(NewInvalidFieldError("order", "cannot sort by \"password\"")))
}

func TestNewDatabaseErrorKeepsApiErr(t *testing.T) {
	validation := NewValidationError("end_date", "End date cannot be before start date!")
	err := NewDatabaseError("update", "project", validation)
	assert.Same(t, validation, err)
	assert.True(t, IsValidationError(err))
}

func TestApiErrMessages(t *testing.T) {
	err := NewValidationError("end_date", "End date cannot be before start date!")
	assert.Equal(t, "validation failed: End date cannot be before start date!", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "end_date", err.Field)

	wrapped := NewInternalErrorWithCause("listing failed", err)
	assert.Equal(t, "internal server error: listing failed -> validation failed: End date cannot be before start date!", wrapped.GetFullError())
	assert.True(t, IsInternal(wrapped))

	assert.True(t, IsNotFound(NewNotFound("job")))
	assert.True(t, IsNotFound(NewNotFoundError("job not found")))
	assert.True(t, IsBadRequest(BadRequest("missing id")))
}
