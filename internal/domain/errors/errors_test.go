package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithDetails("title is required"), "create deal")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrConflict)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "title is required", appErr.Details())
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, ErrCampaignClosed.Message(), MessageOf(errors.Wrap(ErrCampaignClosed, "purchase"), "fallback"))
	assert.Equal(t, "fallback", MessageOf(errors.New("plain"), "fallback"))
}
