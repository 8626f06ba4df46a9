package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	FullName string `form:"full_name" validate:"required,max=5"`
	Role     string `form:"role" validate:"required,oneof=supporter fundraiser business"`
}

func TestValidate_DescribesEveryField(t *testing.T) {
	err := New().Validate(&signupForm{
		Email:    "not-an-email",
		Password: "short",
		FullName: "Too long name",
		Role:     "admin",
	})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "password must be at least 8 characters")
	assert.Contains(t, msg, "full name must be at most 5 characters")
	assert.Contains(t, msg, "role must be one of: supporter fundraiser business")
}

func TestValidate_Passes(t *testing.T) {
	err := New().Validate(&signupForm{
		Email:    "ada@example.com",
		Password: "long-enough",
		FullName: "Ada",
		Role:     "business",
	})

	assert.NoError(t, err)
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "Some fields are missing or invalid", Describe(errors.New("boom")))
}
