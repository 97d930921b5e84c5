package validation_test

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmeshop/itemsvc/internal/validation"
)

type query struct {
	Q string `json:"q" binding:"required,min=3,max=50,fixedquery"`
}

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	require.NoError(t, validation.Register())
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestFixedQueryTag(t *testing.T) {
	v := engine(t)

	assert.NoError(t, v.Struct(query{Q: "fixedquery"}))
	assert.Error(t, v.Struct(query{Q: "notmatching"}))
	assert.Error(t, v.Struct(query{Q: "fixedquery "}))
}

func TestFieldsUseJSONTagNames(t *testing.T) {
	v := engine(t)

	err := v.Struct(query{Q: "ab"})
	require.Error(t, err)

	fields := validation.Fields(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "q", fields[0].Field)
	assert.Equal(t, "min", fields[0].Rule)
}

func TestFieldsNilForNonValidationErrors(t *testing.T) {
	assert.Nil(t, validation.Fields(errors.New("boom")))
	assert.False(t, validation.IsConstraintViolation(errors.New("boom")))
}

func TestIsConstraintViolation(t *testing.T) {
	v := engine(t)

	err := v.Struct(query{})
	require.Error(t, err)
	assert.True(t, validation.IsConstraintViolation(err))
}
