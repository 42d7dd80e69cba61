package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

func TestDomainError_IsCentinela(t *testing.T) {
	err := domain.Duplicate("Ingredient name already exists.")
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "Ingredient name already exists.", err.Error())

	wrapped := fmt.Errorf("create: %w", domain.NotFound("Recipe not found"))
	assert.True(t, errors.Is(wrapped, domain.ErrNotFound))
	assert.Equal(t, "Recipe not found", domain.Message(wrapped, "x"))
}

func TestMessage_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", domain.Message(domain.ErrForbidden, "fallback"))
	assert.Equal(t, "fallback", domain.Message(errors.New("boom"), "fallback"))
}
