package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, validateUsername("bruce"))
	assert.Error(t, validateUsername(""))
	assert.Error(t, validateUsername("   "))
	assert.Error(t, validateUsername(strings.Repeat("x", 101)))
	assert.NoError(t, validateUsername(strings.Repeat("x", 100)))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("bruce@wayne.dev"))
	assert.Error(t, validateEmail(""))
	assert.Error(t, validateEmail("not-an-email"))
	assert.Error(t, validateEmail("Bruce Wayne <bruce@wayne.dev>"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("secret"))
	assert.Error(t, validatePassword("12345"))
	assert.Error(t, validatePassword(""))
}

func TestValidatePostFields(t *testing.T) {
	assert.NoError(t, validatePostFields("title", "body"))
	assert.Error(t, validatePostFields("", "body"))
	assert.Error(t, validatePostFields("title", ""))
	assert.Error(t, validatePostFields(strings.Repeat("x", 256), "body"))
	assert.NoError(t, validatePostFields(strings.Repeat("x", 255), "body"))
}

func TestValidateCategoryName(t *testing.T) {
	assert.NoError(t, validateCategoryName("News"))
	assert.Error(t, validateCategoryName(""))
	assert.Error(t, validateCategoryName(strings.Repeat("x", 101)))
}
