package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))

	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail("user@.com"))
}

func TestValidateRequired(t *testing.T) {
	assert.True(t, ValidateRequired("value"))
	assert.False(t, ValidateRequired(""))
	assert.False(t, ValidateRequired("   "))
}

func TestValidateUserID(t *testing.T) {
	assert.True(t, ValidateUserID("abc"))
	assert.False(t, ValidateUserID("ab"))
	assert.False(t, ValidateUserID("  a  "))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secret"))
	assert.False(t, ValidatePassword("12345"))
}
