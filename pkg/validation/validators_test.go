package validation_test

import (
	"strings"
	"testing"

	"resume-portal-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co",
		"J_D%99@example.io",
	}
	for _, email := range valid {
		assert.True(t, validation.ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"jane@",
		"jane@example",
		"jane@example.c",
		"jane doe@example.com",
	}
	for _, email := range invalid {
		assert.False(t, validation.ValidEmail(email), email)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"9876543210",
		"987-654-3210",
		"(987) 654-3210",
		"98 76 54 32 10",
	}
	for _, phone := range valid {
		assert.True(t, validation.ValidPhone(phone), phone)
	}

	invalid := []string{
		"",
		"12345",
		"98765432101",
		"98765abc10",
		"+919876543210",
	}
	for _, phone := range invalid {
		assert.False(t, validation.ValidPhone(phone), phone)
	}
}

func TestValidPassword(t *testing.T) {
	assert.True(t, validation.ValidPassword("secret"))
	assert.True(t, validation.ValidPassword("a much longer passphrase"))
	assert.False(t, validation.ValidPassword("12345"))
	assert.False(t, validation.ValidPassword(""))
}

func TestValidUsername(t *testing.T) {
	assert.True(t, validation.ValidUsername("jane_doe"))
	assert.True(t, validation.ValidUsername("abc"))
	assert.True(t, validation.ValidUsername(strings.Repeat("a", 50)))

	assert.False(t, validation.ValidUsername("ab"))
	assert.False(t, validation.ValidUsername(strings.Repeat("a", 51)))
	assert.False(t, validation.ValidUsername("jane doe"))
	assert.False(t, validation.ValidUsername("jane-doe"))
	assert.False(t, validation.ValidUsername(""))
}
