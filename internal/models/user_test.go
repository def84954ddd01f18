package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{
			name:     "first and last name",
			user:     User{Username: "mrodrigues", FirstName: "Maria", LastName: "Rodrigues"},
			expected: "Maria Rodrigues",
		},
		{
			name:     "first name only",
			user:     User{Username: "mrodrigues", FirstName: "Maria"},
			expected: "Maria",
		},
		{
			name:     "falls back to username",
			user:     User{Username: "mrodrigues"},
			expected: "mrodrigues",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.FullName())
		})
	}
}

func TestRole_Valid(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, role.Valid(), string(role))
	}
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
