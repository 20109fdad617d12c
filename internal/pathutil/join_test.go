package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"nested folders", []string{"A", "B", "req"}, "/A/B/req"},
		{"slashes in segments", []string{"/A/", "/B", "req/"}, "/A/B/req"},
		{"empty middle", []string{"A", "", "req"}, "/A/req"},
		{"trailing empty segment", []string{"users", ""}, "/users/"},
		{"no segments", nil, "/"},
		{"only empty", []string{""}, "/"},
		{"multi-part segment", []string{"api/v1", "users"}, "/api/v1/users"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.segments...))
		})
	}
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"users", "1"}, Split("/users/1"))
	assert.Equal(t, []string{"users", ""}, Split("users/"))
	assert.Nil(t, Split("/"))
}
