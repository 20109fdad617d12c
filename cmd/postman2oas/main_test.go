package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"conert", "convert"},
		{"convrt", "convert"},
		{"covnert", "convert"},
		{"mpc", "mcp"},
		{"mc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		{"xyz", ""},
		{"foobar", ""},
		{"conversion", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("convert", "convert"))
	assert.Equal(t, 1, editDistance("conert", "convert"))
	assert.Equal(t, 3, editDistance("", "mcp"))
	assert.Equal(t, 2, editDistance("ab", "ba"))
}
