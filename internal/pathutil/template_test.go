package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users", "users"},
		{"{{userId}}", "{userId}"},
		{"{{ userId }}", "{userId}"},
		{":orderId", "{orderId}"},
		{"v{{version}}", "v{version}"},
		{"a:b", "a:b"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateSegment(tt.in))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "/users/{id}/orders/{orderId}", Translate("/users/{{id}}/orders/:orderId"))
}

func TestSubstitute(t *testing.T) {
	vars := map[string]string{"host": "api.example.com", "version": "v2"}
	lookup := func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}

	assert.Equal(t, "https://api.example.com/v2", Substitute("https://{{host}}/{{version}}", lookup))
	assert.Equal(t, "https://api.example.com/{{missing}}", Substitute("https://{{host}}/{{missing}}", lookup))
	assert.Equal(t, "plain", Substitute("plain", lookup))
	assert.Equal(t, "{{host}}", Substitute("{{host}}", nil))
}

func TestHasPlaceholder(t *testing.T) {
	assert.True(t, HasPlaceholder("{{baseUrl}}/users"))
	assert.False(t, HasPlaceholder("/users/{id}"))
}

func TestParams(t *testing.T) {
	assert.Equal(t, []string{"id", "orderId"}, Params("/users/{id}/orders/{orderId}/{id}"))
	assert.Nil(t, Params("/users"))
}
