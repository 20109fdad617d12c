package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsOrder(t *testing.T) {
	p := NewPaths()
	p.Set("/zeta", &PathItem{})
	p.Set("/alpha", &PathItem{})
	p.Set("/mid", &PathItem{})
	p.Set("/zeta", &PathItem{Summary: "replaced"})

	assert.Equal(t, []string{"/zeta", "/alpha", "/mid"}, p.Keys())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "replaced", p.Get("/zeta").Summary)
	assert.Nil(t, p.Get("/missing"))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"/zeta":{"summary":"replaced"},"/alpha":{},"/mid":{}}`, string(data))
}

func TestPathsZeroValue(t *testing.T) {
	var p Paths
	p.Set("/a", &PathItem{})
	assert.Equal(t, 1, p.Len())

	var nilPaths *Paths
	assert.Equal(t, 0, nilPaths.Len())
	assert.Nil(t, nilPaths.Keys())
	data, err := nilPaths.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestPathsUnmarshalKeepsOrder(t *testing.T) {
	var p Paths
	require.NoError(t, json.Unmarshal([]byte(`{"/b": {"get": {"summary": "b"}}, "/a": {}}`), &p))
	assert.Equal(t, []string{"/b", "/a"}, p.Keys())
	assert.Equal(t, "b", p.Get("/b").Get.Summary)

	assert.Error(t, json.Unmarshal([]byte(`["/a"]`), &p))
}

func TestPathItemOperations(t *testing.T) {
	var item PathItem
	get := &Operation{Summary: "first"}

	assert.True(t, item.SetOperation("GET", get))
	assert.False(t, item.SetOperation("get", &Operation{Summary: "second"}))
	assert.False(t, item.SetOperation("COPY", &Operation{}))
	assert.Same(t, get, item.Operation("get"))
	assert.Nil(t, item.Operation("post"))
	assert.Nil(t, item.Operation("LINK"))

	var nilItem *PathItem
	assert.Nil(t, nilItem.Operation("get"))
}

func TestIsMethod(t *testing.T) {
	for _, m := range []string{"GET", "put", "Post", "DELETE", "options", "HEAD", "patch", "TRACE"} {
		assert.True(t, IsMethod(m), m)
	}
	for _, m := range []string{"COPY", "LINK", "PROPFIND", ""} {
		assert.False(t, IsMethod(m), m)
	}
}

func TestSchemaIsEmpty(t *testing.T) {
	var nilSchema *Schema
	assert.True(t, nilSchema.IsEmpty())
	assert.True(t, (&Schema{}).IsEmpty())
	assert.False(t, (&Schema{Type: "string"}).IsEmpty())
}
