package mcpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreFile = "../../converter/testdata/petstore.postman_collection.json"

func TestCollectionInput_LoadFile(t *testing.T) {
	data, err := collectionInput{File: petstoreFile}.load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Petstore")
}

func TestCollectionInput_LoadContent(t *testing.T) {
	data, err := collectionInput{Content: `{"item": []}`}.load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"item": []}`, string(data))
}

func TestCollectionInput_LoadNoneProvided(t *testing.T) {
	_, err := collectionInput{}.load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 0")
}

func TestCollectionInput_LoadMultipleProvided(t *testing.T) {
	_, err := collectionInput{File: petstoreFile, Content: "{}"}.load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2")
}

func TestCollectionInput_LoadFileNotFound(t *testing.T) {
	_, err := collectionInput{File: "does-not-exist.json"}.load(context.Background())
	assert.Error(t, err)
}

func TestCollectionInput_InlineSizeLimit(t *testing.T) {
	saved := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	t.Cleanup(func() { cfg.MaxInlineSize = saved })

	_, err := collectionInput{Content: `{"item": []}`}.load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum 8 bytes")
}

func TestCollectionInput_LoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"info": {"name": "Remote"}, "item": []}`))
	}))
	defer srv.Close()

	t.Run("private address blocked by default", func(t *testing.T) {
		saved := *cfg
		cfg.AllowPrivateIPs = false
		cfg.FetchAttempts = 1
		t.Cleanup(func() { *cfg = saved })

		_, err := collectionInput{URL: srv.URL}.load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "blocked")
	})

	t.Run("private address allowed by config", func(t *testing.T) {
		saved := *cfg
		cfg.AllowPrivateIPs = true
		t.Cleanup(func() { *cfg = saved })

		data, err := collectionInput{URL: srv.URL}.load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, string(data), "Remote")
	})
}
