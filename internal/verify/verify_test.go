package verify

import (
	"testing"

	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	result, err := converter.New().ConvertFile("../../converter/testdata/petstore.postman_collection.json")
	require.NoError(t, err)

	marshalers := map[string]func(*openapi.Document) ([]byte, error){
		"json": openapi.MarshalJSON,
		"yaml": openapi.MarshalYAML,
	}
	for name, marshal := range marshalers {
		t.Run(name, func(t *testing.T) {
			data, err := marshal(result.Document)
			require.NoError(t, err)

			s, err := Document(data)
			require.NoError(t, err)
			assert.Equal(t, "3.0.0", s.OpenAPI)
			assert.Equal(t, "Petstore", s.Title)
			assert.Equal(t, result.Document.Paths.Keys(), s.Paths)
			assert.Equal(t, 5, s.Operations)
			assert.ElementsMatch(t, []string{"apikeyAuth", "bearerAuth"}, s.SecuritySchemes)
		})
	}
}

func TestDocumentRejectsGarbage(t *testing.T) {
	_, err := Document([]byte("not: [an openapi document"))
	assert.Error(t, err)

	_, err = Document(nil)
	assert.Error(t, err)
}
