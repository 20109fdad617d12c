package converter

import (
	"testing"

	"github.com/erraggy/postman2oas/openapi"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func TestCamelCase(t *testing.T) {
	title := cases.Title(language.English)
	lower := cases.Lower(language.English)

	tests := []struct {
		in   string
		want string
	}{
		{"List pets", "listPets"},
		{"GET user by ID", "getUserById"},
		{"create-order_v2", "createOrderV2"},
		{"  spaced   out  ", "spacedOut"},
		{"get /pets/{petId}", "getPetsPetid"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, camelCase(title, lower, tt.in))
		})
	}
}

func TestAssignOperationIDs(t *testing.T) {
	doc := &openapi.Document{Paths: openapi.NewPaths()}
	doc.Paths.Set("/a", &openapi.PathItem{
		Get:  &openapi.Operation{Summary: "Fetch thing"},
		Post: &openapi.Operation{Summary: "!!!"},
	})
	doc.Paths.Set("/b", &openapi.PathItem{
		Get:    &openapi.Operation{Summary: "Fetch thing"},
		Put:    &openapi.Operation{Summary: "fetch Thing"},
		Delete: &openapi.Operation{OperationID: "keepMe"},
	})

	assignOperationIDs(doc)

	assert.Equal(t, "fetchThing", doc.Paths.Get("/a").Get.OperationID)
	assert.Equal(t, "postA", doc.Paths.Get("/a").Post.OperationID)
	assert.Equal(t, "fetchThing2", doc.Paths.Get("/b").Get.OperationID)
	assert.Equal(t, "fetchThing3", doc.Paths.Get("/b").Put.OperationID)
	assert.Equal(t, "keepMe", doc.Paths.Get("/b").Delete.OperationID)
}

func TestConvertOperationIDsDisabled(t *testing.T) {
	c := New()
	c.OperationIDs = false
	result, err := c.ConvertFile("testdata/petstore.postman_collection.json")
	assert.NoError(t, err)
	result.Document.Operations(func(path, method string, op *openapi.Operation) {
		assert.Empty(t, op.OperationID, "%s %s", method, path)
	})
}
