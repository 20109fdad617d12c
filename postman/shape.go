package postman

import (
	"fmt"
	"sync"

	"github.com/erraggy/postman2oas/oaserrors"
	"github.com/xeipuuv/gojsonschema"
)

// shapeSchema accepts any object whose "item" fields, at every depth, are
// arrays. Everything else is left to the tolerant decoder.
const shapeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "item": { "$ref": "#/definitions/itemList" }
  },
  "definitions": {
    "itemList": {
      "type": "array",
      "items": { "$ref": "#/definitions/item" }
    },
    "item": {
      "properties": {
        "item": { "$ref": "#/definitions/itemList" }
      }
    }
  }
}`

var (
	shapeOnce     sync.Once
	compiledShape *gojsonschema.Schema
	compileErr    error
)

// checkShape validates the structural invariants the converter relies on.
func checkShape(doc []byte) error {
	shapeOnce.Do(func() {
		compiledShape, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(shapeSchema))
	})
	if compileErr != nil {
		return &oaserrors.ParseError{Message: "shape schema", Cause: compileErr}
	}

	result, err := compiledShape.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &oaserrors.ParseError{Message: "shape check failed", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	shapeErr := &oaserrors.InvalidInputError{
		Path:    first.Field(),
		Message: first.Description(),
	}
	details := first.Details()
	if expected, ok := details["expected"]; ok {
		shapeErr.Expected = fmt.Sprint(expected)
	}
	if given, ok := details["given"]; ok {
		shapeErr.Actual = fmt.Sprint(given)
	}
	return shapeErr
}
