// Package converter converts Postman collections (v2.1) into OpenAPI 3.0
// documents.
//
// The conversion walks the collection's folder tree depth first, in input
// order. Each request becomes one operation under a path built from the
// enclosing folder names and the request URL path, with Postman {{var}} and
// :var placeholders rewritten as OpenAPI {var} templates. Query entries,
// headers and path variables become parameters; request bodies are mapped by
// mode to a media type and an inferred schema. Authentication on the
// collection, folders and requests is mapped to security schemes.
//
// # Quick Start
//
// Convert a file using functional options:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("collection.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := openapi.MarshalYAML(result.Document)
//
// Or use a reusable Converter instance:
//
//	c := converter.New()
//	c.FolderSegments = false
//	result1, _ := c.ConvertFile("users.postman_collection.json")
//	result2, _ := c.ConvertFile("billing.postman_collection.json")
//
// # Conversion Issues
//
// Irregular input never aborts a conversion. Each local degradation (an
// unsupported auth type, a method OpenAPI 3.0 cannot represent, a malformed
// URL, a duplicate operation) is recorded as a [ConversionIssue] with
// severity Info or Warning. The only hard failures are a collection that is
// not an object or has a non-sequence "item" field
// ([oaserrors.InvalidInputError]), folders nested deeper than MaxDepth
// ([oaserrors.ResourceLimitError]), unreadable input ([oaserrors.ParseError])
// and invalid options ([oaserrors.ConfigError]). On error no partial document
// is returned.
//
// # Security
//
// Four Postman auth models are mapped: apikey, basic, bearer and oauth2.
// Collection auth populates the document-level security list; folder auth is
// inherited by the requests below it unless a request declares its own.
// Other auth types, noauth included, map to an empty security requirement
// ({}), which OpenAPI reads as "no authentication required".
//
// # Related Packages
//
//   - [github.com/erraggy/postman2oas/postman] - collection model and parsing
//   - [github.com/erraggy/postman2oas/openapi] - output model and serialization
//   - [github.com/erraggy/postman2oas/oaserrors] - structured error types
package converter
