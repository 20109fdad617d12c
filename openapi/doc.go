// Package openapi provides the OpenAPI 3.0 document model produced by the
// converter.
//
// Import path: github.com/erraggy/postman2oas/openapi
//
// The model covers the subset of OpenAPI 3.0 a Postman collection can
// populate. [Paths] keeps insertion order so that the serialized document
// lists paths in the same order as the requests appear in the collection.
// All other mappings serialize with sorted keys.
//
// # Serialization
//
// Use [MarshalJSON] or [MarshalYAML]; both preserve path order:
//
//	data, err := openapi.MarshalYAML(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(data)
package openapi
