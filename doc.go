// Package postman2oas converts Postman Collection v2.1 documents into
// OpenAPI 3.0 documents.
//
// # Overview
//
// The module is split into small packages:
//
//   - postman: tolerant decoding of collections from JSON, YAML or decoded values
//   - openapi: the OpenAPI 3.0 document model with order-preserving JSON and YAML output
//   - converter: the conversion itself, configured through a Converter or functional options
//   - oaserrors: typed errors shared by all packages
//
// # Quick Start
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("collection.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := openapi.MarshalYAML(result.Document)
//	os.Stdout.Write(data)
//
// Issues found along the way are reported on the result rather than as
// errors; see converter.ConversionResult.
//
// # Command Line
//
// The postman2oas command wraps the converter:
//
//	postman2oas convert -o openapi.yaml collection.json
//	postman2oas convert --vars staging.env -f json https://example.com/collection.json
//	postman2oas mcp
//
// The mcp command serves a single convert tool over stdio for MCP clients.
package postman2oas
