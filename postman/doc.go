// Package postman provides a tolerant model of Postman Collection v2.1
// documents.
//
// Import path: github.com/erraggy/postman2oas/postman
//
// Collections found in the wild rarely match the published schema exactly:
// descriptions may be strings or {content} objects, URLs may be strings or
// objects, headers may be a list or a raw "Key: Value" block, and numbers
// appear where strings are expected. Decoding in this package never fails on
// such leaf-level mismatches; mismatched values decode to their zero value.
//
// Only two structural problems are rejected, both with an
// [oaserrors.InvalidInputError]: a root that is not an object, and an "item"
// field (at any depth) that is not a sequence. These are detected with a JSON
// Schema check before typed decoding.
//
// # Parsing
//
//	c, err := postman.ParseFile("collection.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Info.Name, len(c.Items))
//
// [Parse] accepts JSON or YAML bytes. [FromValue] accepts an already-decoded
// value, such as the result of json.Unmarshal into an any.
package postman
