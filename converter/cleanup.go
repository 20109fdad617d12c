package converter

import "github.com/erraggy/postman2oas/openapi"

// Cleanup normalizes every operation of doc in place:
//   - an empty parameter list is removed
//   - a request body whose content is empty, or holds only text/plain with
//     an empty or absent schema, is removed
//   - a missing description is set to the empty string
//
// Cleanup is idempotent. Convert runs it after the whole tree is walked.
func Cleanup(doc *openapi.Document) {
	doc.Operations(func(_, _ string, op *openapi.Operation) {
		if len(op.Parameters) == 0 {
			op.Parameters = nil
		}
		if degenerateBody(op.RequestBody) {
			op.RequestBody = nil
		}
		if op.Description == nil {
			empty := ""
			op.Description = &empty
		}
	})
}

func degenerateBody(body *openapi.RequestBody) bool {
	if body == nil {
		return false
	}
	if len(body.Content) == 0 {
		return true
	}
	if len(body.Content) != 1 {
		return false
	}
	text, ok := body.Content[mediaText]
	return ok && (text == nil || text.Schema.IsEmpty())
}
