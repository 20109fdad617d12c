package converter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/erraggy/postman2oas/openapi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// assignOperationIDs gives every operation a lower camel case operationId
// derived from its summary (or its method and path when the summary has no
// usable words). Repeated IDs get numeric suffixes in document order.
func assignOperationIDs(doc *openapi.Document) {
	title := cases.Title(language.English)
	lower := cases.Lower(language.English)
	used := make(map[string]int)

	doc.Operations(func(path, method string, op *openapi.Operation) {
		if op.OperationID != "" {
			used[op.OperationID]++
			return
		}
		id := camelCase(title, lower, op.Summary)
		if id == "" {
			id = camelCase(title, lower, method+" "+path)
		}
		base := id
		for used[id] > 0 {
			used[base]++
			id = base + strconv.Itoa(used[base])
		}
		used[id]++
		op.OperationID = id
	})
}

// camelCase joins the letter and digit runs of s as lowerCamelCase.
func camelCase(title, lower cases.Caser, s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lower.String(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}
