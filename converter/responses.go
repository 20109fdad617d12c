package converter

import (
	"mime"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

const defaultResponseDescription = "Successful response"

// statusAssertion matches status checks in Postman test scripts:
// pm.response.to.have.status(201) and pm.expect(pm.response.code).to.eql(201).
var statusAssertion = regexp.MustCompile(
	`pm\.response\.to\.have\.status\(\s*(\d{3})\s*\)|pm\.expect\(\s*pm\.response\.code\s*\)\.to\.(?:eql|equal|be)\(\s*(\d{3})\s*\)`)

// mapResponses builds the responses of an operation from the item's saved
// examples, falling back to a status code asserted in its test script, then
// to 200.
func mapResponses(item *postman.Item) map[string]*openapi.Response {
	out := make(map[string]*openapi.Response)
	for _, saved := range item.Response {
		code := responseCode(saved)
		if _, ok := out[code]; ok {
			continue
		}
		out[code] = savedResponse(saved, code)
	}
	if len(out) > 0 {
		return out
	}

	code := "200"
	if asserted, ok := assertedStatus(item.Event); ok {
		code = asserted
	}
	out[code] = &openapi.Response{Description: defaultResponseDescription}
	return out
}

func responseCode(r postman.Response) string {
	if n, err := strconv.Atoi(strings.TrimSpace(string(r.Code))); err == nil && n >= 100 && n <= 599 {
		return strconv.Itoa(n)
	}
	return "200"
}

func savedResponse(r postman.Response, code string) *openapi.Response {
	resp := &openapi.Response{Description: responseDescription(r, code)}

	for _, h := range r.Header {
		name := strings.TrimSpace(string(h.Key))
		if !h.Enabled() || name == "" || strings.EqualFold(name, "Content-Type") {
			continue
		}
		if resp.Headers == nil {
			resp.Headers = make(map[string]*openapi.Header)
		}
		if _, dup := resp.Headers[name]; dup {
			continue
		}
		schema, example := scalarSchema(string(h.Value))
		resp.Headers[name] = &openapi.Header{Schema: schema, Example: example}
	}

	body := strings.TrimSpace(string(r.Body))
	if body == "" {
		return resp
	}
	media := ""
	if ct, ok := r.Header.Get("Content-Type"); ok {
		if parsed, _, err := mime.ParseMediaType(ct); err == nil {
			media = parsed
		}
	}
	isJSON := media == mediaJSON || strings.HasSuffix(media, "+json")
	if media == "" {
		if strings.HasPrefix(body, "{") || strings.HasPrefix(body, "[") {
			media, isJSON = mediaJSON, true
		} else {
			media = mediaText
		}
	}

	var mt *openapi.MediaType
	if isJSON {
		mt = jsonMediaType(body)
	} else {
		mt = &openapi.MediaType{Schema: &openapi.Schema{Type: "string"}, Example: string(r.Body)}
	}
	resp.Content = map[string]*openapi.MediaType{media: mt}
	return resp
}

func responseDescription(r postman.Response, code string) string {
	if name := strings.TrimSpace(string(r.Name)); name != "" {
		return name
	}
	if status := strings.TrimSpace(string(r.Status)); status != "" {
		return status
	}
	n, _ := strconv.Atoi(code)
	if text := http.StatusText(n); text != "" {
		return text
	}
	return defaultResponseDescription
}

// assertedStatus returns the first status code asserted by a test script.
func assertedStatus(events postman.List[postman.Event]) (string, bool) {
	for _, ev := range events {
		if !strings.EqualFold(string(ev.Listen), "test") {
			continue
		}
		for _, line := range ev.Script.Exec {
			m := statusAssertion.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if m[1] != "" {
				return m[1], true
			}
			return m[2], true
		}
	}
	return "", false
}
