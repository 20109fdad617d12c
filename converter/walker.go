package converter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/postman2oas/internal/pathutil"
	"github.com/erraggy/postman2oas/oaserrors"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// scope is the context accumulated while descending the item tree. Values
// are copied into children; a child never modifies its parent's scope.
type scope struct {
	segments []string
	tag      string
	auth     *postman.Auth
	authLoc  string
	depth    int
}

// child returns the scope for the items of folder, located at loc.
func (s scope) child(folder *postman.Item, loc string, folderSegments bool) scope {
	next := s
	next.depth++
	if folderSegments {
		next.segments = append(slices.Clip(s.segments), pathutil.Translate(string(folder.Name)))
	}
	if s.tag == "" && s.depth == 1 {
		next.tag = string(folder.Name)
	}
	if folder.Auth != nil && !isInherit(folder.Auth) {
		next.auth = folder.Auth
		next.authLoc = loc + ".auth"
	}
	return next
}

// routedOperation is one operation and the path and method it belongs to.
type routedOperation struct {
	path   string
	method string
	op     *openapi.Operation
	loc    string
	// scheme is registered only if op is attached
	scheme *namedScheme
}

// namedScheme is a security scheme an operation depends on.
type namedScheme struct {
	name   string
	scheme *openapi.SecurityScheme
	loc    string
}

// fragment is the contribution of one branch of the item tree. Fragments are
// built bottom-up and merged into the document only by mergeFragment.
type fragment struct {
	operations []routedOperation
	tags       []openapi.Tag
	issues     []ConversionIssue
	folders    int
	requests   int
	skipped    int
}

func (f *fragment) append(other fragment) {
	f.operations = append(f.operations, other.operations...)
	f.tags = append(f.tags, other.tags...)
	f.issues = append(f.issues, other.issues...)
	f.folders += other.folders
	f.requests += other.requests
	f.skipped += other.skipped
}

func (f *fragment) addIssue(path, message string, sev Severity) {
	f.issues = append(f.issues, ConversionIssue{Path: path, Message: message, Severity: sev})
}

// walker descends the item tree. It holds only configuration, so one walker
// can serve a whole conversion.
type walker struct {
	folderSegments bool
	maxDepth       int
	logger         Logger
}

// walk converts items, in order, into a fragment. loc is the location of the
// item array (e.g., "item" or "item[2].item").
func (w *walker) walk(items postman.List[postman.Item], sc scope, loc string) (fragment, error) {
	var frag fragment
	if sc.depth > w.maxDepth {
		return frag, &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(w.maxDepth),
			Actual:       int64(sc.depth),
			Message:      fmt.Sprintf("folders nested too deeply at %s", loc),
		}
	}

	for i := range items {
		item := &items[i]
		itemLoc := fmt.Sprintf("%s[%d]", loc, i)

		if item.IsFolder() {
			child, err := w.walkFolder(item, sc, itemLoc)
			if err != nil {
				return fragment{}, err
			}
			frag.append(child)
			continue
		}
		frag.append(w.walkLeaf(item, sc, itemLoc))
	}
	return frag, nil
}

func (w *walker) walkFolder(folder *postman.Item, sc scope, loc string) (fragment, error) {
	w.logger.Debug("entering folder", "folder", string(folder.Name), "depth", sc.depth)

	inner := sc.child(folder, loc, w.folderSegments)
	frag, err := w.walk(folder.Items, inner, loc+".item")
	if err != nil {
		return fragment{}, err
	}
	frag.folders++

	if len(folder.Items) == 0 {
		frag.addIssue(loc, fmt.Sprintf("folder %q is empty", folder.Name), SeverityInfo)
		return frag, nil
	}
	if sc.depth == 1 && len(frag.operations) > 0 {
		tag := openapi.Tag{Name: string(folder.Name), Description: string(folder.Description)}
		frag.tags = append([]openapi.Tag{tag}, frag.tags...)
	}
	return frag, nil
}

func (w *walker) walkLeaf(item *postman.Item, sc scope, loc string) fragment {
	var frag fragment
	frag.requests++

	req := item.Request
	if req == nil {
		frag.skipped++
		frag.addIssue(loc, fmt.Sprintf("item %q has no request; skipped", item.Name), SeverityInfo)
		return frag
	}

	method := strings.ToUpper(strings.TrimSpace(string(req.Method)))
	if method == "" {
		method = "GET"
		frag.addIssue(loc+".request.method", "method missing; defaulted to GET", SeverityInfo)
	}
	if !openapi.IsMethod(method) {
		frag.skipped++
		frag.addIssue(loc+".request.method",
			fmt.Sprintf("method %s cannot be represented in OpenAPI 3.0; request skipped", method),
			SeverityWarning)
		return frag
	}

	path, ok := w.pathTemplate(sc.segments, req.URL)
	if !ok {
		frag.addIssue(loc+".request.url",
			fmt.Sprintf("malformed URL %q; raw string used as path", req.URL.Raw),
			SeverityWarning)
	}

	op := &openapi.Operation{Summary: string(item.Name)}
	if sc.tag != "" {
		op.Tags = []string{sc.tag}
	}
	if desc := firstDescription(req.Description, item.Description); desc != "" {
		op.Description = &desc
	}

	params, paramIssues := mapParameters(req, path, loc+".request")
	op.Parameters = params
	frag.issues = append(frag.issues, paramIssues...)

	body, note := mapBody(req.Body, req.Header)
	op.RequestBody = body
	if note != "" {
		frag.addIssue(loc+".request.body", note, SeverityWarning)
	}

	op.Responses = mapResponses(item)

	var scheme *namedScheme
	auth := sc.auth
	authLoc := sc.authLoc
	if req.Auth != nil && !isInherit(req.Auth) {
		auth = req.Auth
		authLoc = loc + ".request.auth"
	}
	if auth != nil {
		resolved := resolveAuth(decodeAuth(auth))
		op.Security = updateSecurity(op.Security, resolved.requirement)
		if resolved.scheme != nil {
			scheme = &namedScheme{name: resolved.name, scheme: resolved.scheme, loc: authLoc}
		}
		if resolved.note != "" {
			frag.addIssue(authLoc, resolved.note, resolved.severity)
		}
	}

	frag.operations = append(frag.operations, routedOperation{
		path:   path,
		method: strings.ToLower(method),
		op:     op,
		loc:    loc,
		scheme: scheme,
	})
	return frag
}

// pathTemplate builds the OpenAPI path for a request from the enclosing
// folder segments and the URL path. It reports false when the URL could not
// be split and the raw string was used instead.
func (w *walker) pathTemplate(folders []string, u postman.URL) (string, bool) {
	segments := slices.Clone(folders)
	if u.Malformed {
		return pathutil.Join(append(segments, pathutil.Translate(rawPath(string(u.Raw))))...), false
	}
	for _, seg := range u.Path {
		segments = append(segments, pathutil.TranslateSegment(seg))
	}
	return pathutil.Join(segments...), true
}

// rawPath returns the path part of a URL that could not be parsed. The
// scheme, the authority (everything before the first "/", as in
// postman.ParseURL), the query and the fragment are cut.
func rawPath(raw string) string {
	raw = strings.TrimSpace(raw)
	raw, _, _ = strings.Cut(raw, "#")
	raw, _, _ = strings.Cut(raw, "?")
	if _, rest, found := strings.Cut(raw, "://"); found {
		raw = rest
	}
	if strings.HasPrefix(raw, "/") {
		return raw
	}
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		return raw[i:]
	}
	return ""
}

func firstDescription(values ...postman.Description) string {
	for _, v := range values {
		if s := strings.TrimSpace(string(v)); s != "" {
			return string(v)
		}
	}
	return ""
}

func isInherit(a *postman.Auth) bool {
	return strings.EqualFold(strings.TrimSpace(string(a.Type)), authTypeInherit)
}

// mergeFragment attaches a walked fragment to the document: operations are
// added to their path items in order, the scheme of each attached operation is
// merged by name and tags are de-duplicated. Conflicts keep the first
// definition and are reported.
func mergeFragment(doc *openapi.Document, frag fragment, result *ConversionResult) {
	result.Issues = append(result.Issues, frag.issues...)
	result.Stats.Folders += frag.folders
	result.Stats.Requests += frag.requests
	result.Stats.Skipped += frag.skipped

	for _, r := range frag.operations {
		item := doc.Paths.Get(r.path)
		if item == nil {
			item = &openapi.PathItem{}
			doc.Paths.Set(r.path, item)
		}
		if !item.SetOperation(r.method, r.op) {
			result.Stats.Skipped++
			result.Issues = append(result.Issues, ConversionIssue{
				Path:     r.loc,
				Message:  fmt.Sprintf("duplicate operation %s %s; first definition kept", strings.ToUpper(r.method), r.path),
				Severity: SeverityWarning,
			})
			continue
		}
		if s := r.scheme; s != nil && setScheme(doc, s.name, s.scheme) {
			result.Issues = append(result.Issues, ConversionIssue{
				Path:     s.loc,
				Message:  fmt.Sprintf("security scheme %q already defined differently; first definition kept", s.name),
				Severity: SeverityWarning,
			})
		}
	}

	seen := make(map[string]bool, len(doc.Tags))
	for _, t := range doc.Tags {
		seen[t.Name] = true
	}
	for _, t := range frag.tags {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		doc.Tags = append(doc.Tags, t)
	}
}
