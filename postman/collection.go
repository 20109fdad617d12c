package postman

// Collection is the root of a Postman collection document.
type Collection struct {
	Info     Info        `json:"info"`
	Items    List[Item]  `json:"item"`
	Auth     *Auth       `json:"auth,omitempty"`
	Variable List[Param] `json:"variable,omitempty"`
	Event    List[Event] `json:"event,omitempty"`
}

// Info holds collection metadata.
type Info struct {
	PostmanID   Text        `json:"_postman_id,omitempty"`
	Name        Text        `json:"name"`
	Description Description `json:"description,omitempty"`
	Version     Version     `json:"version,omitempty"`
	Schema      Text        `json:"schema,omitempty"`
}

// Item is either a folder or a request leaf. A node is a folder exactly when
// its "item" field is present, regardless of whether it also has a request.
type Item struct {
	ID          Text           `json:"id,omitempty"`
	Name        Text           `json:"name"`
	Description Description    `json:"description,omitempty"`
	Items       List[Item]     `json:"item,omitempty"`
	Request     *Request       `json:"request,omitempty"`
	Response    List[Response] `json:"response,omitempty"`
	Event       List[Event]    `json:"event,omitempty"`
	Auth        *Auth          `json:"auth,omitempty"`

	// Folder is set during decoding when the "item" key was present.
	Folder bool `json:"-"`
}

// IsFolder reports whether the item is a folder.
func (i *Item) IsFolder() bool {
	return i.Folder || len(i.Items) > 0
}

// Request describes a single HTTP request.
type Request struct {
	Method      Text        `json:"method,omitempty"`
	URL         URL         `json:"url"`
	Header      HeaderList  `json:"header,omitempty"`
	Body        *Body       `json:"body,omitempty"`
	Auth        *Auth       `json:"auth,omitempty"`
	Description Description `json:"description,omitempty"`
}

// Param is a key/value pair as used by query entries, headers, form fields,
// URL path variables and collection variables.
type Param struct {
	Key         Text        `json:"key"`
	Value       Text        `json:"value,omitempty"`
	Description Description `json:"description,omitempty"`
	Disabled    Flag        `json:"disabled,omitempty"`
	// Type is "text" or "file" for form-data fields, and the variable type
	// ("string", "boolean", ...) for collection variables.
	Type Text `json:"type,omitempty"`
	Src  any  `json:"src,omitempty"`
}

// Enabled reports whether the entry takes part in the request.
func (p Param) Enabled() bool {
	return !bool(p.Disabled)
}

// Response is a saved example response attached to a request item.
type Response struct {
	Name   Text       `json:"name,omitempty"`
	Status Text       `json:"status,omitempty"`
	Code   Text       `json:"code,omitempty"`
	Header HeaderList `json:"header,omitempty"`
	Body   Text       `json:"body,omitempty"`
}

// Event is a script attached to a collection, folder or request.
type Event struct {
	Listen Text   `json:"listen"`
	Script Script `json:"script"`
}

// Script holds the source lines of an event script.
type Script struct {
	Type Text  `json:"type,omitempty"`
	Exec Lines `json:"exec,omitempty"`
}
