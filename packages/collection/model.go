package collection

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Header is a request header entry.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Variable is a collection variable entry.
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Item is an entry of an item sequence. It can be a folder, a request, or
// (in malformed input) both.
type Item struct {
	n *node
}

// Location returns the JSON path of the item inside the document.
func (it Item) Location() string {
	return it.n.loc
}

// Name returns the item's display name, or an empty string.
func (it Item) Name() string {
	return stringField(it.n.value(), "name")
}

// Request returns the item's request, or nil when the item has none.
func (it Item) Request() (*Request, error) {
	v := it.n.value()
	if !v.IsObject() {
		return nil, wrongType(it.n.loc, "", "object")
	}
	res := v.Get("request")
	if !res.Exists() {
		return nil, nil
	}
	if !res.IsObject() {
		return nil, wrongType(it.n.loc, "request", "object")
	}
	return &Request{n: it.n.child(join(it.n.loc, "request"), res)}, nil
}

// Items returns the nested items of a folder. ok is false when the item has
// no item field.
func (it Item) Items() (items []Item, ok bool, err error) {
	if !it.n.value().IsObject() {
		return nil, false, wrongType(it.n.loc, "", "object")
	}
	return it.n.items()
}

// Request is the request part of an item.
type Request struct {
	n *node
}

// Location returns the JSON path of the request inside the document.
func (r Request) Location() string {
	return r.n.loc
}

// Method returns the HTTP method, or an empty string.
func (r Request) Method() string {
	return stringField(r.n.value(), "method")
}

// URL returns the request URL. A request without one is malformed.
func (r Request) URL() (*URL, error) {
	res := r.n.get("url")
	if !res.Exists() {
		return nil, missing(r.n.loc, "url")
	}
	if !res.IsObject() {
		return nil, wrongType(r.n.loc, "url", "object")
	}
	return &URL{req: r.n}, nil
}

// Headers returns the request headers. ok is false when the request has no
// header field.
func (r Request) Headers() (headers []Header, ok bool, err error) {
	res := r.n.get("header")
	if !res.Exists() {
		return nil, false, nil
	}
	if !res.IsArray() {
		return nil, true, wrongType(r.n.loc, "header", "array")
	}

	loc := join(r.n.loc, "header")
	for i, h := range res.Array() {
		if !h.IsObject() {
			return nil, true, wrongType(index(loc, i), "", "object")
		}
		headers = append(headers, Header{
			Key:   stringField(h, "key"),
			Value: h.Get("value").String(),
			Type:  stringField(h, "type"),
		})
	}
	return headers, true, nil
}

// HasHeader reports whether any header has exactly the given key.
func (r Request) HasHeader(key string) (bool, error) {
	headers, _, err := r.Headers()
	if err != nil {
		return false, err
	}
	for _, h := range headers {
		if h.Key == key {
			return true, nil
		}
	}
	return false, nil
}

// EnsureHeaders creates an empty header sequence when the request has none.
// It reports whether the field was created.
func (r Request) EnsureHeaders() (bool, error) {
	if r.n.get("header").Exists() {
		return false, nil
	}
	return true, r.n.setRaw("header", "[]")
}

// AppendHeader adds h to the end of the header sequence.
func (r Request) AppendHeader(h Header) error {
	return r.n.appendValue("header", h)
}

// URL is the structured URL of a request. It reads and edits through the
// request so all edits of one request land in the same node.
type URL struct {
	req *node
}

// Location returns the JSON path of the URL inside the document.
func (u URL) Location() string {
	return join(u.req.loc, "url")
}

// Path returns the path segments. An absent or null path is empty.
func (u URL) Path() (Path, error) {
	res := u.req.get("url.path")
	if !res.Exists() || res.Type == gjson.Null {
		return nil, nil
	}
	if !res.IsArray() {
		return nil, wrongType(u.Location(), "path", "array")
	}

	elems := res.Array()
	path := make(Path, len(elems))
	for i, e := range elems {
		path[i] = Segment{Raw: e.Raw, Text: e.String(), IsString: e.Type == gjson.String}
	}
	return path, nil
}

// SetPath replaces the path with p.
func (u URL) SetPath(p Path) error {
	return u.req.setRaw("url.path", p.raw())
}

// Raw returns the full URL string.
func (u URL) Raw() (string, error) {
	res := u.req.get("url.raw")
	if !res.Exists() {
		return "", missing(u.Location(), "raw")
	}
	if res.Type != gjson.String {
		return "", wrongType(u.Location(), "raw", "string")
	}
	return res.Str, nil
}

// SetRaw replaces the full URL string.
func (u URL) SetRaw(raw string) error {
	return u.req.setValue("url.raw", raw)
}

// Segment is one URL path segment. Raw holds the JSON as found in the
// document so segments that are not strings are written back untouched.
type Segment struct {
	Raw      string
	Text     string
	IsString bool
}

// NewSegment returns a string segment.
func NewSegment(s string) Segment {
	raw, _ := marshal(s)
	return Segment{Raw: raw, Text: s, IsString: true}
}

// Is reports whether the segment is the string s.
func (s Segment) Is(text string) bool {
	return s.IsString && s.Text == text
}

// Path is an ordered list of URL path segments.
type Path []Segment

// Prepend returns a new path with s as the first segment.
func (p Path) Prepend(s string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, NewSegment(s))
	return append(out, p...)
}

// Strings returns the text of every segment.
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.Text
	}
	return out
}

func (p Path) String() string {
	return "/" + strings.Join(p.Strings(), "/")
}

func (p Path) raw() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.Raw
	}
	return "[" + strings.Join(parts, ",") + "]"
}
