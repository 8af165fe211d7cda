package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Indent is the indentation used when a document is encoded for saving.
const Indent = "    "

// Document is a Postman collection held as raw JSON. Edits made through the
// item views are collected per request and spliced into the source in one
// pass by the next Bytes, Encode or collection-level edit.
type Document struct {
	src   string
	edits map[int]edit
	gen   int
}

// Parse validates data and wraps it in a Document. The root must be an object.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: collection root is not an object", ErrInvalidJSON)
	}
	return &Document{src: string(data), edits: make(map[int]edit)}, nil
}

// Load reads and parses the collection at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Bytes returns the current raw JSON of the document.
func (d *Document) Bytes() []byte {
	d.flush()
	return []byte(d.src)
}

// Encode returns the document pretty-printed with four-space indentation.
// Arrays are always expanded one element per line and key order is kept.
// Strings written by the rewrite keep non-ASCII text as UTF-8 rather than
// \uXXXX escapes; untouched strings keep whatever form they had.
func (d *Document) Encode() []byte {
	out := pretty.PrettyOptions(d.Bytes(), &pretty.Options{Indent: Indent})
	return bytes.TrimRight(out, "\n")
}

// Save writes the encoded document to path, replacing any existing file.
func (d *Document) Save(path string) error {
	if err := os.WriteFile(path, d.Encode(), 0644); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}
	return nil
}

// Items returns the root item sequence, which every collection must have.
func (d *Document) Items() ([]Item, error) {
	items, ok, err := d.rootNode().items()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, missing("", "item")
	}
	return items, nil
}

// Variables returns the collection variables. ok is false when the
// collection has no variable field.
func (d *Document) Variables() (vars []Variable, ok bool, err error) {
	res := d.rootNode().get("variable")
	if !res.Exists() {
		return nil, false, nil
	}
	if !res.IsArray() {
		return nil, true, wrongType("", "variable", "array")
	}

	for i, v := range res.Array() {
		if !v.IsObject() {
			return nil, true, wrongType(index("variable", i), "", "object")
		}
		vars = append(vars, Variable{
			Key:   stringField(v, "key"),
			Value: v.Get("value").String(),
			Type:  stringField(v, "type"),
		})
	}
	return vars, true, nil
}

// EnsureVariables creates an empty variable sequence when the collection has
// none. It reports whether the field was created.
func (d *Document) EnsureVariables() (bool, error) {
	root := d.rootNode()
	if root.get("variable").Exists() {
		return false, nil
	}
	return true, root.setRaw("variable", "[]")
}

// AppendVariable adds v to the end of the variable sequence.
func (d *Document) AppendVariable(v Variable) error {
	return d.rootNode().appendValue("variable", v)
}

// flush splices the pending edits into the source. Edited nodes never
// overlap: only requests are edited this way and requests do not nest.
func (d *Document) flush() {
	if len(d.edits) == 0 {
		return
	}

	starts := make([]int, 0, len(d.edits))
	for start := range d.edits {
		starts = append(starts, start)
	}
	slices.Sort(starts)
	var b strings.Builder
	b.Grow(len(d.src))
	prev := 0
	for _, start := range starts {
		e := d.edits[start]
		b.WriteString(d.src[prev:start])
		b.WriteString(e.raw)
		prev = e.end
	}
	b.WriteString(d.src[prev:])

	d.src = b.String()
	clear(d.edits)
	d.gen++
}

// marshal encodes v without HTML escaping so URLs keep their '&' and '<'.
func marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func stringField(obj gjson.Result, key string) string {
	v := obj.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

func join(loc, key string) string {
	if loc == "" {
		return key
	}
	return loc + "." + key
}

func index(loc string, i int) string {
	return join(loc, strconv.Itoa(i))
}
