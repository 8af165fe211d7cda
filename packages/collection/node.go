package collection

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// node is a JSON value inside a Document, addressed by its byte range in the
// document source. Reads only scan the node itself. Edits are kept as a
// rewritten copy of the node until the document is flushed.
type node struct {
	doc   *Document
	loc   string
	start int
	end   int
	gen   int
}

// edit replaces src[start:end] with raw, start being the map key.
type edit struct {
	end int
	raw string
}

func (d *Document) rootNode() *node {
	return &node{doc: d, start: 0, end: len(d.src), gen: d.gen}
}

// child returns the node of res, a value read from n. Offsets of res are
// relative to n, so n must not hold edits of its own.
func (n *node) child(loc string, res gjson.Result) *node {
	start := n.start + res.Index
	return &node{doc: n.doc, loc: loc, start: start, end: start + len(res.Raw), gen: n.gen}
}

// resolve looks the node up again by location once the document source has
// been rewritten by a flush.
func (n *node) resolve() {
	if n.gen == n.doc.gen {
		return
	}
	if n.loc == "" {
		n.start, n.end = 0, len(n.doc.src)
	} else {
		res := gjson.Get(n.doc.src, n.loc)
		n.start, n.end = res.Index, res.Index+len(res.Raw)
	}
	n.gen = n.doc.gen
}

func (n *node) raw() string {
	n.resolve()
	if e, ok := n.doc.edits[n.start]; ok {
		return e.raw
	}
	return n.doc.src[n.start:n.end]
}

func (n *node) value() gjson.Result {
	return gjson.Parse(n.raw())
}

func (n *node) get(path string) gjson.Result {
	return n.value().Get(path)
}

// setRaw edits n. Edits of the root overlap every other node, so they flush
// the pending edits and rewrite the source directly.
func (n *node) setRaw(path, raw string) error {
	if n.loc == "" {
		n.doc.flush()
	}
	out, err := sjson.SetRaw(n.raw(), path, raw)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", join(n.loc, path), err)
	}
	if n.loc == "" {
		n.doc.src = out
		n.doc.gen++
		return nil
	}
	n.doc.edits[n.start] = edit{end: n.end, raw: out}
	return nil
}

func (n *node) setValue(path string, v any) error {
	raw, err := marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", join(n.loc, path), err)
	}
	return n.setRaw(path, raw)
}

// appendValue adds v to the end of the array field of n.
func (n *node) appendValue(field string, v any) error {
	res := n.get(field)
	if !res.Exists() {
		return missing(n.loc, field)
	}
	if !res.IsArray() {
		return wrongType(n.loc, field, "array")
	}
	return n.setValue(field+".-1", v)
}

// items returns the item sequence of n. ok is false when n has no item field.
func (n *node) items() ([]Item, bool, error) {
	res := n.get("item")
	if !res.Exists() {
		return nil, false, nil
	}
	if !res.IsArray() {
		return nil, true, wrongType(n.loc, "item", "array")
	}

	loc := join(n.loc, "item")
	elems := res.Array()
	items := make([]Item, len(elems))
	for i, e := range elems {
		items[i] = Item{n: n.child(index(loc, i), e)}
	}
	return items, true, nil
}
