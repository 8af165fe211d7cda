package rewrite

import (
	"fmt"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/pmrewrite/packages/collection"
)

// DefaultCollectionFile is used when no collection path is given.
const DefaultCollectionFile = "postman_collection.json"

// Rewriter applies Rules to Postman collections.
type Rewriter struct {
	rules Rules
}

// Option is a functional option for Rewriter.
type Option func(*Rewriter)

// WithRules replaces the default rules.
func WithRules(rules Rules) Option {
	return func(rw *Rewriter) {
		rw.rules = rules
	}
}

// NewRewriter creates a rewriter using DefaultRules unless overridden.
func NewRewriter(opts ...Option) *Rewriter {
	rw := &Rewriter{
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(rw)
	}
	return rw
}

// RewriteFile loads the collection at path, rewrites it and saves it to
// output, or back to path when output is empty. Nothing is written unless
// the whole rewrite succeeds.
func (rw *Rewriter) RewriteFile(path, output string) (*Result, error) {
	if path == "" {
		path = DefaultCollectionFile
	}
	if output == "" {
		output = path
	}

	doc, err := collection.Load(path)
	if err != nil {
		return nil, err
	}

	result, err := rw.Rewrite(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}
	result.File = path
	result.Output = output

	if err := doc.Save(output); err != nil {
		return nil, err
	}
	return result, nil
}

// Rewrite updates every item below the root and then ensures the token
// variable. The root itself is never treated as a request.
func (rw *Rewriter) Rewrite(doc *collection.Document) (*Result, error) {
	start := time.Now()
	result := &Result{}

	items, err := doc.Items()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := rw.updateItem(item, result); err != nil {
			return nil, err
		}
	}

	if _, err := rw.ensureTokenVariable(doc, result); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

// UpdateItem rewrites item and, depth-first, everything nested below it.
func (rw *Rewriter) UpdateItem(item collection.Item) (*Result, error) {
	result := &Result{}
	if err := rw.updateItem(item, result); err != nil {
		return nil, err
	}
	return result, nil
}

// EnsureTokenVariable appends the token variable unless a variable with its
// key already exists. It reports whether the variable was added.
func (rw *Rewriter) EnsureTokenVariable(doc *collection.Document) (bool, error) {
	return rw.ensureTokenVariable(doc, &Result{})
}

func (rw *Rewriter) updateItem(item collection.Item, result *Result) error {
	result.Items++

	req, err := item.Request()
	if err != nil {
		return err
	}
	if req != nil {
		result.Requests++
		if err := rw.updateRequest(item, req, result); err != nil {
			return err
		}
	}

	children, _, err := item.Items()
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := rw.updateItem(child, result); err != nil {
			return err
		}
	}
	return nil
}

func (rw *Rewriter) updateRequest(item collection.Item, req *collection.Request, result *Result) error {
	url, err := req.URL()
	if err != nil {
		return err
	}
	path, err := url.Path()
	if err != nil {
		return err
	}
	if !rw.rules.ShouldPrefix(path) {
		return nil
	}

	prefixed := path.Prepend(rw.rules.Prefix)
	if err := url.SetPath(prefixed); err != nil {
		return err
	}

	raw, err := url.Raw()
	if err != nil {
		return err
	}
	oldHost, newHost := rw.rules.hostReplacement()
	newRaw := strings.ReplaceAll(raw, oldHost, newHost)
	if err := url.SetRaw(newRaw); err != nil {
		return err
	}

	result.add(Change{
		Kind:     ChangePrefixed,
		Location: item.Location(),
		Name:     item.Name(),
		Method:   req.Method(),
		Before:   path.String(),
		After:    prefixed.String(),
	})

	if _, err := req.EnsureHeaders(); err != nil {
		return err
	}
	has, err := req.HasHeader(rw.rules.AuthHeader.Key)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	if err := req.AppendHeader(rw.rules.AuthHeader); err != nil {
		return err
	}

	result.add(Change{
		Kind:     ChangeHeaderAdded,
		Location: req.Location(),
		Name:     item.Name(),
		Method:   req.Method(),
		After:    rw.rules.AuthHeader.Key + ": " + rw.rules.AuthHeader.Value,
	})
	return nil
}

func (rw *Rewriter) ensureTokenVariable(doc *collection.Document, result *Result) (bool, error) {
	if _, err := doc.EnsureVariables(); err != nil {
		return false, err
	}

	vars, _, err := doc.Variables()
	if err != nil {
		return false, err
	}
	for _, v := range vars {
		if v.Key == rw.rules.TokenVariable.Key {
			return false, nil
		}
	}

	if err := doc.AppendVariable(rw.rules.TokenVariable); err != nil {
		return false, err
	}

	result.add(Change{
		Kind:     ChangeVariableAdded,
		Location: "variable",
		Name:     rw.rules.TokenVariable.Key,
		After:    rw.rules.TokenVariable.Key + " (" + rw.rules.TokenVariable.Type + ")",
	})
	return true, nil
}
