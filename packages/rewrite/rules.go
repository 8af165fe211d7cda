package rewrite

import (
	"slices"

	"github.com/abdul-hamid-achik/pmrewrite/packages/collection"
)

// Rules controls what the rewriter changes.
type Rules struct {
	// Prefix is inserted as the first path segment.
	Prefix string
	// ExcludedPaths are first segments that are never prefixed.
	ExcludedPaths []string
	// Host is the text in raw URLs that the prefix is inserted after.
	// It must end with a slash.
	Host string
	// AuthHeader is appended to prefixed requests lacking a header with the same key.
	AuthHeader collection.Header
	// TokenVariable is appended to the collection when no variable has its key.
	TokenVariable collection.Variable
}

// DefaultRules returns the rules for a server that mounts everything except
// health, auth, graphql and debug under /api on localhost:8080.
func DefaultRules() Rules {
	return Rules{
		Prefix:        "api",
		ExcludedPaths: []string{"health", "auth", "graphql", "debug"},
		Host:          "localhost:8080/",
		AuthHeader: collection.Header{
			Key:   "Authorization",
			Value: "Bearer {{token}}",
			Type:  "text",
		},
		TokenVariable: collection.Variable{
			Key:   "token",
			Value: "",
			Type:  "string",
		},
	}
}

// ShouldPrefix reports whether a request with the given path gets the prefix.
// Empty paths are never prefixed.
func (r Rules) ShouldPrefix(path collection.Path) bool {
	if len(path) == 0 {
		return false
	}
	first := path[0]
	if first.Is(r.Prefix) {
		return false
	}
	return !slices.ContainsFunc(r.ExcludedPaths, first.Is)
}

// hostReplacement returns the substring of raw URLs to replace and its replacement.
func (r Rules) hostReplacement() (string, string) {
	return r.Host, r.Host + r.Prefix + "/"
}
