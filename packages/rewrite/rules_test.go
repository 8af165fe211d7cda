package rewrite

import (
	"testing"

	"github.com/abdul-hamid-achik/pmrewrite/packages/collection"
	"github.com/stretchr/testify/assert"
)

func pathOf(segments ...string) collection.Path {
	p := make(collection.Path, len(segments))
	for i, s := range segments {
		p[i] = collection.NewSegment(s)
	}
	return p
}

func TestRules_ShouldPrefix(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		path     collection.Path
		expected bool
	}{
		{name: "application route", path: pathOf("users", "list"), expected: true},
		{name: "single segment", path: pathOf("orders"), expected: true},
		{name: "excluded health", path: pathOf("health"), expected: false},
		{name: "excluded auth", path: pathOf("auth", "login"), expected: false},
		{name: "excluded graphql", path: pathOf("graphql"), expected: false},
		{name: "excluded debug", path: pathOf("debug", "pprof"), expected: false},
		{name: "already prefixed", path: pathOf("api", "users"), expected: false},
		{name: "excluded only as first segment", path: pathOf("users", "auth"), expected: true},
		{name: "case sensitive", path: pathOf("Auth"), expected: true},
		{name: "empty", path: collection.Path{}, expected: false},
		{name: "nil", path: nil, expected: false},
		{name: "non-string segment", path: collection.Path{{Raw: `"auth"`, Text: "auth", IsString: false}}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rules.ShouldPrefix(tt.path))
		})
	}
}

func TestRules_HostReplacement(t *testing.T) {
	from, to := DefaultRules().hostReplacement()
	assert.Equal(t, "localhost:8080/", from)
	assert.Equal(t, "localhost:8080/api/", to)
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	assert.Equal(t, "api", rules.Prefix)
	assert.Equal(t, []string{"health", "auth", "graphql", "debug"}, rules.ExcludedPaths)
	assert.Equal(t, collection.Header{Key: "Authorization", Value: "Bearer {{token}}", Type: "text"}, rules.AuthHeader)
	assert.Equal(t, collection.Variable{Key: "token", Value: "", Type: "string"}, rules.TokenVariable)
}
