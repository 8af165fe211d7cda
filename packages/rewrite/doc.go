// Package rewrite moves the application routes of a Postman collection under
// an API prefix.
//
// For every request whose first path segment is neither excluded nor already
// the prefix, the rewriter prepends the prefix to the path, rewrites the raw
// URL by plain substring replacement of the host, and adds a bearer
// Authorization header when the request has none. Afterwards the collection
// gets a token variable if it lacks one.
//
// Basic usage:
//
//	rw := rewrite.NewRewriter()
//	result, err := rw.RewriteFile("postman_collection.json", "")
package rewrite
