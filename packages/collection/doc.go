// Package collection loads, edits and saves Postman collection documents.
//
// A Document keeps the collection as raw JSON so that fields the rewriter
// never touches survive a load/save cycle unchanged, including key order and
// number literals. Items, requests, URLs, headers and variables are exposed as
// lightweight views over the byte range of their JSON value, so each accessor
// only scans that value. Edits to a request stay with the request until the
// document is flushed, which splices all of them in a single pass. Every
// accessor reads the current state of the document, so a view stays valid
// after edits made through another view and after a flush.
package collection
