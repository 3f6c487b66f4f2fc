package splitter

import "golang.org/x/net/html"

// DecodeEntities replaces named and numeric HTML character references with
// the characters they stand for. Unknown or malformed references are left
// as they are.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}
