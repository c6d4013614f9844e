package registry

import (
	"regexp"

	"github.com/abdul-hamid-achik/mimetypes/mimetype"
)

type queryKind int

const (
	queryExact queryKind = iota
	queryPattern
	queryType
)

// Query names the candidate set for Resolve. It is a closed variant: a
// content-type string, a pattern over simplified forms, or a definition
// itself.
type Query struct {
	kind    queryKind
	exact   string
	pattern *regexp.Regexp
	typ     *mimetype.Type
}

// Exact selects the one variant bucket named by the simplified form of s.
func Exact(s string) Query {
	return Query{kind: queryExact, exact: s}
}

// Match selects the union of all variant buckets whose simplified form
// matches the pattern.
func Match(pattern *regexp.Regexp) Query {
	return Query{kind: queryPattern, pattern: pattern}
}

// Of selects exactly the given definition.
func Of(t *mimetype.Type) Query {
	return Query{kind: queryType, typ: t}
}
