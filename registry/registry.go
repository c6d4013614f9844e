// Package registry keeps media-type definitions in two in-memory indices,
// one by simplified type and one by file extension, and answers lookups by
// string, pattern, or filename.
package registry

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/abdul-hamid-achik/mimetypes/mimetype"
)

// Registry indexes media-type definitions by simplified form ("variant
// index") and by file extension ("extension index"). Both indices are
// guarded by one lock so an insertion is observed atomically: a reader
// never sees a variant entry without its extension entries.
type Registry struct {
	mu          sync.RWMutex
	variants    map[string][]*mimetype.Type
	extensions  map[string][]*mimetype.Type
	count       int
	log         *slog.Logger
	onDuplicate func(*mimetype.Type)
}

type Option func(*Registry)

// WithLogger sets the logger used for duplicate diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

// WithDuplicateHandler routes duplicate diagnostics to fn instead of the
// logger. The duplicate is still inserted.
func WithDuplicateHandler(fn func(*mimetype.Type)) Option {
	return func(r *Registry) {
		r.onDuplicate = fn
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{
		variants:   make(map[string][]*mimetype.Type),
		extensions: make(map[string][]*mimetype.Type),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add inserts definitions into both indices. Duplicates (same content type
// under the registry's equality contract, already present in the variant
// bucket) emit a non-fatal diagnostic and are inserted anyway.
func (r *Registry) Add(types ...*mimetype.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range types {
		r.insert(t)
	}
}

// Register is the public registration entry point; it is Add by another
// name.
func (r *Registry) Register(types ...*mimetype.Type) {
	r.Add(types...)
}

// insert requires r.mu to be held for writing.
func (r *Registry) insert(t *mimetype.Type) {
	key := t.Simplified()
	for _, existing := range r.variants[key] {
		if existing.Equal(t) {
			if r.onDuplicate != nil {
				r.onDuplicate(t)
			} else {
				r.log.Warn("duplicate media type registered",
					"content_type", t.ContentType())
			}
			break
		}
	}
	r.variants[key] = append(r.variants[key], t)
	for _, ext := range t.Extensions() {
		k := strings.ToLower(ext)
		r.extensions[k] = append(r.extensions[k], t)
	}
	r.count++
}

// Count returns the number of definitions inserted so far.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

type resolveOptions struct {
	complete bool
	platform bool
}

type ResolveOption func(*resolveOptions)

// WithComplete drops definitions without file extensions from the result.
func WithComplete() ResolveOption {
	return func(o *resolveOptions) {
		o.complete = true
	}
}

// WithPlatform drops definitions not scoped to the current platform.
func WithPlatform() ResolveOption {
	return func(o *resolveOptions) {
		o.platform = true
	}
}

// Resolve selects the candidate set named by the query, applies the option
// filters, and returns it sorted most-preferred first. It is total: an
// unknown or malformed identifier yields an empty list, never an error.
func (r *Registry) Resolve(q Query, opts ...ResolveOption) []*mimetype.Type {
	var o resolveOptions
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.RLock()
	var candidates []*mimetype.Type
	switch q.kind {
	case queryType:
		if q.typ != nil {
			candidates = []*mimetype.Type{q.typ}
		}
	case queryPattern:
		for key, bucket := range r.variants {
			if q.pattern.MatchString(key) {
				candidates = append(candidates, bucket...)
			}
		}
	case queryExact:
		if simplified, ok := mimetype.Simplify(q.exact); ok {
			candidates = append(candidates, r.variants[simplified]...)
		}
	}
	r.mu.RUnlock()

	out := make([]*mimetype.Type, 0, len(candidates))
	for _, t := range candidates {
		if o.complete && !t.Complete() {
			continue
		}
		if o.platform && !t.Platform() {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority(out[j]) < 0
	})
	return out
}

// TypeFor returns the definitions declaring the extension of filename: the
// lowercased substring after the last dot, or the whole name when there is
// no dot. The result keeps extension-index insertion order and is not
// priority-sorted, unlike Resolve.
func (r *Registry) TypeFor(filename string, platformOnly bool) []*mimetype.Type {
	ext := filename
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = filename[i+1:]
	}
	ext = strings.ToLower(ext)

	r.mu.RLock()
	defer r.mu.RUnlock()
	bucket := r.extensions[ext]
	out := make([]*mimetype.Type, 0, len(bucket))
	for _, t := range bucket {
		if platformOnly && !t.Platform() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// OfFilename is an alias for TypeFor.
func (r *Registry) OfFilename(filename string, platformOnly bool) []*mimetype.Type {
	return r.TypeFor(filename, platformOnly)
}
