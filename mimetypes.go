// Package mimetypes ties the embedded media-type corpus to the registry and
// holds the optional process-wide default handle.
//
// The default handle is constructed explicitly by Init at process start;
// nothing is built lazily behind the caller's back. Programs that want
// their own lifecycle use Load and pass the returned registry around.
package mimetypes

import (
	"bytes"
	"errors"

	"github.com/abdul-hamid-achik/mimetypes/mimetype"
	"github.com/abdul-hamid-achik/mimetypes/registry"
	"github.com/abdul-hamid-achik/mimetypes/registry/data"
)

// CorpusVersion identifies the embedded corpus snapshot.
const CorpusVersion = data.Version

// Load builds a fresh registry populated from the embedded corpus.
func Load(opts ...registry.Option) (*registry.Registry, error) {
	r := registry.New(opts...)
	if err := r.LoadCorpus("mime.types", bytes.NewReader(data.MIMETypes)); err != nil {
		return nil, err
	}
	return r, nil
}

var def *registry.Registry

// Init constructs the process-wide default registry. It is meant to be
// called once at startup; a second call is an error.
func Init(opts ...registry.Option) error {
	if def != nil {
		return errors.New("mimetypes: default registry already initialized")
	}
	r, err := Load(opts...)
	if err != nil {
		return err
	}
	def = r
	return nil
}

// Default returns the process-wide registry. It panics when Init has not
// been called: the default handle is created explicitly, never on demand.
func Default() *registry.Registry {
	if def == nil {
		panic("mimetypes: Default called before Init")
	}
	return def
}

// Resolve queries the default registry. See registry.Registry.Resolve.
func Resolve(q registry.Query, opts ...registry.ResolveOption) []*mimetype.Type {
	return Default().Resolve(q, opts...)
}

// TypeFor queries the default registry by filename extension.
func TypeFor(filename string, platformOnly bool) []*mimetype.Type {
	return Default().TypeFor(filename, platformOnly)
}

// Register inserts definitions into the default registry.
func Register(types ...*mimetype.Type) {
	Default().Register(types...)
}
