package registry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/mimetypes/mimetype"
)

// ParseError reports a corpus line that does not match the record grammar.
// Line is 1-based; Text is the raw line before comment stripping.
type ParseError struct {
	Corpus string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s:%d: malformed media type record %q", e.Corpus, e.Line, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errNoMatch = errors.New("line does not match the record grammar")

// One record per line:
//
//	[*][!][platform:]media/subtype[ @ext,ext][ :encoding][ 'url,url][ =docs]
//
// A leading * marks the type unregistered, ! marks it obsolete, and a bare
// word followed by a colon scopes it to a platform. Everything after the
// media/subtype is optional but ordered.
var recordRe = regexp.MustCompile(
	`^(\*)?(!)?` +
		`(?:(\w+):)?` +
		`([A-Za-z0-9.+-]+/[A-Za-z0-9.+-]*)` +
		`(?:\s+@(\S+))?` +
		`(?:\s+:(\S+))?` +
		`(?:\s+'(\S+))?` +
		`(?:\s+=(.*))?$`)

// Load reads one corpus from r in the record grammar above and inserts the
// parsed definitions. Lines are stripped of #-comments and surrounding
// whitespace first; blank results are skipped. The first malformed line
// aborts the whole load before anything is inserted, so a bad corpus never
// leaves the registry partially populated.
func (r *Registry) Load(reader io.Reader) error {
	return r.LoadCorpus("corpus", reader)
}

// LoadCorpus is Load with a corpus name for error reporting.
func (r *Registry) LoadCorpus(name string, reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	var (
		line    int
		pending []*mimetype.Type
	)
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		text := raw
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		t, err := parseRecord(text)
		if err != nil {
			return &ParseError{Corpus: name, Line: line, Text: raw, Err: err}
		}
		pending = append(pending, t)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	r.Add(pending...)
	return nil
}

func parseRecord(text string) (*mimetype.Type, error) {
	m := recordRe.FindStringSubmatch(text)
	if m == nil {
		return nil, errNoMatch
	}
	t, err := mimetype.New(m[4])
	if err != nil {
		return nil, err
	}
	if m[1] == "*" {
		t.SetRegistered(false)
	}
	if m[2] == "!" {
		t.SetObsolete(true)
	}
	if m[3] != "" {
		if err := t.SetSystem(m[3]); err != nil {
			return nil, err
		}
	}
	if m[5] != "" {
		t.SetExtensions(strings.Split(m[5], ",")...)
	}
	if m[6] != "" {
		if err := t.SetEncoding(m[6]); err != nil {
			return nil, err
		}
	}
	if m[7] != "" {
		t.SetURLs(strings.Split(m[7], ",")...)
	}
	if m[8] != "" {
		t.SetDocs(m[8])
	}
	return t, nil
}
