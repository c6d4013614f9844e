// Package mimetype models a single media-type ("MIME type") record: its
// identity, descriptive attributes, classification predicates, and the
// priority ordering used to rank definitions that share a simplified form.
package mimetype

import (
	"regexp"
	"runtime"
	"strings"
)

// Encoding is a content transfer encoding.
type Encoding string

const (
	Encoding7Bit            Encoding = "7bit"
	Encoding8Bit            Encoding = "8bit"
	EncodingQuotedPrintable Encoding = "quoted-printable"
	EncodingBase64          Encoding = "base64"

	// EncodingDefault resolves to quoted-printable for text types and
	// base64 for everything else.
	EncodingDefault Encoding = "default"
)

var (
	typeRe       = regexp.MustCompile(`^([A-Za-z0-9.+-]+)/([A-Za-z0-9.+-]*)$`)
	useInsteadRe = regexp.MustCompile(`use-instead:([A-Za-z0-9.+-]+/[A-Za-z0-9.+-]+)`)
)

// Types whose payload is a cryptographic signature or key rather than
// ordinary content.
var signatureTypes = map[string]bool{
	"application/pgp":             true,
	"application/pgp-keys":        true,
	"application/pgp-signature":   true,
	"application/pkcs10":          true,
	"application/pkcs7-mime":      true,
	"application/pkcs7-signature": true,
	"text/vcard":                  true,
}

// platformID identifies the current runtime for platform-scoped types.
var platformID = runtime.GOOS

// SetPlatformID overrides the platform identifier used by Type.Platform.
// Intended for tests and tools that inspect another platform's records.
// It returns the previous identifier.
func SetPlatformID(id string) string {
	prev := platformID
	platformID = id
	return prev
}

// Type is one media-type definition. The identity fields (content type and
// its derived simplified form) are fixed at construction; the descriptive
// attributes may be reassigned afterwards.
type Type struct {
	contentType  string
	rawMediaType string
	rawSubType   string
	simplified   string
	mediaType    string
	subType      string

	extensions []string
	encoding   Encoding
	system     *regexp.Regexp
	registered bool
	obsolete   bool
	useInstead []string
	docs       string
	urls       []string
}

// New constructs a Type from a "media/subtype" string. The media half is
// required; the subtype half may be empty. Returns an *InvalidFormatError
// if the string does not match the grammar.
func New(contentType string) (*Type, error) {
	m := typeRe.FindStringSubmatch(contentType)
	if m == nil {
		return nil, &InvalidFormatError{ContentType: contentType}
	}
	t := &Type{
		contentType:  contentType,
		rawMediaType: m[1],
		rawSubType:   m[2],
		mediaType:    simplifyHalf(m[1]),
		subType:      simplifyHalf(m[2]),
		registered:   true,
	}
	t.simplified = t.mediaType + "/" + t.subType
	t.encoding = t.defaultEncoding()
	return t, nil
}

// MustNew is New for statically known inputs; it panics on a malformed
// content type.
func MustNew(contentType string) *Type {
	t, err := New(contentType)
	if err != nil {
		panic(err)
	}
	return t
}

// Simplify normalizes a content-type string: both halves lowercased, with a
// leading "x-" stripped from each half independently. The boolean is false
// if the input does not match the media-type grammar.
func Simplify(contentType string) (string, bool) {
	m := typeRe.FindStringSubmatch(contentType)
	if m == nil {
		return "", false
	}
	return simplifyHalf(m[1]) + "/" + simplifyHalf(m[2]), true
}

func simplifyHalf(s string) string {
	s = strings.ToLower(s)
	return strings.TrimPrefix(s, "x-")
}

func (t *Type) ContentType() string  { return t.contentType }
func (t *Type) RawMediaType() string { return t.rawMediaType }
func (t *Type) RawSubType() string   { return t.rawSubType }
func (t *Type) Simplified() string   { return t.simplified }
func (t *Type) MediaType() string    { return t.mediaType }
func (t *Type) SubType() string      { return t.subType }
func (t *Type) Encoding() Encoding   { return t.encoding }
func (t *Type) Docs() string         { return t.docs }
func (t *Type) Obsolete() bool       { return t.obsolete }

// Extensions returns the associated file extensions in declaration order.
func (t *Type) Extensions() []string { return t.extensions }

// SetExtensions replaces the extension list. Blank entries are dropped so
// the stored list is always flat and compact; duplicates are kept as given.
func (t *Type) SetExtensions(exts ...string) {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		out = append(out, ext)
	}
	t.extensions = out
}

// SetEncoding assigns the transfer encoding. Empty or "default" resolves to
// quoted-printable for text types and base64 otherwise; the four literal
// encodings are stored as-is; anything else is an *InvalidEncodingError.
func (t *Type) SetEncoding(value string) error {
	switch Encoding(value) {
	case "", EncodingDefault:
		t.encoding = t.defaultEncoding()
	case Encoding7Bit, Encoding8Bit, EncodingQuotedPrintable, EncodingBase64:
		t.encoding = Encoding(value)
	default:
		return &InvalidEncodingError{Value: value}
	}
	return nil
}

func (t *Type) defaultEncoding() Encoding {
	if t.mediaType == "text" {
		return EncodingQuotedPrintable
	}
	return EncodingBase64
}

// System returns the source expression of the platform matcher, or "" when
// the type is not platform-specific.
func (t *Type) System() string {
	if t.system == nil {
		return ""
	}
	return t.system.String()
}

// SetSystem scopes the type to platforms matching expr, a regular
// expression over platform identifiers (a bare name like "linux" works as a
// literal match).
func (t *Type) SetSystem(expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return err
	}
	t.system = re
	return nil
}

// ClearSystem makes the type platform-neutral again.
func (t *Type) ClearSystem() {
	t.system = nil
}

// SetDocs stores the free-text annotation and rescans it for
// "use-instead:media/subtype" markers, replacing any previous replacement
// list. The list is only observable while the type is obsolete.
func (t *Type) SetDocs(text string) {
	t.docs = text
	t.useInstead = nil
	for _, m := range useInsteadRe.FindAllStringSubmatch(text, -1) {
		t.useInstead = append(t.useInstead, m[1])
	}
}

// UseInstead returns the replacement types extracted from the docs, or nil
// when the type is not obsolete.
func (t *Type) UseInstead() []string {
	if !t.obsolete {
		return nil
	}
	return t.useInstead
}

func (t *Type) SetObsolete(v bool) { t.obsolete = v }

// SetRegistered stores the explicit registration flag. Registered may still
// report false for x- prefixed types regardless of this flag.
func (t *Type) SetRegistered(v bool) { t.registered = v }

// Registered reports whether the type is IANA-registered. A type whose raw
// media or subtype half carries the x- experimental prefix is never
// registered, whatever the stored flag says.
func (t *Type) Registered() bool {
	if hasExperimentalPrefix(t.rawMediaType) || hasExperimentalPrefix(t.rawSubType) {
		return false
	}
	return t.registered
}

func hasExperimentalPrefix(s string) bool {
	return len(s) >= 2 && (s[0] == 'x' || s[0] == 'X') && s[1] == '-'
}

// Binary reports whether the payload is binary, which is the case exactly
// when the encoding is base64.
func (t *Type) Binary() bool { return t.encoding == EncodingBase64 }

// ASCII reports whether the payload is text-safe (not binary).
func (t *Type) ASCII() bool { return !t.Binary() }

// Signature reports whether the type denotes a signature or key payload.
func (t *Type) Signature() bool {
	return signatureTypes[strings.ToLower(t.simplified)]
}

// Platform reports whether the type is scoped to, and matches, the current
// runtime platform.
func (t *Type) Platform() bool {
	return t.system != nil && t.system.MatchString(platformID)
}

// Complete reports whether the type declares at least one file extension.
func (t *Type) Complete() bool { return len(t.extensions) > 0 }

// Equal reports whether two definitions share the same content type,
// compared case-insensitively. This is also the contract used for duplicate
// detection in the registry.
func (t *Type) Equal(other *Type) bool {
	return strings.EqualFold(t.contentType, other.contentType)
}

// EqualString compares the definition against a bare content-type string by
// simplified form. A string that does not match the grammar is compared
// lowercased as-is.
func (t *Type) EqualString(s string) bool {
	if simplified, ok := Simplify(s); ok {
		return t.simplified == simplified
	}
	return t.simplified == strings.ToLower(s)
}

// Compare orders definitions by case-insensitive content type.
func (t *Type) Compare(other *Type) int {
	return strings.Compare(strings.ToLower(t.contentType), strings.ToLower(other.contentType))
}
