package mimetype

import (
	"fmt"
	"regexp"
)

// URLRef is one expanded reference. Label is empty for plain links; macro
// forms that carry a display label fill both fields.
type URLRef struct {
	Label string
	URL   string
}

var (
	rfcRe          = regexp.MustCompile(`^RFC(\d+)$`)
	draftRe        = regexp.MustCompile(`^DRAFT:(.+)$`)
	labelValueRe   = regexp.MustCompile(`^\{([^=}]+)=([^}]+)\}$`)
	contactValueRe = regexp.MustCompile(`^\[([^=\]]+)=([^\]]+)\]$`)
	contactRe      = regexp.MustCompile(`^\[([^=\]]+)\]$`)
)

// SetURLs replaces the raw reference tokens.
func (t *Type) SetURLs(tokens ...string) {
	t.urls = append([]string(nil), tokens...)
}

// RawURLs returns the reference tokens as stored.
func (t *Type) RawURLs() []string { return t.urls }

// URLs expands each raw token through the reference macro table:
//
//	IANA            IANA media-type registry entry for this type
//	RFC<digits>     RFC text at the rfc-editor
//	DRAFT:<name>    IETF draft tracker page
//	LTSW            ltsw.se vendor page for the media type
//	{label=value}   literal labelled link
//	[label=value]   labelled IANA contact link for value
//	[label]         IANA contact link for label
//
// Unrecognized tokens pass through unchanged as plain links.
func (t *Type) URLs() []URLRef {
	out := make([]URLRef, 0, len(t.urls))
	for _, token := range t.urls {
		out = append(out, t.expandURL(token))
	}
	return out
}

func (t *Type) expandURL(token string) URLRef {
	switch {
	case token == "IANA":
		return URLRef{URL: fmt.Sprintf(
			"https://www.iana.org/assignments/media-types/%s/%s",
			t.mediaType, t.subType)}
	case token == "LTSW":
		return URLRef{URL: fmt.Sprintf(
			"http://www.ltsw.se/knbase/internet/%s.htp", t.mediaType)}
	case rfcRe.MatchString(token):
		num := rfcRe.FindStringSubmatch(token)[1]
		return URLRef{URL: fmt.Sprintf("https://www.rfc-editor.org/rfc/rfc%s.txt", num)}
	case draftRe.MatchString(token):
		name := draftRe.FindStringSubmatch(token)[1]
		return URLRef{URL: fmt.Sprintf("https://datatracker.ietf.org/doc/%s/", name)}
	}
	if m := labelValueRe.FindStringSubmatch(token); m != nil {
		return URLRef{Label: m[1], URL: m[2]}
	}
	if m := contactValueRe.FindStringSubmatch(token); m != nil {
		return URLRef{Label: m[1], URL: contactURL(m[2])}
	}
	if m := contactRe.FindStringSubmatch(token); m != nil {
		return URLRef{Label: m[1], URL: contactURL(m[1])}
	}
	return URLRef{URL: token}
}

func contactURL(name string) string {
	return "https://www.iana.org/assignments/contact-people.htm#" + name
}
