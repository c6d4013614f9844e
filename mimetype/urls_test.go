package mimetype

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestURLsMacroExpansion(t *testing.T) {
	typ := MustNew("application/pdf")
	typ.SetURLs(
		"IANA",
		"RFC3778",
		"DRAFT:draft-example-media",
		"LTSW",
		"{Adobe=https://www.adobe.com/pdf}",
		"[ISO-TC171=scrappy]",
		"[plass]",
		"https://example.com/spec",
	)

	want := []URLRef{
		{URL: "https://www.iana.org/assignments/media-types/application/pdf"},
		{URL: "https://www.rfc-editor.org/rfc/rfc3778.txt"},
		{URL: "https://datatracker.ietf.org/doc/draft-example-media/"},
		{URL: "http://www.ltsw.se/knbase/internet/application.htp"},
		{Label: "Adobe", URL: "https://www.adobe.com/pdf"},
		{Label: "ISO-TC171", URL: "https://www.iana.org/assignments/contact-people.htm#scrappy"},
		{Label: "plass", URL: "https://www.iana.org/assignments/contact-people.htm#plass"},
		{URL: "https://example.com/spec"},
	}
	if diff := cmp.Diff(want, typ.URLs()); diff != "" {
		t.Errorf("URLs() mismatch (-want +got):\n%s", diff)
	}
}

func TestURLsEmpty(t *testing.T) {
	typ := MustNew("text/plain")
	if got := typ.URLs(); len(got) != 0 {
		t.Errorf("URLs() = %v for type without references", got)
	}
}

func TestRawURLsUnexpanded(t *testing.T) {
	typ := MustNew("text/html")
	typ.SetURLs("IANA", "RFC2854")
	want := []string{"IANA", "RFC2854"}
	if diff := cmp.Diff(want, typ.RawURLs()); diff != "" {
		t.Errorf("RawURLs() mismatch (-want +got):\n%s", diff)
	}
}
