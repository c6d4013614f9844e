package mimetypes

import (
	"testing"

	"github.com/abdul-hamid-achik/mimetypes/registry"
)

func TestLoadEmbeddedCorpus(t *testing.T) {
	reg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Count() == 0 {
		t.Fatal("embedded corpus loaded zero definitions")
	}

	for _, contentType := range []string{"text/plain", "application/json", "image/png"} {
		if got := reg.Resolve(registry.Exact(contentType)); len(got) == 0 {
			t.Errorf("Resolve(%s) found nothing in the embedded corpus", contentType)
		}
	}

	xml := reg.TypeFor("citydesk.xml", false)
	if len(xml) < 2 {
		t.Fatalf("TypeFor(citydesk.xml) = %d entries, want application/xml and text/xml", len(xml))
	}
	if upper := reg.TypeFor("citydesk.XML", false); len(upper) != len(xml) {
		t.Error("extension lookup should be case-insensitive")
	}
}

func TestEmbeddedObsoleteRanking(t *testing.T) {
	reg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	// The corpus carries both text/vcard and the obsolete text/x-vcard
	// under the same simplified form.
	got := reg.Resolve(registry.Exact("text/vcard"))
	if len(got) < 2 {
		t.Fatalf("Resolve(text/vcard) = %d entries, want the current and obsolete variants", len(got))
	}
	if got[0].Obsolete() {
		t.Error("Resolve ranked the obsolete vcard variant first")
	}
	last := got[len(got)-1]
	if !last.Obsolete() {
		t.Error("obsolete vcard variant should rank last")
	}
	if want := []string{"text/vcard"}; len(last.UseInstead()) != 1 || last.UseInstead()[0] != want[0] {
		t.Errorf("UseInstead() = %v, want %v", last.UseInstead(), want)
	}
}

func TestInitIsExplicitAndOnce(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Init(); err == nil {
		t.Error("second Init() should fail")
	}
	if Default() == nil {
		t.Fatal("Default() = nil after Init")
	}
	if got := TypeFor("report.pdf", false); len(got) == 0 {
		t.Error("TypeFor via default handle found nothing for report.pdf")
	}
	if got := Resolve(registry.Exact("application/pdf")); len(got) == 0 {
		t.Error("Resolve via default handle found nothing for application/pdf")
	}
}

func TestCorpusVersion(t *testing.T) {
	if CorpusVersion == "" {
		t.Error("CorpusVersion is empty")
	}
}
