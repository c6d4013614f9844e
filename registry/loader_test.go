package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/mimetypes/mimetype"
)

const sampleCorpus = `
# A small corpus exercising every field of the record grammar.
text/plain @txt,text :quoted-printable 'IANA,RFC2046 =Plain text
application/pdf @pdf :base64 'IANA,RFC3778
*application/x-compress @z :base64
!application/x-troff @t,tr,roff =use-instead:text/troff
windows:application/x-msdownload @exe,dll :base64
image/svg+xml @svg,svgz :8bit # trailing comment
`

func TestLoad(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Load(strings.NewReader(sampleCorpus)))
	require.Equal(t, 6, reg.Count())

	plain := reg.Resolve(Exact("text/plain"))
	require.Len(t, plain, 1)
	require.Equal(t, mimetype.EncodingQuotedPrintable, plain[0].Encoding())
	require.Equal(t, []string{"txt", "text"}, plain[0].Extensions())
	require.Equal(t, []string{"IANA", "RFC2046"}, plain[0].RawURLs())
	require.Equal(t, "Plain text", plain[0].Docs())

	compress := reg.Resolve(Exact("application/compress"))
	require.Len(t, compress, 1)
	require.False(t, compress[0].Registered())

	troff := reg.Resolve(Exact("application/troff"))
	require.Len(t, troff, 1)
	require.True(t, troff[0].Obsolete())
	require.Equal(t, []string{"text/troff"}, troff[0].UseInstead())
	require.Equal(t, mimetype.EncodingBase64, troff[0].Encoding())

	msdownload := reg.Resolve(Exact("application/msdownload"))
	require.Len(t, msdownload, 1)
	require.Equal(t, "windows", msdownload[0].System())

	svg := reg.TypeFor("diagram.svgz", false)
	require.Len(t, svg, 1)
	require.Equal(t, "image/svg+xml", svg[0].ContentType())
}

func TestLoadMalformedLine(t *testing.T) {
	corpus := strings.Join([]string{
		"# comment",
		"text/plain @txt",
		"bogus-line-with-no-slash",
		"text/html @html",
	}, "\n")

	reg := New()
	err := reg.LoadCorpus("test.types", strings.NewReader(corpus))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "test.types", perr.Corpus)
	require.Equal(t, 3, perr.Line)
	require.Equal(t, "bogus-line-with-no-slash", perr.Text)

	// A malformed corpus never partially populates the registry.
	require.Equal(t, 0, reg.Count())
	require.Empty(t, reg.Resolve(Exact("text/plain")))
}

func TestLoadBadEncoding(t *testing.T) {
	reg := New()
	err := reg.Load(strings.NewReader("text/plain :bogus\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 1, perr.Line)
	require.True(t, errors.Is(err, mimetype.ErrInvalidEncoding))
}

func TestLoadCommentsAndBlanks(t *testing.T) {
	corpus := "\n# only comments\n\n   \n# another\n"
	reg := New()
	require.NoError(t, reg.Load(strings.NewReader(corpus)))
	require.Equal(t, 0, reg.Count())
}

func TestLoadPreservesRawLineInError(t *testing.T) {
	raw := "text/plain @txt :wat # inline comment"
	reg := New()
	err := reg.Load(strings.NewReader(raw + "\n"))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, raw, perr.Text)
}
