package extract

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFindLogo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "relative src resolves against page",
			html: `<img src="/assets/company-logo.png">`,
			want: "https://example.com/assets/company-logo.png",
		},
		{
			name: "no logo substring",
			html: `<img src="/assets/banner.png">`,
			want: "",
		},
		{
			name: "first match in document order wins",
			html: `<img src="/a/hero.jpg"><img src="/a/Logo-main.svg"><img src="/b/logo-footer.png">`,
			want: "https://example.com/a/Logo-main.svg",
		},
		{
			name: "extension check is case sensitive",
			html: `<img src="/a/logo.PNG"><img src="/a/logo.webp">`,
			want: "https://example.com/a/logo.webp",
		},
		{
			name: "missing src and alt text are ignored",
			html: `<img alt="logo"><img data-src="/logo.png"><img src="/logo.gif">`,
			want: "",
		},
		{
			name: "host match counts",
			html: `<img src="https://logos.cdn.example.net/brand.jpeg">`,
			want: "https://logos.cdn.example.net/brand.jpeg",
		},
		{
			name: "spaces are percent encoded",
			html: `<img src="/img/our logo.png">`,
			want: "https://example.com/img/our%20logo.png",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := FindLogo(mustDoc(t, tt.html), "https://example.com/home")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != "", ok)
		})
	}
}

func TestFindLogoRelativeToPageDirectory(t *testing.T) {
	t.Parallel()

	got, ok := FindLogo(mustDoc(t, `<img src="img/logo.png">`), "https://example.com/en/home")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/en/img/logo.png", got)
}

func TestFindLogoKeepsRawSrcText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "non-ascii path", src: "/img/logo_čist.png", want: "https://www.zaba.hr/img/logo_čist.png"},
		{name: "invalid percent escape", src: "/img/logo%zz.png", want: "https://www.zaba.hr/img/logo%zz.png"},
		{name: "space and bare percent", src: "/img/logo 100%.png", want: "https://www.zaba.hr/img/logo%20100%.png"},
		{name: "embedded newline", src: "/img/\nlogo.png", want: "https://www.zaba.hr/img/logo.png"},
		{name: "existing escape untouched", src: "/img/logo%C4%8D.png", want: "https://www.zaba.hr/img/logo%C4%8D.png"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := mustDoc(t, "<html><body></body></html>")
			doc.Find("body").AppendHtml("<img>")
			doc.Find("img").SetAttr("src", tt.src)

			got, ok := FindLogo(doc, "https://www.zaba.hr/home/en")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	const base = "https://example.com/a/b/page?x=1#top"
	tests := []struct {
		ref  string
		want string
	}{
		{ref: "logo.png", want: "https://example.com/a/b/logo.png"},
		{ref: "./logo.png", want: "https://example.com/a/b/logo.png"},
		{ref: "../logo.png", want: "https://example.com/a/logo.png"},
		{ref: "../../../../logo.png", want: "https://example.com/logo.png"},
		{ref: "/img/./x/../logo.png", want: "https://example.com/img/logo.png"},
		{ref: "//cdn.example.net/logo.png", want: "https://cdn.example.net/logo.png"},
		{ref: "http://other.example/logo.png", want: "http://other.example/logo.png"},
		{ref: "HTTPS://Other.example/logo.png", want: "https://Other.example/logo.png"},
		{ref: "logo.png?v=2#f", want: "https://example.com/a/b/logo.png?v=2#f"},
		{ref: "?v=2", want: "https://example.com/a/b/page?v=2"},
		{ref: "data:image/png;base64,logo.png", want: "data:image/png;base64,logo.png"},
		{ref: "  /logo.png", want: "https://example.com/logo.png"},
		{ref: "..", want: "https://example.com/a/"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, joinURL(base, tt.ref))
		})
	}
}

func TestResolveImageURLRoundTrip(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"/assets/company-logo.png", "/img/nested/dir/logo.svg"} {
		resolved := resolveImageURL("https://example.com/home", src)

		reparsed, err := url.Parse(resolved)
		require.NoError(t, err)
		assert.True(t, reparsed.IsAbs())
		assert.Equal(t, "example.com", reparsed.Host)
		assert.Equal(t, src, reparsed.Path)
	}
}

func TestFormatLogo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "None", FormatLogo("", false))
	assert.Equal(t, "https://x/logo.png", FormatLogo("https://x/logo.png", true))
}
