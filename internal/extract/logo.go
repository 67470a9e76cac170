package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".svg"}

// FindLogo returns the first <img> in document order whose src has an image
// extension and whose absolute URL mentions "logo". Images without a src, or with
// a src lacking a known extension, are skipped whatever else they say.
func FindLogo(doc *goquery.Document, pageURL string) (string, bool) {
	var logo string
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		if !ok || !hasImageExtension(src) {
			return true
		}
		resolved := resolveImageURL(pageURL, src)
		if containsLower(resolved, "logo") {
			logo = resolved
			return false
		}
		return true
	})
	return logo, logo != ""
}

// hasImageExtension is case-sensitive, ".PNG" does not count.
func hasImageExtension(src string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(src, ext) {
			return true
		}
	}
	return false
}

// resolveImageURL makes src absolute against the page URL and encodes literal
// spaces. Every src resolves; there is no failure case.
func resolveImageURL(pageURL, src string) string {
	return strings.ReplaceAll(joinURL(pageURL, src), " ", "%20")
}

// FormatLogo renders the logo line of the report.
func FormatLogo(logo string, ok bool) string {
	if !ok || logo == "" {
		return NoneText
	}
	return logo
}
