package htmlutil

import (
	"regexp"
	"strings"
)

// tagPattern matches HTML tags including self-closing tags.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// whitespacePattern matches any run of whitespace characters.
var whitespacePattern = regexp.MustCompile(`\s+`)

// StripTags removes all HTML markup from a string, decodes common entities,
// and collapses whitespace runs to single spaces. Used for free-text fields
// (descriptions, blurbs) coming out of external feeds, which mix plain text
// and HTML freely.
func StripTags(html string) string {
	if html == "" {
		return ""
	}

	result := tagPattern.ReplaceAllString(html, " ")
	result = decodeEntities(result)
	result = whitespacePattern.ReplaceAllString(result, " ")

	return strings.TrimSpace(result)
}

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
	"&apos;", "'",
	"&mdash;", "—",
	"&ndash;", "–",
	"&hellip;", "…",
	"&rsquo;", "’",
	"&lsquo;", "‘",
	"&rdquo;", "”",
	"&ldquo;", "“",
	"&copy;", "©",
	"&reg;", "®",
	"&trade;", "™",
)

// decodeEntities decodes common HTML entities. &amp; goes last so that
// double-encoded input doesn't sprout new entities mid-pass.
func decodeEntities(s string) string {
	s = entityReplacer.Replace(s)
	return strings.ReplaceAll(s, "&amp;", "&")
}
