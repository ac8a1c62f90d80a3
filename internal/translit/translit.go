// Package translit holds the static transliteration tables used to derive
// sort keys, file-safe entry names, and LaTeX-escaped text.
package translit

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sortFolds reduces German umlauts to their base vowel for collation.
var sortFolds = map[string]string{
	"ä": "a",
	"ö": "o",
	"ü": "u",
	"Ä": "a",
	"Ö": "o",
	"Ü": "u",
	"ß": "s",
}

// nameFolds spells out German umlauts for file and URL names.
var nameFolds = map[string]string{
	"ä": "ae",
	"ö": "oe",
	"ü": "ue",
	"Ä": "Ae",
	"Ö": "Oe",
	"Ü": "Ue",
	"ß": "ss",
}

var nonAlnumRe = regexp.MustCompile(`[^0-9a-z]+`)

// SortKey folds s into the key used to collate entries and tags: umlauts
// become their base vowel, the result is lowercased, and everything outside
// [0-9a-z] is dropped.
func SortKey(s string) string {
	s = slug.Substitute(norm.NFC.String(s), sortFolds)
	s = strings.ToLower(s)
	return nonAlnumRe.ReplaceAllString(s, "")
}

// Name folds s into a lowercase, hyphen-separated form that is safe to use as
// a file name, URL segment or LaTeX label. Umlauts are spelled out (ä → ae),
// other combining accents are stripped.
func Name(s string) string {
	s = slug.Substitute(norm.NFC.String(s), nameFolds)
	s = strings.ToLower(stripMarks(s))
	return strings.Trim(nonAlnumRe.ReplaceAllString(s, "-"), "-")
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// LaTeX replaces every rune that has a LaTeX equivalent and doubles line
// breaks so they survive as paragraph breaks.
func LaTeX(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if eq, ok := latexEquivalents[r]; ok {
			b.WriteString(eq)
			continue
		}
		b.WriteRune(r)
	}
	return strings.ReplaceAll(b.String(), "\n", "\n\n")
}

// LaTeXEquivalent reports the LaTeX sequence registered for r.
func LaTeXEquivalent(r rune) (string, bool) {
	eq, ok := latexEquivalents[r]
	return eq, ok
}
