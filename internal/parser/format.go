package parser

import (
	"strings"

	"github.com/starford/glossgen/internal/inline"
	"github.com/starford/glossgen/internal/models"
)

// Separator ends the front matter in formatted output.
const Separator = "---"

const wrapWidth = 80

// Format serializes g back into the source format. Placeholders are written
// after all other entries so unfinished definitions collect at the end of the
// file.
func Format(g *models.Glossary) string {
	var b strings.Builder
	for _, k := range g.Meta().Keys() {
		v, _ := g.Meta().Get(k)
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteByte('\n')
	}
	b.WriteString(Separator)
	b.WriteByte('\n')

	var placeholders []models.Entry
	for _, e := range g.Entries() {
		if e.Kind() == models.KindPlaceholder {
			placeholders = append(placeholders, e)
			continue
		}
		writeEntry(&b, e)
	}
	for _, e := range placeholders {
		writeEntry(&b, e)
	}
	return b.String()
}

func writeEntry(b *strings.Builder, e models.Entry) {
	b.WriteString(e.Name())
	b.WriteString(": ")

	var annotations []string
	if r, ok := e.(*models.Reference); ok {
		annotations = append(annotations, inline.Marker+" "+r.Target())
	}
	for _, t := range e.Tags() {
		annotations = append(annotations, TagPrefix+t)
	}
	for _, img := range e.Images() {
		annotations = append(annotations, ImagePrefix+img.Token)
	}
	b.WriteString(strings.Join(annotations, " "))

	if c, ok := e.(*models.Content); ok {
		b.WriteString("\n\t")
		b.WriteString(wordWrap(c.Body(), wrapWidth))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

const wrapSpace = " \t\n\r\x00\x0b"

// wordWrap breaks text at the first whitespace at or after width columns and
// indents continuation lines with a tab.
func wordWrap(text string, width int) string {
	if len(text) < width {
		return strings.TrimSpace(text)
	}
	rest := text + "\n"
	var b strings.Builder
	for len(rest) > width {
		i := width
		for strings.IndexByte(wrapSpace, rest[i]) < 0 {
			i++
		}
		b.WriteString(rest[:i])
		b.WriteString("\n\t")
		rest = rest[i+1:]
	}
	b.WriteString(rest)
	return strings.TrimRight(b.String(), wrapSpace)
}
