// Package parser reads the flat-text glossary format: a front-matter block of
// "key: value" lines, a separator line, then entries introduced by
// "Name: <annotations>" header lines and followed by their body lines.
package parser

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/starford/glossgen/internal/apperr"
	"github.com/starford/glossgen/internal/collate"
	"github.com/starford/glossgen/internal/inline"
	"github.com/starford/glossgen/internal/models"
)

const (
	// TagPrefix marks a tag annotation on a header line.
	TagPrefix = "#"
	// ImagePrefix marks an image annotation on a header line.
	ImagePrefix = "!"
)

var (
	metaRe   = regexp.MustCompile(`^([^:]+):\s*(.*)$`)
	headerRe = regexp.MustCompile(`^([^\s:][^:]*):(.*)$`)
	tagRe    = regexp.MustCompile(`#(\w+)`)
	imageRe  = regexp.MustCompile(`!([^\s!]+)`)
)

// DuplicateEntryError is returned when two headers share a name.
type DuplicateEntryError struct {
	Name string
	Line int
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("parser: duplicate entry %q on line %d", e.Name, e.Line)
}

// Is makes errors.Is(err, apperr.ErrDuplicateEntry) hold.
func (e *DuplicateEntryError) Is(target error) bool { return target == apperr.ErrDuplicateEntry }

type options struct {
	baseDir string
	source  string
	logger  *slog.Logger
}

// Option configures Parse.
type Option func(*options)

// WithBaseDir sets the directory image tokens are resolved against.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.baseDir = dir }
}

// WithLogger sets the logger that receives recoverable warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSource records the path the data was read from.
func WithSource(path string) Option {
	return func(o *options) { o.source = path }
}

// ParseFile reads and parses the glossary at path. Images resolve relative
// to the file's directory.
func ParseFile(path string, opts ...Option) (*models.Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: read %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("parser: resolve %s: %w", path, err)
	}
	opts = append([]Option{WithBaseDir(filepath.Dir(abs)), WithSource(path)}, opts...)
	return Parse(data, opts...)
}

// Parse builds a glossary from the full text of a source document. Only
// duplicate entry names are fatal; missing images and empty bodies are
// logged and parsing continues.
func Parse(data []byte, opts ...Option) (*models.Glossary, error) {
	o := options{baseDir: ".", logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	lines := splitLines(string(data))
	meta := models.NewMeta()

	i := 0
	for i < len(lines) {
		m := metaRe.FindStringSubmatch(lines[i])
		i++
		if m == nil {
			// The first non-matching line separates front matter from entries.
			break
		}
		meta.Set(m[1], m[2])
	}

	var (
		entries []models.Entry
		tags    []string
		current models.Entry
	)
	seen := make(map[string]struct{})

	finalize := func() {
		if current == nil {
			return
		}
		if c, ok := current.(*models.Content); ok && c.IsEmpty() {
			current = c.Demote()
		}
		entries = append(entries, current)
		seen[current.Name()] = struct{}{}
	}

	for ; i < len(lines); i++ {
		line := lines[i]
		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			if c, ok := current.(*models.Content); ok {
				c.AppendLine(line)
			}
			continue
		}

		finalize()
		name, rest := m[1], m[2]
		if _, dup := seen[name]; dup {
			return nil, &DuplicateEntryError{Name: name, Line: i + 1}
		}

		current = newEntry(name, rest)
		if r, ok := current.(*models.Reference); ok && r.Target() == "" {
			o.logger.Warn("reference target empty", slog.String("entry", name), slog.Int("line", i+1))
		}
		entryTags := readTags(rest)
		models.SetTags(current, entryTags)
		models.SetImages(current, resolveImages(o, name, rest))
		tags = append(tags, entryTags...)
	}
	finalize()

	collate.SortEntries(entries)
	tags = collate.Unique(tags)
	collate.SortStrings(tags)

	for _, e := range entries {
		if e.Kind() == models.KindPlaceholder && len(e.Images()) == 0 {
			o.logger.Warn("entry is empty", slog.String("entry", e.Name()))
		}
	}

	return models.NewGlossary(o.source, meta, entries, tags), nil
}

// splitLines splits text into lines without their terminators.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// newEntry classifies a header by its annotation string.
func newEntry(name, rest string) models.Entry {
	trimmed := strings.TrimSpace(rest)
	if !strings.HasPrefix(trimmed, inline.Marker) {
		return models.NewContent(name)
	}
	target := trimmed[len(inline.Marker):]
	target = tagRe.ReplaceAllString(target, "")
	target = imageRe.ReplaceAllString(target, "")
	return models.NewReference(name, strings.TrimSpace(target))
}

func readTags(rest string) []string {
	matches := tagRe.FindAllStringSubmatch(rest, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// resolveImages turns image tokens into absolute paths, dropping tokens
// whose file does not exist.
func resolveImages(o options, entry, rest string) []models.Image {
	matches := imageRe.FindAllStringSubmatch(rest, -1)
	if len(matches) == 0 {
		return nil
	}
	var out []models.Image
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		token := m[1]
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}

		path, err := resolvePath(o.baseDir, token)
		if err != nil {
			o.logger.Warn("image missing",
				slog.String("entry", entry),
				slog.String("image", token),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, models.Image{Token: token, Path: path})
	}
	return out
}

func resolvePath(baseDir, token string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(baseDir, token))
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", resolved)
	}
	return resolved, nil
}
