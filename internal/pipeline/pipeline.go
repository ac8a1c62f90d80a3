// Package pipeline wires the parser, renderers, output staging and search
// index into one regeneration pass.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/starford/glossgen/internal/apperr"
	"github.com/starford/glossgen/internal/collate"
	"github.com/starford/glossgen/internal/index"
	"github.com/starford/glossgen/internal/models"
	"github.com/starford/glossgen/internal/parser"
	"github.com/starford/glossgen/internal/render"
	"github.com/starford/glossgen/internal/storage"
)

// Output format names.
const (
	FormatLaTeX   = "latex"
	FormatWiki    = "wiki"
	FormatWebsite = "website"
)

// DefaultLaTeXFile names the LaTeX document when no output file is configured.
const DefaultLaTeXFile = "glossary.tex"

// Target is one output to generate. An empty Dir writes the rendered files
// to the service's stdout instead of staging them.
type Target struct {
	Renderer render.Renderer
	Dir      string
}

// Plan describes a full regeneration pass.
type Plan struct {
	Source    string
	Normalize bool
	Targets   []Target
	Index     string // "" skips the search index
}

// Report summarises a pass.
type Report struct {
	Entries int
	// Normalized holds the bytes written back to the source, nil when the
	// source was already normalized or normalization was off.
	Normalized []byte
	Outputs    map[string]*storage.Report
	Index      *index.SyncReport
}

// Service coordinates parsing, rendering, staging and indexing.
type Service struct {
	logger *slog.Logger
	strict bool
	stdout io.Writer
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used by every stage.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithStrict fails renders on body syntax errors and clashing escaped names.
func WithStrict(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

// WithStdout sets where targets without a directory are written.
func WithStdout(w io.Writer) Option {
	return func(s *Service) { s.stdout = w }
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{
		logger: slog.New(slog.DiscardHandler),
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRenderer returns the renderer for format. file names the LaTeX
// document and tmpl is an optional website page template path.
func NewRenderer(format, file, tmpl string) (render.Renderer, error) {
	switch format {
	case FormatLaTeX:
		if file == "" {
			file = DefaultLaTeXFile
		}
		return render.NewLaTeX(file), nil
	case FormatWiki:
		return render.NewWiki(), nil
	case FormatWebsite:
		var pt *render.PageTemplate
		if tmpl != "" {
			var err error
			if pt, err = render.LoadTemplate(tmpl); err != nil {
				return nil, err
			}
		}
		return render.NewWebsite(pt)
	default:
		return nil, fmt.Errorf("pipeline: %q: %w", format, apperr.ErrUnknownFormat)
	}
}

// Load parses the glossary source at path.
func (s *Service) Load(path string) (*models.Glossary, error) {
	return parser.ParseFile(path, parser.WithLogger(s.logger))
}

// Normalize writes the normalized form of g back to its source file. It
// returns the written bytes, or nil when the file already matched.
func (s *Service) Normalize(g *models.Glossary) ([]byte, error) {
	src := g.Source()
	if src == "" {
		return nil, fmt.Errorf("pipeline: normalize: glossary has no source file")
	}
	fs, err := storage.NewFS(filepath.Dir(src))
	if err != nil {
		return nil, err
	}
	data := []byte(parser.Format(g))
	written, err := fs.Write(filepath.Base(src), data)
	if err != nil {
		return nil, fmt.Errorf("pipeline: normalize %s: %w", src, err)
	}
	if !written {
		return nil, nil
	}
	s.logger.Info("source normalized", slog.String("path", src))
	return data, nil
}

// IsNormalized reports whether the source file of g already holds its
// normalized form.
func (s *Service) IsNormalized(g *models.Glossary) (bool, error) {
	data, err := os.ReadFile(g.Source())
	if err != nil {
		return false, err
	}
	return string(data) == parser.Format(g), nil
}

// Generate renders g with r and stages the result under dir.
func (s *Service) Generate(g *models.Glossary, r render.Renderer, dir string) (*storage.Report, error) {
	out, err := r.Render(render.NewContext(g, s.logger, s.strict))
	if err != nil {
		return nil, fmt.Errorf("pipeline: render %s: %w", r.Name(), err)
	}
	if dir == "" {
		for _, f := range out.Files {
			if _, err := s.stdout.Write(f.Content); err != nil {
				return nil, err
			}
		}
		return &storage.Report{}, nil
	}
	fs, err := storage.NewFS(dir)
	if err != nil {
		return nil, fmt.Errorf("pipeline: output %s: %w", dir, err)
	}
	rep, err := storage.Stage(fs, out, s.logger)
	if err != nil {
		return nil, fmt.Errorf("pipeline: stage %s: %w", r.Name(), err)
	}
	s.logger.Info("output generated",
		slog.String("format", r.Name()),
		slog.String("dir", dir),
		slog.Int("written", len(rep.Written)),
		slog.Int("unchanged", rep.Unchanged),
		slog.Int("deleted", len(rep.Deleted)))
	return rep, nil
}

// BuildIndex synchronises the search index at path with g.
func (s *Service) BuildIndex(g *models.Glossary, path string) (*index.SyncReport, error) {
	db, err := index.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rep, err := db.Rebuild(g, collate.BuildReferenceMap(g, s.logger), s.logger)
	if err != nil {
		return nil, fmt.Errorf("pipeline: index %s: %w", path, err)
	}
	s.logger.Info("index updated",
		slog.String("path", path),
		slog.Int("indexed", rep.Indexed),
		slog.Int("unchanged", rep.Unchanged),
		slog.Int("removed", rep.Removed))
	return rep, nil
}

// Run executes a full pass. Targets run in order and the first failure
// stops the pass.
func (s *Service) Run(ctx context.Context, p Plan) (*Report, error) {
	g, err := s.Load(p.Source)
	if err != nil {
		return nil, err
	}
	rep := &Report{Entries: g.Len(), Outputs: make(map[string]*storage.Report, len(p.Targets))}

	if p.Normalize {
		if rep.Normalized, err = s.Normalize(g); err != nil {
			return nil, err
		}
	}
	for _, t := range p.Targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := s.Generate(g, t.Renderer, t.Dir)
		if err != nil {
			return nil, err
		}
		rep.Outputs[t.Renderer.Name()] = out
	}
	if p.Index != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if rep.Index, err = s.BuildIndex(g, p.Index); err != nil {
			return nil, err
		}
	}
	return rep, nil
}
