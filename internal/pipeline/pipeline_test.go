package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/starford/glossgen/internal/apperr"
	"github.com/starford/glossgen/internal/index"
	"github.com/starford/glossgen/internal/render"
	"github.com/starford/glossgen/internal/testutil"
)

const unsorted = `title: Fruit
author: Jane Doe
---
Banana: #fruit
	Long and => Apple shaped? No.
Apple: #fruit !apple.png
	Round.
`

func newService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	logger, _ := testutil.Logger(t)
	return New(append([]Option{WithLogger(logger)}, opts...)...)
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []string{FormatLaTeX, FormatWiki, FormatWebsite} {
		r, err := NewRenderer(format, "", "")
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if r.Name() != format {
			t.Errorf("Name() = %q, want %q", r.Name(), format)
		}
	}

	if _, err := NewRenderer("pdf", "", ""); !errors.Is(err, apperr.ErrUnknownFormat) {
		t.Errorf("pdf: err = %v, want ErrUnknownFormat", err)
	}
	if _, err := NewRenderer(FormatWebsite, "", filepath.Join(t.TempDir(), "missing.tmpl")); err == nil {
		t.Error("expected error for missing template")
	}
}

func TestNormalize(t *testing.T) {
	svc := newService(t)
	path := testutil.WriteSource(t, unsorted, "apple.png")

	g, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok, err := svc.IsNormalized(g); err != nil || ok {
		t.Fatalf("IsNormalized = %v, %v; want false", ok, err)
	}
	data, err := svc.Normalize(g)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if data == nil {
		t.Fatal("expected source to be rewritten")
	}
	onDisk, _ := os.ReadFile(path)
	if diff := cmp.Diff(string(data), string(onDisk)); diff != "" {
		t.Errorf("returned data differs from file (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(string(onDisk), "title: Fruit\nauthor: Jane Doe\n---\nApple:") {
		t.Errorf("unexpected normalized source:\n%s", onDisk)
	}

	g, err = svc.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if ok, err := svc.IsNormalized(g); err != nil || !ok {
		t.Fatalf("IsNormalized after rewrite = %v, %v; want true", ok, err)
	}
	again, err := svc.Normalize(g)
	if err != nil {
		t.Fatalf("second Normalize: %v", err)
	}
	if again != nil {
		t.Errorf("second Normalize rewrote the source:\n%s", again)
	}
}

func TestGenerate_Stdout(t *testing.T) {
	var buf bytes.Buffer
	svc := newService(t, WithStdout(&buf))
	g := testutil.Glossary(t, unsorted, "apple.png")

	if _, err := svc.Generate(g, render.NewLaTeX(DefaultLaTeXFile), ""); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `\title{Fruit}`) {
		t.Errorf("missing preamble:\n%s", out)
	}
	if !strings.Contains(out, `\newglossaryentry{banana}`) {
		t.Errorf("missing banana entry:\n%s", out)
	}
}

func TestGenerate_Dir(t *testing.T) {
	svc := newService(t)
	g := testutil.Glossary(t, unsorted, "apple.png")
	dir := filepath.Join(t.TempDir(), "wiki")

	rep, err := svc.Generate(g, render.NewWiki(), dir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, name := range []string{"Home.md", "apple.md", "banana.md", "img/apple.png", "tags/fruit.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if len(rep.Written) == 0 {
		t.Error("report lists no written files")
	}

	again, err := svc.Generate(g, render.NewWiki(), dir)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	// _Footer.md carries the generation time and may change between runs.
	for _, p := range again.Written {
		if p != "_Footer.md" {
			t.Errorf("unchanged output rewritten: %s", p)
		}
	}
}

func TestRun(t *testing.T) {
	svc := newService(t)
	path := testutil.WriteSource(t, unsorted, "apple.png")
	out := t.TempDir()

	wiki, _ := NewRenderer(FormatWiki, "", "")
	site, _ := NewRenderer(FormatWebsite, "", "")
	latex, _ := NewRenderer(FormatLaTeX, "glossary.tex", "")
	plan := Plan{
		Source:    path,
		Normalize: true,
		Targets: []Target{
			{Renderer: latex, Dir: filepath.Join(out, "tex")},
			{Renderer: wiki, Dir: filepath.Join(out, "wiki")},
			{Renderer: site, Dir: filepath.Join(out, "site")},
		},
		Index: filepath.Join(out, "glossary.db"),
	}

	rep, err := svc.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Entries != 2 {
		t.Errorf("Entries = %d, want 2", rep.Entries)
	}
	if rep.Normalized == nil {
		t.Error("expected normalized source")
	}
	for _, name := range []string{"tex/glossary.tex", "wiki/Home.md", "site/index.html", "site/apple.html"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if rep.Index == nil || rep.Index.Indexed != 2 {
		t.Errorf("Index = %+v, want 2 indexed", rep.Index)
	}

	db, err := index.Open(plan.Index)
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer db.Close()
	bl, err := db.Backlinks("Apple")
	if err != nil {
		t.Fatalf("Backlinks: %v", err)
	}
	if diff := cmp.Diff([]string{"Banana"}, bl); diff != "" {
		t.Errorf("backlinks mismatch (-want +got):\n%s", diff)
	}

	rep, err = svc.Run(context.Background(), plan)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if rep.Normalized != nil {
		t.Error("second run rewrote the source")
	}
	if rep.Index.Unchanged != 2 {
		t.Errorf("second run Index = %+v, want 2 unchanged", rep.Index)
	}
}

func TestRun_StrictStopsBeforeWriting(t *testing.T) {
	svc := newService(t, WithStrict(true))
	path := testutil.WriteSource(t, "title: T\n---\nBroken:\n\tOops => {never closed\n")
	dir := filepath.Join(t.TempDir(), "wiki")

	_, err := svc.Run(context.Background(), Plan{
		Source:  path,
		Targets: []Target{{Renderer: render.NewWiki(), Dir: dir}},
	})
	if !errors.Is(err, apperr.ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Home.md")); !os.IsNotExist(err) {
		t.Errorf("output written despite strict failure: %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	svc := newService(t)
	path := testutil.WriteSource(t, unsorted, "apple.png")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, Plan{
		Source:  path,
		Targets: []Target{{Renderer: render.NewWiki(), Dir: t.TempDir()}},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
