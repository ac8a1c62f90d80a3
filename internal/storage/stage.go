package storage

import (
	"fmt"
	"log/slog"
	"path"

	"go.uber.org/multierr"
)

// File is a generated document destined for Path.
type File struct {
	Path    string
	Content []byte
}

// Asset is an existing file copied from the absolute path Src to Path.
type Asset struct {
	Src  string
	Path string
}

// Prune marks a directory whose files with extension Ext are owned by the
// plan. Owned files that the plan no longer produces are deleted. An empty
// Ext owns every file in Dir.
type Prune struct {
	Dir string
	Ext string
}

// Plan is the complete output of one generator run.
type Plan struct {
	Files  []File
	Assets []Asset
	Prune  []Prune
}

// AddFile appends a generated document.
func (p *Plan) AddFile(path string, content []byte) {
	p.Files = append(p.Files, File{Path: path, Content: content})
}

// Report summarizes what Stage changed on disk.
type Report struct {
	Written   []string
	Unchanged int
	Deleted   []string
}

// Stage writes every file and asset in plan, then removes stale files from
// the pruned directories. Write failures abort immediately; failed deletions
// are collected and returned together after the remaining work is done.
func Stage(p Provider, plan *Plan, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	wanted := make(map[string]struct{}, len(plan.Files)+len(plan.Assets))
	for _, f := range plan.Files {
		wanted[path.Clean(f.Path)] = struct{}{}
	}
	for _, a := range plan.Assets {
		wanted[path.Clean(a.Path)] = struct{}{}
	}

	var stale []string
	for _, pr := range plan.Prune {
		existing, err := p.List(pr.Dir, pr.Ext)
		if err != nil {
			return nil, err
		}
		for _, fi := range existing {
			if _, ok := wanted[fi.Path]; !ok {
				stale = append(stale, fi.Path)
			}
		}
	}

	rep := &Report{}
	record := func(path string, changed bool) {
		if changed {
			rep.Written = append(rep.Written, path)
			logger.Debug("file written", slog.String("path", path))
			return
		}
		rep.Unchanged++
	}
	for _, f := range plan.Files {
		changed, err := p.Write(f.Path, f.Content)
		if err != nil {
			return rep, err
		}
		record(f.Path, changed)
	}
	for _, a := range plan.Assets {
		changed, err := p.Copy(a.Src, a.Path)
		if err != nil {
			return rep, err
		}
		record(a.Path, changed)
	}

	var errs error
	for _, s := range stale {
		if err := p.Delete(s); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		rep.Deleted = append(rep.Deleted, s)
		logger.Info("stale file removed", slog.String("path", s))
	}
	if errs != nil {
		return rep, fmt.Errorf("storage: prune: %w", errs)
	}
	return rep, nil
}
