package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v3"

	"github.com/starford/glossgen/internal"
	"github.com/starford/glossgen/internal/index"
	"github.com/starford/glossgen/internal/models"
	"github.com/starford/glossgen/internal/pipeline"
	pkgconfig "github.com/starford/glossgen/pkg/config"
)

const defaultConfigFile = "config/config.yaml"

var errNotNormalized = errors.New("source is not normalized")

// loadConfig reads the config file and applies the global flag overrides.
// A missing file is only an error when it was named explicitly.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if cmd.IsSet("config") {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if _, err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if lvl := cmd.String("log-level"); lvl != "" {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", lvl, err)
		}
	}
	if src := cmd.String("source"); src != "" {
		cfg.Source.Path = src
	}
	if cmd.Bool("strict") {
		cfg.Source.Strict = true
	}
	return cfg, nil
}

// only disables every output except the one a single-format command asks for.
func only(cfg *internal.Config, format string) {
	cfg.LaTeX.Enabled = format == pipeline.FormatLaTeX
	cfg.Wiki.Enabled = format == pipeline.FormatWiki
	cfg.Website.Enabled = format == pipeline.FormatWebsite
	cfg.Index.Enabled = format == "index"
}

func runApp(ctx context.Context, cfg *internal.Config, opts ...internal.Option) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if err := internal.Run(ctx, append([]internal.Option{internal.WithConfig(cfg)}, opts...)...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func build(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runApp(ctx, cfg)
}

func watch(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return runApp(ctx, cfg, internal.WithWatch(true))
}

func latex(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	only(cfg, pipeline.FormatLaTeX)
	if cmd.IsSet("output") {
		cfg.LaTeX.Output = cmd.String("output")
	}
	return runApp(ctx, cfg)
}

func wiki(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	only(cfg, pipeline.FormatWiki)
	if cmd.IsSet("dir") {
		cfg.Wiki.Dir = cmd.String("dir")
	}
	return runApp(ctx, cfg)
}

func website(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	only(cfg, pipeline.FormatWebsite)
	if cmd.IsSet("dir") {
		cfg.Website.Dir = cmd.String("dir")
	}
	if cmd.IsSet("template") {
		cfg.Website.Template = cmd.String("template")
	}
	return runApp(ctx, cfg)
}

func buildIndex(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	only(cfg, "index")
	if cmd.IsSet("path") {
		cfg.Index.Path = cmd.String("path")
	}
	return runApp(ctx, cfg)
}

func format(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc := pipeline.New(pipeline.WithLogger(internal.NewLogger(cfg.App, os.Stderr)))
	g, err := svc.Load(cfg.Source.Path)
	if err != nil {
		return err
	}
	if cmd.Bool("check") {
		ok, err := svc.IsNormalized(g)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", cfg.Source.Path, errNotNormalized)
		}
		return nil
	}
	_, err = svc.Normalize(g)
	return err
}

func list(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc := pipeline.New(pipeline.WithLogger(internal.NewLogger(cfg.App, os.Stderr)))
	g, err := svc.Load(cfg.Source.Path)
	if err != nil {
		return err
	}

	tag := cmd.String("tag")
	tbl := table.New("Name", "Kind", "Tags", "See").WithWriter(os.Stdout)
	for _, e := range g.Entries() {
		if tag != "" && !hasTag(e, tag) {
			continue
		}
		var see string
		if r, ok := e.(*models.Reference); ok {
			see = r.Target()
		}
		tbl.AddRow(e.Name(), e.Kind(), strings.Join(e.Tags(), " "), see)
	}
	tbl.Print()
	return nil
}

func hasTag(e models.Entry, tag string) bool {
	for _, t := range e.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

func search(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	query := strings.Join(cmd.Args().Slice(), " ")
	if query == "" {
		return errors.New("search: query is required")
	}
	path := cfg.Index.Path
	if cmd.IsSet("path") {
		path = cmd.String("path")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("search: index %s: %w", path, err)
	}

	db, err := index.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := db.Search(query, int(cmd.Int("limit")))
	if err != nil {
		return err
	}
	tbl := table.New("Name", "Page", "Snippet").WithWriter(os.Stdout)
	for _, r := range results {
		tbl.AddRow(r.Name, r.Path, r.Snippet)
	}
	tbl.Print()
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "glossgen",
		Usage: "Generate LaTeX, wiki and website glossaries from a plain-text glossary source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: defaultConfigFile,
				Value:       defaultConfigFile,
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Glossary source `FILE` (overrides source.path)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log `LEVEL` (DEBUG, INFO, WARN, ERROR)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail on reference syntax errors and clashing entry file names instead of logging them",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Generate every output enabled in the config",
				Action: build,
			},
			{
				Name:   "latex",
				Usage:  "Generate the LaTeX glossary",
				Action: latex,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output `FILE`, stdout when empty"},
				},
			},
			{
				Name:   "wiki",
				Usage:  "Generate the wiki Markdown pages",
				Action: wiki,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Aliases: []string{"o"}, Usage: "output `DIR`"},
				},
			},
			{
				Name:   "website",
				Usage:  "Generate the HTML website",
				Action: website,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dir", Aliases: []string{"o"}, Usage: "output `DIR`"},
					&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "page template `FILE`"},
				},
			},
			{
				Name:   "index",
				Usage:  "Build the SQLite search index",
				Action: buildIndex,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Usage: "database `FILE`"},
				},
			},
			{
				Name:   "fmt",
				Usage:  "Rewrite the source in normalized form",
				Action: format,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "check", Usage: "report whether the source is normalized without writing it"},
				},
			},
			{
				Name:   "list",
				Usage:  "List glossary entries",
				Action: list,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tag", Usage: "only entries tagged `TAG`"},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the index",
				ArgsUsage: "QUERY",
				Action:    search,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Usage: "database `FILE`"},
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum number of results"},
				},
			},
			{
				Name:   "watch",
				Usage:  "Regenerate enabled outputs whenever the source changes",
				Action: watch,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
