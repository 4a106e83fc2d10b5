package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cinematicwebworks/seokit/internal/config"
	"github.com/cinematicwebworks/seokit/internal/scanner"
	"github.com/cinematicwebworks/seokit/internal/sitemap"
	"github.com/spf13/cobra"
)

// previewPerGroup is the number of files listed per priority group.
const previewPerGroup = 5

// NewSitemapCmd creates the sitemap command.
func NewSitemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate sitemap.xml from the site's HTML files",
		Long: `Sitemap scans the site root for .html pages and writes a sitemap.xml
following the sitemaps.org protocol.

Each page gets a priority and change frequency from the first matching
classification rule (configurable in .seokit.yaml). The last-modified
date comes from the file's modification time. The root index.html maps
to the base URL and is always listed first.

Examples:
  # Write ./sitemap.xml for the current directory
  seokit sitemap

  # Generate for another directory and base URL
  seokit sitemap --root public --base-url https://staging.example.com

  # Regenerate whenever a page changes
  seokit sitemap --watch

  # Regenerate at most once per two seconds of edits
  seokit sitemap --watch --debounce 2s`,
		Args: cobra.NoArgs,
		RunE: runSitemapCmd,
	}

	cmd.Flags().StringP("root", "r", config.DefaultRoot, "Site root directory")
	cmd.Flags().StringP("base-url", "b", config.DefaultBaseURL, "Absolute base URL of the site")
	cmd.Flags().StringP("output", "o", "",
		"Output file path (default: <root>/sitemap.xml)")
	cmd.Flags().BoolP("watch", "w", false,
		"Watch the site root and regenerate on changes")
	cmd.Flags().Duration("debounce", sitemap.DefaultDebounce,
		"Quiet period after the last change before regenerating (with --watch)")

	return cmd
}

// runSitemapCmd executes the sitemap command.
func runSitemapCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyStringFlag(cmd, "output", &cfg.Output); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	gen, err := newSitemapGenerator(cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := gen.generate(out); err != nil {
		return err
	}

	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}
	if !watch {
		return nil
	}

	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return err
	}
	if debounce <= 0 {
		return fmt.Errorf("--debounce must be positive, got %s", debounce)
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	w, err := sitemap.NewWatcher(cfg.Root, gen.exclusions, func(context.Context) error {
		return gen.generate(out)
	}, sitemap.WithWatcherLogger(logger), sitemap.WithDebounce(debounce))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n👀 Watching %s for changes (Ctrl+C to stop)...\n", cfg.Root)
	return w.Run(ctx)
}

// sitemapGenerator scans, builds and writes the sitemap.
type sitemapGenerator struct {
	root       string
	outputPath string
	exclusions scanner.ExclusionRules
	scanner    *scanner.Scanner
	builder    *sitemap.Builder
}

func newSitemapGenerator(cfg *config.Config, logger *slog.Logger) (*sitemapGenerator, error) {
	exclusions, err := scannerExclusions(cfg)
	if err != nil {
		return nil, err
	}
	cls, err := classifier(cfg)
	if err != nil {
		return nil, err
	}
	builder, err := sitemap.NewBuilder(cfg.BaseURL,
		sitemap.WithClassifier(cls),
		sitemap.WithBuilderLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return &sitemapGenerator{
		root:       cfg.Root,
		outputPath: cfg.SitemapPath(),
		exclusions: exclusions,
		scanner:    scanner.New(scanner.WithExclusions(exclusions), scanner.WithLogger(logger)),
		builder:    builder,
	}, nil
}

// generate runs one full scan-build-write cycle and prints a preview.
func (g *sitemapGenerator) generate(out io.Writer) error {
	fmt.Fprintln(out, "🗺️  Generating sitemap...")
	fmt.Fprintln(out)

	files, err := g.scanner.Scan(g.root)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "📄 Found %d HTML files:\n\n", len(files))

	entries := g.builder.Build(files)
	writePriorityPreview(out, sitemap.GroupByPriority(entries))

	data, err := sitemap.Marshal(entries)
	if err != nil {
		return err
	}
	if err := ensureParentDir(g.outputPath); err != nil {
		return err
	}
	if err := sitemap.WriteFile(g.outputPath, data); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n✅ Sitemap written to %s\n", g.outputPath)
	fmt.Fprintf(out, "   Total URLs: %d\n", len(entries))
	fmt.Fprintf(out, "   File size: %.1f KB\n", float64(len(data))/1024)
	return nil
}

// writePriorityPreview lists the first few files of every priority group.
func writePriorityPreview(out io.Writer, groups []sitemap.PriorityGroup) {
	for _, g := range groups {
		fmt.Fprintf(out, "  Priority %s:\n", sitemap.FormatPriority(g.Priority))
		for i, f := range g.Files {
			if i == previewPerGroup {
				fmt.Fprintf(out, "    ... and %d more\n", len(g.Files)-previewPerGroup)
				break
			}
			fmt.Fprintf(out, "    - %s\n", f)
		}
	}
}
