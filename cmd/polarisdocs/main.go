package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/polarisdocs"
	"github.com/fwojciec/polarisdocs/cache"
	"github.com/fwojciec/polarisdocs/content"
	"github.com/fwojciec/polarisdocs/github"
	"github.com/fwojciec/polarisdocs/goquery"
	"github.com/fwojciec/polarisdocs/htmltomarkdown"
	"github.com/fwojciec/polarisdocs/mdx"
	"github.com/fwojciec/polarisdocs/registry"
	polrod "github.com/fwojciec/polarisdocs/rod"
	polslog "github.com/fwojciec/polarisdocs/slog"
)

// docExt is the markup extension of the component content files.
const docExt = "mdx"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Develop service to close on exit, if one was wired.
	develop polarisdocs.DevelopService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.develop != nil {
		return m.develop.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("polarisdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'polarisdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	owner, repo, ok := strings.Cut(cli.Repo, "/")
	if !ok || owner == "" || repo == "" {
		return fmt.Errorf("invalid repository %q: expected owner/name", cli.Repo)
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire core services: source -> builders/fetchers -> cache -> logging.
	var clientOpts []github.Option
	if cli.Token != "" {
		clientOpts = append(clientOpts, github.WithToken(cli.Token))
	}
	source := github.NewClient(owner, repo, cli.Branch, clientOpts...)

	builder := registry.NewBuilder(source, cli.ContentRoot, docExt)
	deps.Registries = cache.NewRegistryService(builder, polarisdocs.TTLRegistry)

	fetcher := content.NewFetcher(source, cli.ContentRoot, docExt)
	deps.Content = polslog.NewContentService(
		cache.NewContentService(fetcher, polarisdocs.TTLDoc, polarisdocs.TTLExample),
		logger,
	)

	deps.Cleaner = mdx.NewCleaner()

	// The browser stack is wired only for the develop command; the browser
	// itself launches lazily on first scrape.
	if cmd == "develop" {
		extractor := goquery.NewExtractor(goquery.WithConverter(htmltomarkdown.NewConverter()))
		scraper := polrod.NewScraper(polrod.NewManager(), extractor, cli.Site)
		m.develop = polslog.NewDevelopService(
			cache.NewDevelopService(scraper, polarisdocs.TTLDevelop),
			logger,
		)
		deps.Develop = m.develop
		defer m.Close()
	}

	return kongCtx.Run(deps)
}
