package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/deeptective/deeptective"
	"github.com/deeptective/deeptective/gemini"
	"github.com/deeptective/deeptective/goquery"
	dhttp "github.com/deeptective/deeptective/http"
	"github.com/deeptective/deeptective/readability"
	"github.com/deeptective/deeptective/reddit"
	"github.com/deeptective/deeptective/scrape"
	dslog "github.com/deeptective/deeptective/slog"
	"github.com/deeptective/deeptective/sqlite"
	"github.com/deeptective/deeptective/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path. Overridden by --db.
	DBPath string

	// YAML file supplying flag defaults. Missing files are ignored.
	ConfigPath string

	// Gemini API key used by the ask command.
	APIKey string

	// SQLite database used by the case registry.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults taken from the environment.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		APIKey:     os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
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

	options := []kong.Option{
		kong.Name("deeptective"),
		kong.Description("Search the web for evidence and extract clean text from the sources found"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"search_url": deeptective.DefaultSearchURL,
			"user_agent": deeptective.DefaultUserAgent,
			"db_path":    m.DBPath,
			"model":      gemini.DefaultModel,
		},
	}
	var configPaths []string
	if m.ConfigPath != "" {
		configPaths = append(configPaths, m.ConfigPath)
	}
	options = append(options, kong.Configuration(YAML, configPaths...))

	cli := &CLI{}
	parser, err := kong.New(cli, options...)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'deeptective --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open the case registry only for commands that read or record cases.
	if cmd == "cases" || (cli.Provider == "web" && (cmd == "evidence" || cmd == "case")) {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DEEPTECTIVE_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Cases = sqlite.NewCaseService(m.DB)
	}

	deps.Pipeline = m.newPipeline(cli, logger)

	switch cli.Provider {
	case "reddit":
		deps.Provider = reddit.NewProvider()
	default:
		deps.Provider = scrape.NewProvider(deps.Pipeline, deps.Cases, &scrape.SourcePolicy{
			Allowlist: cli.Allow,
			Denylist:  cli.Deny,
		})
	}
	if cli.Verbose {
		deps.Provider = dslog.NewLoggingProvider(deps.Provider, cli.Provider, logger)
	}

	if cmd == "search" && cli.Search.Tokens {
		tokenCounter, err := gemini.NewTokenCounter(cli.Model)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.Tokens = tokenCounter
	}

	if cmd == "ask" {
		if m.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  m.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, cli.Model)
	}

	return kongCtx.Run(deps)
}

// newPipeline wires the search and extraction stack from global flags.
func (m *Main) newPipeline(cli *CLI, logger *slog.Logger) *scrape.Pipeline {
	var searchFetcher deeptective.Fetcher = dhttp.NewFetcher(
		dhttp.WithTimeout(cli.SearchTimeout),
		dhttp.WithUserAgent(cli.UserAgent),
	)
	var pageFetcher deeptective.Fetcher = dhttp.NewFetcher(dhttp.WithTimeout(cli.Timeout))
	if cli.Verbose {
		searchFetcher = dslog.NewLoggingFetcher(searchFetcher, logger)
		pageFetcher = dslog.NewLoggingFetcher(pageFetcher, logger)
	}

	var resolver deeptective.SearchResolver = goquery.NewSearchResolver(searchFetcher, goquery.WithEndpoint(cli.SearchURL))
	if cli.Verbose {
		resolver = dslog.NewLoggingSearchResolver(resolver, logger)
	}

	p := &scrape.Pipeline{
		Resolver:    resolver,
		Fetcher:     pageFetcher,
		Cleaner:     goquery.NewCleaner(),
		Metadata:    newMetadataExtractor(cli.Metadata),
		Logger:      logger,
		Concurrency: cli.Concurrency,
	}
	if cli.Rate > 0 {
		p.Limiter = scrape.NewDomainLimiter(cli.Rate)
	}
	return p
}

func newMetadataExtractor(name string) deeptective.MetadataExtractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewMetadataExtractor()
	}
}

func defaultDBPath() string {
	if path := os.Getenv("DEEPTECTIVE_DB"); path != "" {
		return path
	}
	return sqlite.MemoryPath
}

func defaultConfigPath() string {
	if path := os.Getenv("DEEPTECTIVE_CONFIG"); path != "" {
		return path
	}
	return "~/.config/deeptective/config.yaml"
}
