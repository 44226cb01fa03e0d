package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescope"
	"github.com/fwojciec/pagescope/crawl"
	"github.com/fwojciec/pagescope/fs"
	"github.com/fwojciec/pagescope/gemini"
	"github.com/fwojciec/pagescope/goquery"
	"github.com/fwojciec/pagescope/htmltomarkdown"
	pshttp "github.com/fwojciec/pagescope/http"
	"github.com/fwojciec/pagescope/json"
	"github.com/fwojciec/pagescope/readability"
	"github.com/fwojciec/pagescope/rod"
	psslog "github.com/fwojciec/pagescope/slog"
	"github.com/fwojciec/pagescope/sqlite"
	"github.com/fwojciec/pagescope/trafilatura"
	"github.com/fwojciec/pagescope/yaml"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path of the page cache. Set before calling Run().
	DBPath string

	// GeminiAPIKey enables the rank command and token budgets.
	GeminiAPIKey string

	// SQLite database used by the page cache.
	DB *sqlite.DB

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagescope"),
		kong.Description("Extract headings, links, media and texts from scoped regions of HTML pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagescope --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.wire(deps, cli, kongCtx.Command()); err != nil {
		return err
	}
	return kongCtx.Run(deps)
}

// wire builds the services the parsed command needs.
func (m *Main) wire(deps *Dependencies, cli *CLI, command string) error {
	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(deps.Stderr, nil))
	}

	deps.Format = cli.Format
	switch cli.Format {
	case "json":
		deps.Encoder = json.NewEncoder()
	case "yaml":
		deps.Encoder = yaml.NewEncoder()
	}

	deps.Parser = goquery.NewParser()
	deps.NewConverter = func(domain string) pagescope.Converter {
		c := htmltomarkdown.NewConverter()
		c.Domain = domain
		return c
	}
	deps.Sitemaps = pshttp.NewSitemapService(nil)
	deps.NewStore = func(dir string) pagescope.ReportStore {
		enc := deps.Encoder
		if enc == nil {
			enc = json.NewEncoder()
		}
		dir = filepath.Clean(dir)
		return fs.NewReportStore(filepath.Dir(dir), filepath.Base(dir), enc)
	}

	if cli.Auto {
		deps.Detector = goquery.NewDetector()
	}
	switch cli.Extractor {
	case "trafilatura":
		deps.Extractor = trafilatura.NewExtractor()
	case "readability":
		deps.Extractor = readability.NewExtractor()
	}

	var pages *sqlite.PageService
	if !cli.NoCache || strings.HasPrefix(command, "cache") {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set PAGESCOPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open page cache at %q: %w", m.DBPath, err)
		}
		m.closers = append(m.closers, m.DB)
		pages = sqlite.NewPageService(m.DB)
		deps.Cache = pages
	}

	if !strings.HasPrefix(command, "cache") {
		fetcher, err := m.fetcher(deps, cli)
		if err != nil {
			return err
		}
		if !cli.NoCache {
			fetcher = &crawl.CachingFetcher{
				Fetcher: fetcher,
				Pages:   pages,
				MaxAge:  cli.CacheMaxAge,
			}
		}
		deps.Fetcher = fetcher
	}

	if strings.HasPrefix(command, "rank") || (strings.HasPrefix(command, "texts") && cli.Texts.MaxTokens > 0) {
		if err := m.wireGemini(deps); err != nil {
			return err
		}
	}

	if logger != nil {
		m.decorate(deps, logger)
	}

	if strings.HasPrefix(command, "scrape") {
		scraper := &crawl.Scraper{
			Fetcher:     deps.Fetcher,
			Parser:      deps.Parser,
			Extractor:   deps.Extractor,
			Detector:    deps.Detector,
			RateLimiter: crawl.NewDomainLimiter(cli.Scrape.RPS),
			Concurrency: cli.Scrape.Concurrency,
			UniqueLinks: cli.Scrape.UniqueLinks,
		}
		deps.Scraper = scraper
		if logger != nil {
			scraper.OnRetry = func(url string, attempt int, err error) {
				logger.Warn("retrying fetch", "url", url, "attempt", attempt, "err", err)
			}
			deps.Scraper = psslog.NewLoggingScraper(scraper, logger)
		}
	}
	return nil
}

// fetcher returns the fetcher selected by --render.
func (m *Main) fetcher(deps *Dependencies, cli *CLI) (pagescope.Fetcher, error) {
	httpFetcher := pshttp.NewFetcher(pshttp.WithTimeout(cli.Timeout))
	if cli.Render == "none" {
		return httpFetcher, nil
	}

	browser, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	m.closers = append(m.closers, browser)

	if cli.Render == "browser" {
		return browser, nil
	}
	extractor := deps.Extractor
	if extractor == nil {
		extractor = trafilatura.NewExtractor()
	}
	return &crawl.AutoFetcher{Prober: &crawl.Prober{
		HTTP:      httpFetcher,
		Browser:   browser,
		Extractor: extractor,
	}}, nil
}

func (m *Main) wireGemini(deps *Dependencies) error {
	if m.GeminiAPIKey == "" {
		fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return pagescope.Errorf(pagescope.EINVALID, "GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
		APIKey:  m.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	deps.Retriever = gemini.NewRetriever(client, "")

	tokens, err := gemini.NewTokenCounter("")
	if err != nil {
		return fmt.Errorf("failed to create token counter: %w", err)
	}
	deps.Tokens = tokens
	return nil
}

// decorate wraps the wired services with logging.
func (m *Main) decorate(deps *Dependencies, logger *slog.Logger) {
	if deps.Fetcher != nil {
		deps.Fetcher = psslog.NewLoggingFetcher(deps.Fetcher, logger)
	}
	if deps.Extractor != nil {
		deps.Extractor = psslog.NewLoggingExtractor(deps.Extractor, logger)
	}
	if deps.Detector != nil {
		deps.Detector = psslog.NewLoggingContentDetector(deps.Detector, logger)
	}
	if deps.Retriever != nil {
		deps.Retriever = psslog.NewLoggingRetriever(deps.Retriever, logger)
	}
	deps.Sitemaps = psslog.NewLoggingSitemapService(deps.Sitemaps, logger)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGESCOPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagescope.db"
	}
	dir := filepath.Join(home, ".pagescope")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cache.db")
}
