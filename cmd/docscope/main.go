package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docscope"
	"github.com/fwojciec/docscope/catalog"
	"github.com/fwojciec/docscope/detect"
	"github.com/fwojciec/docscope/gemini"
	docslog "github.com/fwojciec/docscope/slog"
	"github.com/fwojciec/docscope/sqlite"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	EcosystemService docscope.EcosystemService
	DocSourceService docscope.DocSourceService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscope"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docscope --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSCOPE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.EcosystemService = sqlite.NewEcosystemService(m.DB)
	m.DocSourceService = sqlite.NewDocSourceService(m.DB)
	deps.DB = m.DB
	deps.Ecosystems = m.EcosystemService
	deps.Sources = m.DocSourceService

	// Wire Gemini-backed dependencies only for commands that need them
	needsDetector := cmd == "detect" || cmd == "eval"
	needsEmbedder := needsDetector || (cmd == "seed" && cli.Seed.Embed)

	if needsEmbedder {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst)
		deps.Embedder = gemini.NewEmbedder(client, "", limiter)

		if needsDetector {
			cache := &catalog.Cache{
				Ecosystems: deps.Ecosystems,
				Sources:    deps.Sources,
				Logger:     logger,
			}
			completer := gemini.NewCompleter(client, "", limiter)
			pipeline := detect.NewPipeline(cache, deps.Embedder, completer, logger)
			deps.Detector = docslog.NewLoggingDetector(pipeline, logger)
		}
	}

	return kongCtx.Run(deps)
}

// Client-side limit on outbound Gemini calls, shared by the embedder and the
// completer.
const requestsPerSecond = 2
const requestBurst = 4

func defaultDBPath() string {
	if path := os.Getenv("DOCSCOPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docscope.db"
	}
	dir := filepath.Join(home, ".docscope")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docscope.db")
}
