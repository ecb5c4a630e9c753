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
	"github.com/fwojciec/codehunter"
	"github.com/fwojciec/codehunter/demo"
	"github.com/fwojciec/codehunter/fs"
	"github.com/fwojciec/codehunter/regexp2"
	chslog "github.com/fwojciec/codehunter/slog"
	"github.com/fwojciec/codehunter/sqlite"
	"github.com/fwojciec/codehunter/zip"
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
	// Database path for the sqlite backend. Set before calling Run().
	DBPath string

	// Directory for the fs backend. Set before calling Run().
	StoreDir string

	// SQLite database, open only when the sqlite backend is selected.
	DB *sqlite.DB

	// History service for end-to-end testing.
	History codehunter.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultPath("CODEHUNTER_DB", "codehunter.db"),
		StoreDir: defaultPath("CODEHUNTER_STORE", "store"),
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

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("codehunter"),
		kong.Description("Extract, browse and export website source code."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'codehunter --help' to see available commands")
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
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	storage, err := m.openStorage(cli, stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	history := codehunter.NewHistory(
		chslog.NewLoggingStorage(storage, deps.Logger),
		codehunter.HistoryConfig{MaxEntries: cli.MaxHistory},
	)
	if _, err := history.Load(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", codehunter.ErrorMessage(err))
		return err
	}
	m.History = history
	deps.History = history

	// Wire command-specific dependencies based on command
	switch cmd {
	case "extract":
		deps.Extractor = chslog.NewLoggingExtractor(demo.NewExtractor(demo.WithDelay(cli.Extract.Delay)), deps.Logger)
	case "show":
		deps.Painter = regexp2.NewPainter()
	case "export":
		deps.Archiver = zip.NewArchiver()
	case "ask":
		deps.Asker = chslog.NewLoggingAsker(demo.NewAsker(demo.WithDelay(cli.Ask.Delay)), deps.Logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openStorage(cli *CLI, stderr io.Writer) (codehunter.Storage, error) {
	if cli.Backend == BackendFS {
		if cli.StoreDir != "" {
			m.StoreDir = cli.StoreDir
		}
		return fs.NewStorage(m.StoreDir), nil
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if m.DBPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CODEHUNTER_DB or --db to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return sqlite.NewStorage(m.DB), nil
}

// defaultPath returns the value of env if set, otherwise name inside
// ~/.codehunter.
func defaultPath(env, name string) string {
	if path := os.Getenv(env); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".codehunter", name)
}
