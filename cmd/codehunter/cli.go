package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/codehunter"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	History   codehunter.HistoryService
	Extractor codehunter.Extractor
	Painter   codehunter.Painter
	Asker     codehunter.Asker
	Archiver  codehunter.Archiver
}

// Storage backends selectable with --backend.
const (
	BackendSQLite = "sqlite"
	BackendFS     = "fs"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB         string `name:"db" help:"SQLite database path (default: env CODEHUNTER_DB or ~/.codehunter/codehunter.db)"`
	StoreDir   string `name:"store-dir" help:"Directory for the fs backend (default: env CODEHUNTER_STORE or ~/.codehunter/store)"`
	Backend    string `enum:"sqlite,fs" default:"sqlite" help:"History storage backend (sqlite, fs)"`
	MaxHistory int    `name:"max-history" env:"CODEHUNTER_MAX_HISTORY" default:"20" help:"Maximum number of history entries kept"`
	Debug      bool   `help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract source files from a website"`
	History HistoryCmd `cmd:"" help:"List past extractions, most recent first"`
	Show    ShowCmd    `cmd:"" help:"Show the files of a past extraction"`
	Remove  RemoveCmd  `cmd:"" help:"Remove an extraction from history"`
	Clear   ClearCmd   `cmd:"" help:"Remove all extractions from history"`
	Export  ExportCmd  `cmd:"" help:"Write the files of an extraction to a ZIP archive"`
	Ask     AskCmd     `cmd:"" help:"Ask the code assistant a question"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL   string        `arg:"" help:"Website URL"`
	Delay time.Duration `default:"3s" help:"Simulated extraction time"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"History entry ID"`
	File   string `short:"f" help:"Show only the file with this name"`
	Search string `short:"s" help:"Show only files whose name or content contains this text"`
	Raw    bool   `help:"Print file content without syntax markup"`
}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	ID string `arg:"" help:"History entry ID"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm clearing the history"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID     string `arg:"" help:"History entry ID"`
	Output string `short:"o" help:"Archive path (default: extracted-code-<date>.zip)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string        `arg:"" help:"Question about the extracted code"`
	ID       string        `help:"History entry whose files give the question context"`
	Delay    time.Duration `default:"1s" help:"Simulated thinking time"`
}
