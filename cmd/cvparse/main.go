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
	"github.com/fwojciec/cvparse"
	"github.com/fwojciec/cvparse/batch"
	"github.com/fwojciec/cvparse/bloom"
	"github.com/fwojciec/cvparse/excelize"
	"github.com/fwojciec/cvparse/fs"
	"github.com/fwojciec/cvparse/pdf"
	cvslog "github.com/fwojciec/cvparse/slog"
	"github.com/fwojciec/cvparse/sqlite"
	"github.com/fwojciec/cvparse/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Expected number of distinct documents in one run, used to size the
// duplicate filter.
const expectedDocuments = 10000

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cvparse"),
		kong.Description("Parse two-column profile PDFs into structured records."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cvparse --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Global flags may precede the command, so ask kong which one was chosen.
	parse := strings.HasPrefix(kongCtx.Command(), "parse")

	// Only commands that touch stored records need the database.
	if !parse || cli.Parse.Store {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CVPARSE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.DB = m.DB
		deps.Records = cvslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), deps.Logger)
	}

	if parse {
		runner, err := m.newRunner(&cli.Parse, deps)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", cvparse.ErrorMessage(err))
			return err
		}
		deps.Runner = runner
	}

	return kongCtx.Run(deps)
}

// newRunner wires the extraction pipeline and output stores for a parse run.
func (m *Main) newRunner(c *ParseCmd, deps *Dependencies) (*batch.Runner, error) {
	layout := cvparse.DefaultLayout()
	if c.Layout != "" {
		var err error
		if layout, err = yaml.LoadLayout(c.Layout); err != nil {
			return nil, err
		}
	}

	out := filepath.Clean(c.Out)
	stores := []cvparse.RecordStore{fs.NewFileStore(filepath.Dir(out), filepath.Base(out))}
	if c.XLSX != "" {
		stores = append(stores, excelize.NewWorkbook(c.XLSX))
	}

	runner := &batch.Runner{
		Extractor:   cvslog.NewLoggingExtractor(pdf.NewExtractor(), deps.Logger),
		Parser:      cvslog.NewLoggingParser(cvparse.NewParser(layout), deps.Logger),
		Stores:      stores,
		Duplicates:  bloom.NewFilter(expectedDocuments, 0.001),
		Concurrency: c.Concurrency,
	}
	if c.Store {
		runner.Records = deps.Records
	}
	return runner, nil
}

func defaultDBPath() string {
	if path := os.Getenv("CVPARSE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cvparse.db"
	}
	dir := filepath.Join(home, ".cvparse")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cvparse.db")
}
