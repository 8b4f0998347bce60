// Package runtime provides application runtime context for fibstudy.
package runtime

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/tmkelleher/fibstudy/internal/fib"
	"github.com/tmkelleher/fibstudy/internal/logging"
	"github.com/tmkelleher/fibstudy/internal/output"
	"github.com/tmkelleher/fibstudy/internal/planner"
	"github.com/tmkelleher/fibstudy/internal/store"
)

// Context holds the application runtime context: the loaded database,
// the shared Fibonacci sequence, the planner, and the configured
// formatter. The database is persisted back on Close.
type Context struct {
	DB        *store.Database
	Seq       *fib.Sequence
	Planner   *planner.Planner
	Formatter *output.Formatter

	// Path is the data file the database was loaded from. Empty in
	// memory-only mode.
	Path string

	// Debug mode
	Debug bool

	log *slog.Logger
}

// Options configures the runtime context.
type Options struct {
	DataPath  string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DataPath:  store.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("FIBSTUDY_DATA_FILE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DataPath = envPath
		}
	}

	if opts.Debug {
		logging.Init(logging.DebugConfig())
	} else {
		logging.Init(logging.DefaultConfig())
	}
	log := logging.With(logging.KeyRunID, uuid.NewString())

	var (
		db  *store.Database
		err error
	)
	if opts.InMemory {
		db = store.New()
	} else {
		db, err = store.Load(opts.DataPath)
		if err != nil {
			return nil, WrapLoadError(err, opts.DataPath)
		}
		log.Debug("database loaded",
			logging.KeyPath, opts.DataPath, logging.KeyCount, db.Len())
	}

	seq := fib.New()

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	path := opts.DataPath
	if opts.InMemory {
		path = ""
	}

	return &Context{
		DB:        db,
		Seq:       seq,
		Planner:   planner.New(db, seq),
		Formatter: formatter,
		Path:      path,
		Debug:     opts.Debug,
		log:       log,
	}, nil
}

// Close persists the database back to its data file. Memory-only
// contexts close without writing.
func (c *Context) Close() error {
	if c.Path == "" {
		return nil
	}
	if err := store.Save(c.DB, c.Path); err != nil {
		return err
	}
	c.log.Debug("database saved",
		logging.KeyPath, c.Path, logging.KeyCount, c.DB.Len())
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
