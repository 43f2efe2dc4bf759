package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ldraw"
	"github.com/fwojciec/ldraw/build"
	"github.com/fwojciec/ldraw/etree"
	"github.com/fwojciec/ldraw/fs"
	"github.com/fwojciec/ldraw/json"
	ldslog "github.com/fwojciec/ldraw/slog"
	"github.com/fwojciec/ldraw/sqlite"
	"github.com/fwojciec/ldraw/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", ldraw.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database opened when --db is given.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("ldrparse"),
		kong.Description("Parse an LDraw model and every part it references."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"version": ldraw.Version},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no model specified. Run 'ldrparse --help' for usage")
	}

	// Help and version print and stop before positionals are required.
	for _, flag := range []string{"--help", "-h", "--version"} {
		if slices.Contains(args, flag) {
			_, _ = parser.Parse([]string{flag})
			return nil
		}
	}

	kongCtx, err := parser.Parse(splitShortValues(args))
	if err != nil {
		return err
	}

	skip, err := parseSkip(cli.Skip)
	if err != nil {
		return err
	}
	cfg := ldraw.NewConfig(
		ldraw.WithSkip(skip),
		ldraw.WithLogLevel(cli.LogLevel),
		ldraw.WithConcurrency(cli.Concurrency),
	)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cli.Profile != "" {
		p, err := startProfile(cli.Profile, cli.ProfilePath)
		if err != nil {
			return err
		}
		defer p.Stop()
	}

	logger := slog.New(ldslog.NewHandler(stderr, cli.LogLevel))
	deps.Logger = logger

	builder := build.NewBuilder(
		ldslog.NewLoggingResolver(fs.NewResolver(cli.Library), logger),
		fs.NewSource(),
		cfg,
	)
	builder.Logger = logger
	builder.NewCache = func() ldraw.PartCache {
		return ldslog.NewLoggingPartCache(build.NewCache(), logger)
	}
	deps.Parser = ldslog.NewLoggingModelParser(builder, logger)
	deps.Encoder = newEncoder(cli.Output, cli.Minify)

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Models = sqlite.NewModelService(m.DB)
	}

	return kongCtx.Run(deps)
}

// splitShortValues rewrites short options written as "-s=TRI" into "-s"
// "TRI". Kong only accepts the "=" form for long flags. Arguments after "--"
// are left alone.
func splitShortValues(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' && arg[2] == '=' {
			out = append(out, arg[:2], arg[3:])
			continue
		}
		out = append(out, arg)
	}
	return out
}

// newEncoder returns the encoder for an output format name.
func newEncoder(format string, minify bool) ldraw.Encoder {
	switch format {
	case "yaml":
		return yaml.NewEncoder(minify)
	case "xml":
		return etree.NewEncoder(minify)
	default:
		return json.NewEncoder(minify)
	}
}
