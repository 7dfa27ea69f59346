package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hanpama/dyngraph/dynamic"
	"github.com/hanpama/dyngraph/internal/ctxlog"
	"github.com/hanpama/dyngraph/internal/eventbus"
	"github.com/hanpama/dyngraph/internal/exampleapp"
	"github.com/hanpama/dyngraph/internal/otel"
	"github.com/hanpama/dyngraph/internal/protoexport"
	"github.com/hanpama/dyngraph/registry"
)

const rootUsage = `dyngraph - assemble GraphQL schemas from registration units

USAGE:
  dyngraph <command> [flags]

COMMANDS:
  compile-sdl      Build the example application schema and print its SDL
  compile-proto    Generate a .proto file from the example application schema
  help             Show help for any command
`

const commonUsage = `  -log.level <level>       Log level: debug, info, warn, error (default: info)
  -otel.endpoint <addr>    OTLP collector endpoint
  -otel.service <name>     OpenTelemetry service name (default: dyngraph)
`

const compileSDLUsage = `compile-sdl FLAGS:
  -out <file>              Write compiled SDL to file (default: stdout)
` + commonUsage + `  (Validation always runs; exits non-zero on errors)
`

const compileProtoUsage = `compile-proto FLAGS:
  -out <dir>               Output directory for the generated .proto file (required)
  -package <name>          Proto package name (default: dyngraph)
` + commonUsage

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "compile-sdl":
		return cmdCompileSDL(cmdArgs, stdout, stderr)
	case "compile-proto":
		return cmdCompileProto(cmdArgs, stdout, stderr)
	case "help", "-h", "-help", "--help":
		return cmdHelp(cmdArgs, stdout)
	default:
		fmt.Fprint(stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, rootUsage)
		return nil
	}
	switch args[0] {
	case "compile-sdl":
		fmt.Fprint(stdout, compileSDLUsage)
	case "compile-proto":
		fmt.Fprint(stdout, compileProtoUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

// common holds the flags every command accepts.
type common struct {
	logLevel     string
	otelEndpoint string
	otelService  string
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.logLevel, "log.level", "info", "Log level")
	fs.StringVar(&c.otelEndpoint, "otel.endpoint", "", "OTLP collector endpoint")
	fs.StringVar(&c.otelService, "otel.service", "dyngraph", "OpenTelemetry service name")
}

// buildSchema sets up logging and tracing and assembles the example application.
func (c *common) buildSchema(stderr io.Writer) (*dynamic.Schema, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid -log.level %q: %w", c.logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	eventbus.Use(eventbus.New())
	defer eventbus.Use(nil)
	shutdown, err := otel.Setup(c.otelEndpoint, c.otelService)
	if err != nil {
		return nil, fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	ctx := ctxlog.WithLogger(context.Background(), logger)
	s, err := registry.Build(ctx, exampleapp.App())
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	logger.Info("schema built", "types", len(s.Types()))
	return s, nil
}

func cmdCompileSDL(args []string, stdout, stderr io.Writer) error {
	var c common
	outFile := ""
	fs := flag.NewFlagSet("compile-sdl", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	c.register(fs)
	fs.StringVar(&outFile, "out", outFile, "Write compiled SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stderr, compileSDLUsage)
		return err
	}

	s, err := c.buildSchema(stderr)
	if err != nil {
		return err
	}
	if outFile == "" {
		_, err := io.WriteString(stdout, s.SDL())
		return err
	}
	return os.WriteFile(outFile, []byte(s.SDL()), 0644)
}

func cmdCompileProto(args []string, stdout, stderr io.Writer) error {
	var c common
	outDir := ""
	pkg := "dyngraph"
	fs := flag.NewFlagSet("compile-proto", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	c.register(fs)
	fs.StringVar(&outDir, "out", outDir, "Output directory for the generated .proto file")
	fs.StringVar(&pkg, "package", pkg, "Proto package name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stderr, compileProtoUsage)
		return err
	}
	if outDir == "" {
		fmt.Fprint(stderr, compileProtoUsage)
		return fmt.Errorf("-out is required")
	}

	s, err := c.buildSchema(stderr)
	if err != nil {
		return err
	}
	fd, err := protoexport.Build(s, protoexport.Options{Package: pkg})
	if err != nil {
		return fmt.Errorf("proto build: %w", err)
	}
	fp, err := protoexport.WriteFile(fd, outDir)
	if err != nil {
		return fmt.Errorf("render proto: %w", err)
	}
	fmt.Fprintln(stdout, fp)
	return nil
}
