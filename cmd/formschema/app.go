package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-formschema/internal/config"
	internalLoader "github.com/goliatone/go-formschema/internal/loader"
	"github.com/goliatone/go-formschema/internal/output"
	"github.com/goliatone/go-formschema/pkg/container"
	"github.com/goliatone/go-formschema/pkg/renderers/tui"
	"github.com/goliatone/go-formschema/pkg/schema"
)

// app carries what every command needs. Fields set before Execute are kept;
// the rest are filled in by the root command's pre-run.
type app struct {
	out     io.Writer
	errOut  io.Writer
	printer *output.Printer
	cfg     *config.Config
	logger  *slog.Logger
	loader  schema.Loader
	driver  tui.PromptDriver

	configPath string
	verbose    bool
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:     out,
		errOut:  errOut,
		printer: output.New(out, errOut),
	}
}

// setup resolves configuration, logging and the loader once flags are parsed.
func (a *app) setup() error {
	a.printer.SetVerbose(a.verbose)

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.File != "" {
		a.printer.Verbose("using config " + cfg.File)
	}

	if a.loader == nil {
		a.loader = internalLoader.New(schema.NewLoaderOptions())
	}
	if a.driver == nil {
		a.driver = tui.NewSurveyDriver(a.errOut)
	}
	return nil
}

func (a *app) document(ctx context.Context, location string) (schema.Document, error) {
	src, err := schema.ParseSource(strings.TrimSpace(location))
	if err != nil {
		return schema.Document{}, err
	}
	a.logger.Debug("loading document", slog.String("location", src.Location()))
	return a.loader.Load(ctx, src)
}

func (a *app) container(ctx context.Context, location string) (*container.Container, error) {
	doc, err := a.document(ctx, location)
	if err != nil {
		return nil, err
	}
	return container.FromDocument(doc, a.cfg.ContainerOptions()...)
}

// writeResult sends data to path, or to stdout when path is empty.
func (a *app) writeResult(path string, data []byte) error {
	if path == "" {
		_, err := a.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.printer.Success("wrote " + path)
	return nil
}

func run(args []string, a *app) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	if err := cmd.Execute(); err != nil {
		a.printer.Error(err.Error())
		return 1
	}
	return 0
}
