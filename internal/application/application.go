package application

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/usbconf/internal/config"
	"github.com/eugenenazirov/usbconf/internal/render"
	"github.com/eugenenazirov/usbconf/internal/resolve"
)

// Output describes where and how the resolved constant set is written.
type Output struct {
	Format render.Format
	// Path is the output file; empty or "-" writes to stdout.
	Path string
	// Package is the package name for the Go format.
	Package string
	// Guard is the include guard for the header format.
	Guard string
}

// App runs the resolution pipeline: gather overrides and hints, resolve,
// validate, render. Each run is a single pass; nothing is re-read afterwards.
type App struct {
	cli    *config.CLIOverrides
	output Output
	logger *zap.Logger
	stdout io.Writer
}

// AppOption configures App behaviour.
type AppOption func(*App)

// WithStdout overrides the stdout writer, primarily for tests.
func WithStdout(w io.Writer) AppOption {
	return func(a *App) {
		a.stdout = w
	}
}

// New wires the pipeline dependencies.
func New(cli *config.CLIOverrides, output Output, logger *zap.Logger, opts ...AppOption) *App {
	a := &App{
		cli:    cli,
		output: output,
		logger: logger,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the pipeline. Validation failures abort before anything is
// written, so an inconsistent configuration never produces output.
func (a *App) Run() error {
	overrides, hints, err := config.Load(a.cli)
	if err != nil {
		return fmt.Errorf("load configuration sources: %w", err)
	}

	cfg, err := resolve.Resolve(overrides, hints)
	if err != nil {
		return fmt.Errorf("resolve configuration: %w", err)
	}

	a.logger.Debug("configuration resolved",
		zap.String("mcu", cfg.MCU.String()),
		zap.String("os", cfg.OS.String()),
		zap.Int("debug", cfg.Debug),
		zap.Int("endpoint0_size", cfg.DeviceEndpoint0Size),
		zap.Int("host_device_max", cfg.HostDeviceMax),
	)

	if err := resolve.Validate(cfg); err != nil {
		return fmt.Errorf("validate configuration: %w", err)
	}

	var buf bytes.Buffer
	err = render.Render(&buf, cfg, a.output.Format,
		render.WithPackage(a.output.Package),
		render.WithHeaderGuard(a.output.Guard),
	)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	if err := a.write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	a.logger.Info("configuration written",
		zap.String("format", string(a.output.Format)),
		zap.String("mcu", cfg.MCU.String()),
		zap.String("destination", destination(a.output.Path)),
	)
	return nil
}

func (a *App) write(data []byte) error {
	if a.output.Path == "" || a.output.Path == "-" {
		_, err := a.stdout.Write(data)
		return err
	}
	return os.WriteFile(a.output.Path, data, 0o644)
}

func destination(path string) string {
	if path == "" || path == "-" {
		return "stdout"
	}
	return path
}
