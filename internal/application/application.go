package application

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/antontrye/serverless-dotenv-plugin/internal/dotenv"
	"github.com/antontrye/serverless-dotenv-plugin/internal/manifest"
	"github.com/antontrye/serverless-dotenv-plugin/internal/plugin"
)

// Config describes one CLI invocation.
type Config struct {
	// ServicePath locates the service manifest to load.
	ServicePath string
	// Env and Stage feed environment-name resolution; NODE_ENV still wins.
	Env   string
	Stage string
	// OutputPath receives the result; empty means stdout.
	OutputPath string
	// PrintEnv renders the retained KEY=VALUE pairs instead of the manifest.
	PrintEnv bool
}

// App runs the plugin against a service manifest and renders the outcome.
type App struct {
	logger *zap.Logger
	stdout io.Writer
}

// New builds the application. A nil stdout defaults to os.Stdout.
func New(logger *zap.Logger, stdout io.Writer) *App {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &App{logger: logger, stdout: stdout}
}

// Run loads the manifest, constructs the plugin (which injects the variables
// synchronously), and writes either the mutated manifest or the retained
// environment pairs. The only plugin error that reaches here is the fatal
// missing-required-file one.
func (a *App) Run(cfg Config) error {
	service, err := manifest.Load(cfg.ServicePath)
	if err != nil {
		return fmt.Errorf("load service manifest: %w", err)
	}

	opts := dotenv.Options{Env: cfg.Env, Stage: cfg.Stage}
	p, err := plugin.New(service, opts, zapSink{logger: a.logger})
	if err != nil {
		return fmt.Errorf("dotenv: %w", err)
	}

	var out []byte
	if cfg.PrintEnv {
		out = []byte(formatEnvLines(p.Applied()))
	} else {
		out, err = service.Encode()
		if err != nil {
			return err
		}
	}

	if cfg.OutputPath == "" {
		_, err = a.stdout.Write(out)
		return err
	}
	return os.WriteFile(cfg.OutputPath, out, 0o644)
}

// formatEnvLines renders the applied variables as sorted KEY=VALUE lines for
// shell consumption.
func formatEnvLines(env map[string]string) string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(env[key])
		b.WriteByte('\n')
	}
	return b.String()
}

// zapSink adapts the plugin's single-line message sink onto a zap logger.
type zapSink struct {
	logger *zap.Logger
}

func (s zapSink) Log(msg string) {
	s.logger.Info(msg)
}

func (s zapSink) Error(msg string) {
	s.logger.Error(msg)
}
