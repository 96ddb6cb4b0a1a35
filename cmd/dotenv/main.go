package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/antontrye/serverless-dotenv-plugin/internal/application"
	"github.com/antontrye/serverless-dotenv-plugin/internal/logging"
)

func main() {
	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatal("dotenv failed", zap.Error(err))
	}
}

// run parses the CLI flags and executes one plugin invocation. Split from
// main so tests can drive it without process exit.
func run(args []string, stdout io.Writer, logger *zap.Logger) error {
	app := kingpin.New("serverless-dotenv", "Injects environment variables from .env files into a serverless service manifest")
	servicePath := app.Flag("service", "Path to the service manifest").Default("serverless.yml").String()
	env := app.Flag("env", "Logical environment name (NODE_ENV still takes precedence)").String()
	stage := app.Flag("stage", "Deployment stage, used when --env is not set").String()
	output := app.Flag("output", "Write the result to this file instead of stdout").String()
	printEnv := app.Flag("print-env", "Print retained KEY=VALUE pairs instead of the manifest").Bool()

	if _, err := app.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg := application.Config{
		ServicePath: *servicePath,
		Env:         *env,
		Stage:       *stage,
		OutputPath:  *output,
		PrintEnv:    *printEnv,
	}
	return application.New(logger, stdout).Run(cfg)
}
