package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/antontrye/serverless-dotenv-plugin/internal/dotenv"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunPrintsEnvPairs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, ".env", "GREETING=hello\n")
	servicePath := writeFile(t, dir, "serverless.yml", `
provider:
  name: aws
custom:
  dotenv:
    basePath: `+dir+`/
    logging: false
`)

	var stdout bytes.Buffer
	args := []string{"--service", servicePath, "--env", "staging", "--print-env"}
	if err := run(args, &stdout, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if want := "GREETING=hello\n"; stdout.String() != want {
		t.Fatalf("expected %q, got %q", want, stdout.String())
	}
}

func TestRunRendersManifestByDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, ".env", "GREETING=hello\n")
	servicePath := writeFile(t, dir, "serverless.yml", `
provider:
  name: aws
custom:
  dotenv:
    basePath: `+dir+`/
    logging: false
`)

	var stdout bytes.Buffer
	args := []string{"--service", servicePath, "--env", "staging"}
	if err := run(args, &stdout, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "GREETING: hello") {
		t.Fatalf("expected environment in rendered manifest:\n%s", stdout.String())
	}
}

func TestRunPropagatesHaltError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	servicePath := writeFile(t, dir, "serverless.yml", `
provider:
  name: aws
custom:
  dotenv:
    basePath: `+dir+`/
    required:
      file: true
`)

	err := run([]string{"--service", servicePath}, &bytes.Buffer{}, zaptest.NewLogger(t))
	if !errors.Is(err, dotenv.ErrEnvFileRequired) {
		t.Fatalf("expected ErrEnvFileRequired, got %v", err)
	}
}

func TestRunRejectsUnknownFlags(t *testing.T) {
	t.Parallel()

	if err := run([]string{"--bogus"}, &bytes.Buffer{}, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected flag parse error")
	}
}
