// Package plugin wires the env-file pipeline into a service manifest the way
// the host framework drives a plugin: construction resolves, loads, filters
// and applies the variables in one synchronous pass.
package plugin

import (
	"maps"
	"sort"
	"strings"

	"github.com/antontrye/serverless-dotenv-plugin/internal/dotenv"
	"github.com/antontrye/serverless-dotenv-plugin/internal/manifest"
)

// Logger is the single-line message sink the plugin reports through. Log
// receives informational lines, Error the failure reports.
type Logger interface {
	Log(msg string)
	Error(msg string)
}

// NopLogger discards every line.
type NopLogger struct{}

// Log implements Logger.
func (NopLogger) Log(string) {}

// Error implements Logger.
func (NopLogger) Error(string) {}

// Plugin injects environment variables from .env files into a service
// manifest. All work happens in New; the instance afterwards only answers
// questions about what was done.
type Plugin struct {
	service *manifest.Service
	cfg     dotenv.Config
	log     Logger

	env      string
	resolved []string
	applied  map[string]string
}

// New constructs the plugin and immediately runs the pipeline against the
// service, mutating its environment maps in place. The only error returned is
// dotenv.ErrEnvFileRequired; parse and expansion failures are reported
// through the logger's error channel and swallowed, leaving the manifest
// untouched by that call. The transition happens exactly once: a Plugin is
// never re-run.
func New(service *manifest.Service, opts dotenv.Options, log Logger) (*Plugin, error) {
	if log == nil {
		log = NopLogger{}
	}

	p := &Plugin{
		service: service,
		cfg:     service.DotenvConfig(),
		log:     log,
		applied: map[string]string{},
	}
	p.env = dotenv.ResolveEnvironment(opts)

	if err := p.loadEnv(); err != nil {
		return nil, err
	}
	return p, nil
}

// Environment returns the resolved logical environment name.
func (p *Plugin) Environment() string {
	return p.env
}

// ResolvedFiles returns the env files the pipeline decided to load, most
// specific first.
func (p *Plugin) ResolvedFiles() []string {
	return append([]string(nil), p.resolved...)
}

// Applied returns a copy of the key/value pairs that survived filtering and
// were written into the manifest.
func (p *Plugin) Applied() map[string]string {
	return maps.Clone(p.applied)
}

func (p *Plugin) loadEnv() error {
	p.resolved = dotenv.NewResolver(p.cfg, nil).EnvFileNames(p.env)

	if len(p.resolved) == 0 {
		if p.cfg.RequiredFile {
			return dotenv.ErrEnvFileRequired
		}
		if p.cfg.Logging {
			p.log.Log(dotenv.MissingFileMessage)
		}
		return nil
	}

	merged, err := dotenv.Load(p.resolved)
	if err != nil {
		p.reportFailure(err)
		return nil
	}

	retained := dotenv.Filter(merged, p.cfg.Include, p.cfg.Exclude)
	if p.cfg.Logging {
		p.logRetained(retained)
	}

	p.apply(retained)
	return nil
}

// logRetained emits the header naming the loaded files in reverse resolution
// order (least specific first), then one line per retained key. The reversal
// is cosmetic; merge precedence is decided by the fold in Load. Values never
// reach the log.
func (p *Plugin) logRetained(retained map[string]string) {
	reversed := make([]string, len(p.resolved))
	for i, file := range p.resolved {
		reversed[len(p.resolved)-1-i] = file
	}
	p.log.Log("DOTENV: Loading environment variables from " + strings.Join(reversed, ", ") + ":")

	keys := make([]string, 0, len(retained))
	for key := range retained {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p.log.Log("\t - " + key)
	}
}

func (p *Plugin) apply(retained map[string]string) {
	p.applied = maps.Clone(retained)
	if p.applied == nil {
		p.applied = map[string]string{}
	}

	if p.cfg.Separate {
		p.applySeparate(retained)
		return
	}

	if p.service.Provider.Environment == nil {
		p.service.Provider.Environment = make(map[string]string, len(retained))
	}
	for key, value := range retained {
		p.service.Provider.Environment[key] = value
	}
}

// applySeparate routes variables into the environment of each function that
// declared a whitelist. Whitelisted keys that no file produced are still
// written, with an absent value, so the declaration stays visible in the
// rendered manifest. The provider environment is left alone.
func (p *Plugin) applySeparate(retained map[string]string) {
	for _, fn := range p.service.Functions {
		if fn == nil || fn.Dotenv == nil || len(fn.Dotenv.Environment) == 0 {
			continue
		}
		if fn.Environment == nil {
			fn.Environment = make(map[string]*string, len(fn.Dotenv.Environment))
		}
		for _, key := range fn.Dotenv.Environment {
			if value, ok := retained[key]; ok {
				v := value
				fn.Environment[key] = &v
			} else {
				fn.Environment[key] = nil
			}
		}
	}
}

func (p *Plugin) reportFailure(err error) {
	p.log.Error("DOTENV: Failed to load environment variables:")
	p.log.Error("  " + err.Error())
}
