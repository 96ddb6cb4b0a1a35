package dotenv

import "os"

// StatFunc reports whether a file exists at path.
type StatFunc func(path string) bool

// Resolver computes the ordered list of env files to load for an environment.
type Resolver struct {
	cfg  Config
	stat StatFunc
}

// NewResolver builds a resolver over the given snapshot. A nil stat falls back
// to a plain os.Stat existence check.
func NewResolver(cfg Config, stat StatFunc) *Resolver {
	if stat == nil {
		stat = fileExists
	}
	return &Resolver{cfg: cfg, stat: stat}
}

// EnvFileNames returns the env files to load, most specific first.
//
// An explicit Paths override is returned verbatim and short-circuits all
// default-candidate logic: no BasePath prefix, no existence filtering. The
// default candidates are .env.<env>.local, .env.<env>, .env.local and .env,
// each prefixed with BasePath and kept only if it exists on disk. The
// .env.local slot is omitted for the test environment so that test runs stay
// reproducible across machines regardless of user-local overrides.
func (r *Resolver) EnvFileNames(env string) []string {
	if len(r.cfg.Paths) > 0 {
		return append([]string(nil), r.cfg.Paths...)
	}

	candidates := []string{".env." + env + ".local", ".env." + env}
	if env != "test" {
		candidates = append(candidates, ".env.local")
	}
	candidates = append(candidates, ".env")

	resolved := make([]string, 0, len(candidates))
	for _, name := range candidates {
		path := r.cfg.BasePath + name
		if r.stat(path) {
			resolved = append(resolved, path)
		}
	}
	return resolved
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
