package dotenv

import "os"

// Config is an immutable snapshot of the custom.dotenv block of a service
// manifest. The pipeline depends only on these fields, never on the live
// manifest object.
type Config struct {
	// Paths, when non-empty, overrides all default candidate logic: the listed
	// files are used verbatim, unprefixed and without existence checks.
	Paths []string
	// BasePath is concatenated in front of each default candidate as-is. It is
	// not path-joined; include a trailing separator if one is wanted.
	BasePath string
	// Include, when set, keeps only the listed keys and disables Exclude
	// entirely. A set-but-empty list therefore drops every key.
	Include []string
	// Exclude, when set and Include is not, drops the listed keys.
	Exclude []string
	// Separate routes variables into per-function environment maps instead of
	// the provider-wide one.
	Separate bool
	// RequiredFile makes an empty resolution fatal.
	RequiredFile bool
	// Logging enables the informational lines naming loaded files and keys.
	Logging bool
}

// LookupFunc reports a process environment variable, os.LookupEnv-shaped.
type LookupFunc func(key string) (string, bool)

// Options carries the per-invocation inputs that influence environment-name
// resolution. Lookup may be left nil to consult the real process environment.
type Options struct {
	Env    string
	Stage  string
	Lookup LookupFunc
}

func (o Options) lookup(key string) (string, bool) {
	if o.Lookup != nil {
		return o.Lookup(key)
	}
	return os.LookupEnv(key)
}
