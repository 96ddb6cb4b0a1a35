package dotenv

// DefaultEnvironment is used when neither the process environment nor the
// invocation options name an environment.
const DefaultEnvironment = "development"

// nodeEnvVar is consulted first for compatibility with hosts that follow the
// NODE_ENV convention.
const nodeEnvVar = "NODE_ENV"

// ResolveEnvironment picks the logical environment name. Precedence, highest
// first: the NODE_ENV process variable, opts.Env, opts.Stage, then
// DefaultEnvironment. The resulting string is accepted unchanged; no
// validation is applied.
func ResolveEnvironment(opts Options) string {
	if env, ok := opts.lookup(nodeEnvVar); ok && env != "" {
		return env
	}
	if opts.Env != "" {
		return opts.Env
	}
	if opts.Stage != "" {
		return opts.Stage
	}
	return DefaultEnvironment
}
