// Package manifest models the serverless service manifest (serverless.yml):
// the provider environment, the function records, and the custom.dotenv
// configuration block. It loads and validates the YAML document and exposes a
// typed, immutable snapshot of the dotenv settings to the loading pipeline.
package manifest
