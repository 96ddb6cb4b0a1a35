// Package application wires the CLI surface to the manifest loader and the
// dotenv plugin: it loads the service manifest, runs the plugin against it,
// and renders the result, keeping the main package focused on flag parsing.
package application
