// Package dotenv implements the env-file resolution pipeline: picking the
// logical environment name, computing the ordered list of .env files for it,
// parsing and merging those files, and filtering the merged keys through
// include/exclude lists. It performs no logging and never mutates the service
// manifest; applying the result is the plugin package's job.
package dotenv
