package dotenv

import "errors"

// MissingFileMessage is the exact line reported when no env file resolves,
// whether that outcome is fatal or merely informational.
const MissingFileMessage = "DOTENV: Could not find .env file."

var (
	// ErrEnvFileRequired is returned when required.file is set and no env file
	// could be resolved. It must propagate out of plugin construction and abort
	// the host operation.
	ErrEnvFileRequired = errors.New(MissingFileMessage)
)
