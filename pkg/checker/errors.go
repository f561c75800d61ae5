package checker

import "errors"

var (
	// ErrConfigParse wraps failures to parse the checker configuration
	// from environment variables.
	ErrConfigParse = errors.New("checker: failed to parse config from env")

	// ErrConfigLoad wraps failures to load dotenv files.
	ErrConfigLoad = errors.New("checker: failed to load env files")
)
