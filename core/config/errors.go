package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil destination.
	ErrNilConfig = errors.New("config: nil destination")

	// ErrParse is returned when environment variables cannot be parsed into the config struct.
	ErrParse = errors.New("config: failed to parse environment")
)
