package config

import "errors"

// ErrNoDotEnv is returned together with a usable Config when no .env file
// was found.
var ErrNoDotEnv = errors.New("no .env file found")
