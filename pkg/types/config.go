package types

import "errors"

// Config selects the card store backend and where it keeps its files.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	// DataDir holds the card files and the query database. Empty means the
	// current directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`
	// Rebuild forces the query database to be rebuilt from the card files
	// on Attach even when it looks current.
	Rebuild bool `json:"rebuild,omitempty" yaml:"rebuild,omitempty"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate returns ErrBackendEmpty or ErrBackendUnknown for an unusable
// backend name.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
