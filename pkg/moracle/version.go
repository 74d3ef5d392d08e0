// Package moracle holds build metadata for the moracle command.
package moracle

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/mesh-intelligence/moracle/pkg/moracle.Version=...".
var Version = "0.1.0"
