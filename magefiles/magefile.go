//go:build mage

// Package main provides build targets for the moracle project using Mage.
//
// Usage:
//
//	mage build        Compile the moracle binary to bin/
//	mage test         Run all tests
//	mage testRace     Run all tests with the race detector
//	mage cover        Write a coverage profile to bin/coverage.out
//	mage lint         Run golangci-lint
//	mage vet          Run go vet
//	mage clean        Remove build artifacts
//	mage install      Install moracle to GOPATH/bin
package main
