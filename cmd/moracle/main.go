// Package main is the entry point for the moracle CLI.
package main

import "github.com/mesh-intelligence/moracle/internal/cli"

func main() {
	cli.Execute()
}
