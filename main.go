// Package main implements a CLI tool to read version tags from git,
// bump them, and write the result into a new tag or a file.
package main

import "github.com/rca/tagversion/pkg/cli"

func main() {
	cli.Execute(Version)
}
