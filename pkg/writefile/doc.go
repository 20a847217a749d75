// Package writefile persists version strings into files, either by
// substituting a {{ version }} placeholder (the pattern is overridable)
// or by replacing the first bare semantic version a file already holds.
package writefile
