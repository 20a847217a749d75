// Package cli wires the tagversion commands: version (get, bump, set,
// and tag versions derived from git tags) and write (substitute the
// current version into a file). It loads defaults from an optional
// .tagversion.yaml, configures logging once, and maps errors from the
// version core and its git/file collaborators onto process exit codes.
package cli
