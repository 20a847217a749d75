package main

// Version of the tagversion CLI itself, replaced at release time by
// `tagversion write --bare-semver version.go`.
var Version = "1.0.0"
