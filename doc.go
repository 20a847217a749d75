// Package main implements the tagversion CLI tool.
//
// tagversion derives the current version from the nearest git tag (the
// `git describe --tags --always` convention), optionally appending the
// branch name when the working tree is not exactly on a tag. It bumps
// major, minor, patch, and release candidate components under semantic
// or calendar versioning rules, writes the result back as a new tag, and
// substitutes it into files through a {{ version }} placeholder.
//
// Command Usage:
//
//	tagversion [global flags] <command> [flags]
//
// Commands:
//
//	version    get and set the git version tag
//	write      write the current version into a file
//
// Examples:
//
//	# Print the current version, e.g. 0.1.27-16-g5befeb2-main
//	tagversion version
//
//	# Bump the patch version (e.g. 0.1.27 → 0.1.28) and tag it
//	tagversion version --bump
//
//	# Bump the minor version and enter a release candidate: 0.2.0rc1
//	tagversion version --bump --minor --prerelease
//
//	# Advance an existing release candidate: 0.2.0rc1 → 0.2.0rc2
//	tagversion version --bump --prerelease
//
//	# Tag an explicit version with an annotation message
//	tagversion version --set 1.0.0 -m "first stable release"
//
//	# Calendar versioning: tag 202309.15.0 on a new day, or bump the
//	# trailing counter within the same day
//	tagversion version --bump --calver
//
//	# Verify the current tag is a semantic version, or exit 1
//	tagversion version --semver
//
//	# Substitute the version into a file holding a {{ version }} marker
//	tagversion write setup.py
//
// Defaults for the calver format, the write pattern, the tag message,
// and branch appending can be placed in a .tagversion.yaml file in the
// working directory or the home directory.
package main
