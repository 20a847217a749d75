// Package gitver reads and writes version tags in a git repository. It
// answers what HEAD describes as, what branch is checked out, and whether
// the working tree is clean, and it creates tags. Everything goes through
// go-git so no git binary is required.
package gitver
