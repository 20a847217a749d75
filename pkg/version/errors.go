package version

import "fmt"

// VersionError reports an invalid version operation: bumping a version
// with no parsed numeric triple, requesting a major or minor bump under
// calendar versioning, or setting a value that fails format validation.
type VersionError struct {
	Reason string
}

func (e *VersionError) Error() string {
	return e.Reason
}

func newVersionErrorf(format string, args ...any) *VersionError {
	return &VersionError{Reason: fmt.Sprintf(format, args...)}
}

// BranchError reports a failure to resolve the current branch name.
type BranchError struct {
	Reason string
	Err    error
}

func (e *BranchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *BranchError) Unwrap() error {
	return e.Err
}
