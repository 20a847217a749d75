package writefile

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultPattern matches a {{ version }} placeholder. The start group
// captures everything before the placeholder and content everything after
// it, so substitution can walk through a file one placeholder at a time.
const DefaultPattern = `(?s)(?P<start>.*?)\{\{\s*version\s*\}\}(?P<content>.*)`

// semverRE is the published semver grammar without anchors, used to find
// version strings embedded in otherwise arbitrary file content.
var semverRE = regexp.MustCompile(`(?:0|[1-9]\d*)\.(?:0|[1-9]\d*)\.(?:0|[1-9]\d*)(?:-(?:(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+(?:[0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?`)

// Writer substitutes version strings into file content.
type Writer struct {
	pattern *regexp.Regexp
}

// New compiles the placeholder pattern. The pattern must define start and
// content capture groups around the placeholder; see DefaultPattern.
func New(pattern string) (*Writer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling version pattern: %w", err)
	}
	names := re.SubexpNames()
	hasStart, hasContent := false, false
	for _, n := range names {
		switch n {
		case "start":
			hasStart = true
		case "content":
			hasContent = true
		}
	}
	if !hasStart || !hasContent {
		return nil, fmt.Errorf("version pattern %q must define start and content capture groups", pattern)
	}
	return &Writer{pattern: re}, nil
}

// Default returns a Writer for the {{ version }} placeholder.
func Default() *Writer {
	w, err := New(DefaultPattern)
	if err != nil {
		panic(err)
	}
	return w
}

// Substitute replaces every placeholder in content with version. Content
// without a placeholder passes through unchanged.
func (w *Writer) Substitute(content, version string) string {
	start := w.pattern.SubexpIndex("start")
	rest := w.pattern.SubexpIndex("content")

	var buf strings.Builder
	for content != "" {
		// Anchored matching: a mid-string match would drop the text
		// before it.
		m := w.pattern.FindStringSubmatchIndex(content)
		if m == nil || m[0] != 0 {
			buf.WriteString(content)
			break
		}
		buf.WriteString(content[m[2*start]:m[2*start+1]])
		buf.WriteString(version)
		content = content[m[2*rest]:m[2*rest+1]]
	}
	return buf.String()
}

// WriteVersion reads the file at path, substitutes version into every
// placeholder, and writes the result back.
func (w *Writer) WriteVersion(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	out := w.Substitute(string(data), version)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReplaceSemver replaces the first bare semantic version found in the
// file with version. Matches preceded by 'v' or 'V' are skipped so
// v-prefixed tags keep their own convention; files holding no version at
// all are an error.
func ReplaceSemver(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	var match []int
	for _, m := range semverRE.FindAllStringIndex(content, -1) {
		if m[0] > 0 && (content[m[0]-1] == 'v' || content[m[0]-1] == 'V') {
			continue
		}
		match = m
		break
	}
	if match == nil {
		return fmt.Errorf("no semantic version found in %s", path)
	}

	out := content[:match[0]] + version + content[match[1]:]
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
