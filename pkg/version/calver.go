package version

import (
	"strconv"
	"strings"
	"time"
)

// DefaultCalverFormat is the calendar version format used when none is
// configured: year and month concatenated, a dot, then the day.
const DefaultCalverFormat = "%Y%m.%d"

// calverLayout translates a strftime-style calendar format into a Go time
// layout. Only the date directives a calendar version can carry are
// supported.
func calverLayout(format string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			b.WriteByte(format[i])
			continue
		}
		i++
		if i >= len(format) {
			return "", newVersionErrorf("calver format %q ends with a bare %%", format)
		}
		switch format[i] {
		case 'Y':
			b.WriteString("2006")
		case 'y':
			b.WriteString("06")
		case 'm':
			b.WriteString("01")
		case 'd':
			b.WriteString("02")
		default:
			return "", newVersionErrorf("calver format %q: unsupported directive %%%c", format, format[i])
		}
	}
	return b.String(), nil
}

// IsCalver reports whether text is a calendar version under the given
// strftime-style format. The first two dot-separated components of text
// are rejoined and parsed against the format; any mismatch yields false.
// Components shorter than the layout asks for are zero-padded first, so
// the unpadded "202309.5" a bump renders and the padded "202309.05" a
// strftime produces both qualify.
func IsCalver(text, format string) bool {
	layout, err := calverLayout(format)
	if err != nil {
		return false
	}
	parts := strings.SplitN(text, ".", 3)
	if len(parts) < 2 {
		return false
	}
	_, err = time.Parse(layout, padComponents(parts[0]+"."+parts[1], layout))
	return err == nil
}

// padComponents widens each numeric component of text to the width of its
// layout counterpart; Go's fixed-width layouts like "02" demand exactly
// two digits where strptime accepts one.
func padComponents(text, layout string) string {
	tparts := strings.Split(text, ".")
	lparts := strings.Split(layout, ".")
	if len(tparts) != len(lparts) {
		return text
	}
	for i, p := range tparts {
		if isDigits(p) && len(p) < len(lparts[i]) {
			tparts[i] = strings.Repeat("0", len(lparts[i])-len(p)) + p
		}
	}
	return strings.Join(tparts, ".")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NextCalver computes the next calendar version for the requested bump.
// The first two components come from now rendered through the format; the
// patch either continues the current version's counter when both are in
// the same calendar period, or resets to 0 in a new period. Major and
// minor bumps have no meaning under calendar versioning and are rejected.
func NextCalver(now time.Time, raw, format string, b Bump) (Version, error) {
	layout, err := calverLayout(format)
	if err != nil {
		return Version{}, err
	}
	calParts := strings.Split(now.Format(layout), ".")
	if len(calParts) != 2 {
		return Version{}, newVersionErrorf("calver format %q does not produce two dot-separated parts", format)
	}
	c1, err := strconv.Atoi(calParts[0])
	if err != nil {
		return Version{}, newVersionErrorf("calver format %q produced non-numeric part %q", format, calParts[0])
	}
	c2, err := strconv.Atoi(calParts[1])
	if err != nil {
		return Version{}, newVersionErrorf("calver format %q produced non-numeric part %q", format, calParts[1])
	}

	major, minor, patch, ok := splitCalverTriple(raw)
	if !ok {
		return Version{}, newVersionErrorf("cannot bump version %q: no numeric triple was parsed", raw)
	}

	switch b.Dimension() {
	case BumpMajor:
		return Version{}, &VersionError{Reason: "cannot bump to a major calver release; use --set with --force to override"}
	case BumpMinor:
		return Version{}, &VersionError{Reason: "cannot bump to a minor calver release; use --set with --force to override"}
	}

	// Same calendar period continues the patch counter, a new period
	// starts over at 0.
	next := 0
	if c1 == major && c2 == minor {
		next = patch + 1
	}
	return Version{Major: c1, Minor: c2, Patch: next}, nil
}

// splitCalverTriple reads the leading numeric triple of a calendar tag.
// Zero-padded components are accepted here: strftime renders a
// single-digit day as "05", which the round-trip grammar in Parse
// rejects.
func splitCalverTriple(raw string) (major, minor, patch int, ok bool) {
	if i := strings.LastIndexByte(raw, '/'); i >= 0 {
		raw = raw[i+1:]
	}
	head, _, _ := strings.Cut(raw, "-")
	parts := strings.Split(head, ".")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var nums [3]int
	for i, p := range parts {
		if !isDigits(p) {
			return 0, 0, 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}
