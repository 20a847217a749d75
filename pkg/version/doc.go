// Package version implements the data model behind tagversion: parsing
// loosely structured tag strings into a structured Version, bumping its
// components, and recognizing semantic and calendar version schemes.
//
// Parsing is total. A string that carries a dotted numeric triple, such as
// "0.1.27-16-g5befeb2" or "TestModule/0.0.1rc2", round-trips through
// Parse and String byte for byte. A string with no triple, typically the
// "<hash>-<branch>" output of git describe in an untagged repository,
// parses to an unreleased Version that stringifies back to the raw input.
//
// Bumps are pure: (Version).Bump returns a new value and leaves the
// receiver alone. A bump request is a single Bump variant resolved from
// flags once via Resolve, with the highest-impact dimension winning when
// several are requested.
//
//	v := version.Parse("0.0.1")
//	next, err := v.Bump(version.BumpPrerelease)
//	// next.String() == "0.0.1rc1"
//
// Calendar versions tie the first two components to a date format
// (default "%Y%m.%d") with a trailing patch counter; NextCalver continues
// the counter within a calendar period and resets it when the period
// changes.
package version
