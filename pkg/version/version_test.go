package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Version
	}{
		{
			name:     "basic semver",
			raw:      "0.0.1",
			expected: Version{Major: 0, Minor: 0, Patch: 1},
		},
		{
			name:     "semver with prefix",
			raw:      "TestModule/0.0.1",
			expected: Version{Prefix: "TestModule/", Major: 0, Minor: 0, Patch: 1},
		},
		{
			name:     "nested prefix",
			raw:      "group/module/1.2.3",
			expected: Version{Prefix: "group/module/", Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:     "rc suffix glued to patch",
			raw:      "0.0.1rc16",
			expected: Version{Major: 0, Minor: 0, Patch: 1, Prerelease: "rc16"},
		},
		{
			name:     "rc zero",
			raw:      "0.0.1rc0",
			expected: Version{Major: 0, Minor: 0, Patch: 1, Prerelease: "rc0"},
		},
		{
			name:     "triple before a slash-bearing suffix",
			raw:      "1.2.3-foo/bar",
			expected: Version{Major: 1, Minor: 2, Patch: 3, Dash: "-", Prerelease: "foo/bar"},
		},
		{
			name:     "rc suffix with describe metadata",
			raw:      "0.0.1rc1-1-g5befeb2",
			expected: Version{Major: 0, Minor: 0, Patch: 1, Prerelease: "rc1-1-g5befeb2"},
		},
		{
			name:     "git describe distance suffix",
			raw:      "TestModule/0.0.1-16-g5befeb2",
			expected: Version{Prefix: "TestModule/", Major: 0, Minor: 0, Patch: 1, Dash: "-", Prerelease: "16-g5befeb2"},
		},
		{
			name:     "branch suffix",
			raw:      "0.1.27-16-g5befeb2-feature--skip-prefix-rows",
			expected: Version{Major: 0, Minor: 1, Patch: 27, Dash: "-", Prerelease: "16-g5befeb2-feature--skip-prefix-rows"},
		},
		{
			name:     "untagged describe output",
			raw:      "66cf7c2-HEAD",
			expected: Version{Prerelease: "66cf7c2-HEAD", Unreleased: true},
		},
		{
			name:     "v prefix is not a triple",
			raw:      "v1.2.3",
			expected: Version{Prerelease: "v1.2.3", Unreleased: true},
		},
		{
			name:     "leading zero component",
			raw:      "01.2.3",
			expected: Version{Prerelease: "01.2.3", Unreleased: true},
		},
		{
			name:     "glued non-rc suffix",
			raw:      "1.2.3beta",
			expected: Version{Prerelease: "1.2.3beta", Unreleased: true},
		},
		{
			name:     "rc without digits",
			raw:      "1.2.3rc",
			expected: Version{Prerelease: "1.2.3rc", Unreleased: true},
		},
		{
			name:     "empty string",
			raw:      "",
			expected: Version{Unreleased: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Parse(tc.raw)
			assert.Equal(t, tc.expected, v)
		})
	}
}

// TestRoundTrip checks that String reproduces the parsed input exactly
// when no bump has been applied.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"0.0.0",
		"0.0.1",
		"1.2.3",
		"0.0.1rc16",
		"0.0.1rc1-1-g5befeb2-master",
		"0.0.1rc0",
		"1.2.3-",
		"1.2.3-foo/bar",
		"1.2.3-alpha",
		"TestModule/0.0.1",
		"TestModule/0.0.1-16-g5befeb2",
		"0.1.27-16-g5befeb2-feature--skip-prefix-rows",
		"66cf7c2-HEAD",
		"not a version at all",
	}
	for _, raw := range inputs {
		assert.Equal(t, raw, Parse(raw).String(), "round trip of %q", raw)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		raw          string
		isPrerelease bool
		isRC         bool
		isUnreleased bool
	}{
		{"0.0.1", false, false, false},
		{"0.0.1rc16", true, true, false},
		{"0.0.1rc0", true, true, false},
		{"1.2.3-16-g5befeb2", true, false, false},
		{"1.2.3-", false, false, false},
		{"66cf7c2-HEAD", false, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			v := Parse(tc.raw)
			assert.Equal(t, tc.isPrerelease, v.IsPrerelease(), "IsPrerelease")
			assert.Equal(t, tc.isRC, v.IsRC(), "IsRC")
			assert.Equal(t, tc.isUnreleased, v.IsUnreleased(), "IsUnreleased")
		})
	}
}

func TestEquality(t *testing.T) {
	require.Equal(t, Parse("TestModule/0.0.1"), Version{Prefix: "TestModule/", Major: 0, Minor: 0, Patch: 1})
	assert.NotEqual(t, Parse("0.0.1"), Parse("TestModule/0.0.1"))
	assert.NotEqual(t, Parse("0.0.1rc1"), Parse("0.0.1-rc1"))
	assert.Equal(t, Parse("66cf7c2-HEAD"), Version{Prerelease: "66cf7c2-HEAD", Unreleased: true})
}

func TestNew(t *testing.T) {
	v := New(1, 2, 3)
	assert.Equal(t, "1.2.3", v.String())
	assert.False(t, v.IsUnreleased())
}
