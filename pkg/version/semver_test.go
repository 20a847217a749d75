package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSemver(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"1.2.3", true},
		{"0.0.0", true},
		{"1.2.3-alpha.1+build.5", true},
		{"1.2.3-rc.1", true},
		{"10.20.30", true},
		{"0.0.1-16-g5befeb2", true},
		{"0.0.1rc1", false},
		{"1.2.3-", false},
		{"1.2.3-+", false},
		{"v1.2.3", false},
		{"1.2", false},
		{"1.2.3.4", false},
		{"01.2.3", false},
		{"1.2.3-01", false},
		{"66cf7c2-HEAD", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSemver(tc.text))
		})
	}
}

func TestCompareRelease(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2.3rc1", "1.2.3", 0},
		{"66cf7c2-HEAD", "0.0.0", -1},
		{"0.0.0", "66cf7c2-HEAD", 1},
		{"aaa", "bbb", -1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, CompareRelease(Parse(tc.a), Parse(tc.b)), "compare %q %q", tc.a, tc.b)
	}
}
