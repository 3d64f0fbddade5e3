package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandUser(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "bare tilde", path: "~", expected: "/home/user"},
		{name: "tilde slash", path: "~/config", expected: "/home/user/config"},
		{name: "absolute untouched", path: "/etc/config", expected: "/etc/config"},
		{name: "other user untouched", path: "~other/config", expected: "~other/config"},
		{name: "tilde mid-path untouched", path: "/opt/~/x", expected: "/opt/~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandUser(tt.path, "/home/user"))
		})
	}
}

func TestTrimTrailingSeparators(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/a/b/", expected: "/a/b"},
		{path: "/a/b///", expected: "/a/b"},
		{path: "/a/b", expected: "/a/b"},
		{path: "/", expected: "/"},
		{path: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TrimTrailingSeparators(tt.path))
	}
}
