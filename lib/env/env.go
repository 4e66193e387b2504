// Package env reads the process-wide switches that are not CLI flags.
package env

import (
	"os"
	"strings"
)

// Test reports whether TEST_MODE is set. Rendered documents then leave out
// anything that changes between builds.
func Test() bool {
	return enabled("TEST_MODE")
}

// Debug reports whether DEBUG is set, enabling debug logs.
func Debug() bool {
	return enabled("DEBUG")
}

func enabled(k string) bool {
	switch strings.ToLower(os.Getenv(k)) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}
