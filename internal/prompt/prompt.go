// Package prompt holds the system directive sent with every humanize request.
package prompt

import (
	_ "embed"
	"strings"
)

//go:embed humanize.txt
var humanize string

// System is the fixed rewriting directive. It is compiled into the binary
// and cannot be changed per request.
var System = strings.TrimSpace(humanize)
