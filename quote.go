package usertimer

import "strings"

// shellSingleQuote wraps s in single quotes for /bin/sh. Embedded single
// quotes become '\'' so any command line survives the quoting.
func shellSingleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
