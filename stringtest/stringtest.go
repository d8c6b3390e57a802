// Package stringtest provides helpers for constructing multi-line test
// fixtures with explicit line endings.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings. Use this to construct
// expected output or file fixtures line by line:
//
//	want := stringtest.JoinLF(
//		"browser: qutebrowser",
//		"prompt: 'profile:'",
//	) // -> "browser: qutebrowser\nprompt: 'profile:'"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}
