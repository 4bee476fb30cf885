// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseVersion recognizes `VERSION "<text>"`.
func parseVersion(text []byte) (Version, bool) {
	pos, ok := expectKeyword(text, 0, "VERSION")
	if !ok {
		return Version{}, false
	}
	pos = skipSpace(text, pos)
	str, pos, ok := scanQuotedString(text, pos)
	if !ok {
		return Version{}, false
	}
	pos = skipSpace(text, pos)
	if !isTrailingBlank(text, pos) {
		return Version{}, false
	}
	return Version{Text: str}, true
}

// isTrailingBlank reports whether everything from pos onward is whitespace,
// i.e. the statement has no unrecognized trailing content (spec §4.2(b)).
func isTrailingBlank(s []byte, pos int) bool {
	for ; pos < len(s); pos++ {
		if !isSpace(s[pos]) && s[pos] != '\n' && s[pos] != '\r' {
			return false
		}
	}
	return true
}
