// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseNodes recognizes `BU_: n1 n2 ...`. An empty list is legal.
func parseNodes(text []byte) ([]string, bool) {
	pos, ok := expectKeyword(text, 0, "BU_")
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ':')
	if !ok {
		return nil, false
	}

	var names []string
	for {
		pos = skipSpaceAndNewlines(text, pos)
		id, next, ok := scanIdentifier(text, pos)
		if !ok {
			break
		}
		names = append(names, id)
		pos = next
	}
	if !isTrailingBlank(text, pos) {
		return nil, false
	}
	return names, true
}
