// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseNewSymbols recognizes `NS_ :` followed by zero or more
// whitespace-separated tokens, one or more per continuation line.
func parseNewSymbols(text []byte) ([]string, bool) {
	pos, ok := expectKeyword(text, 0, "NS_")
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ':')
	if !ok {
		return nil, false
	}

	var symbols []string
	for {
		pos = skipSpaceAndNewlines(text, pos)
		id, next, ok := scanNewSymbolToken(text, pos)
		if !ok {
			break
		}
		symbols = append(symbols, id)
		pos = next
	}
	if !isTrailingBlank(text, pos) {
		return nil, false
	}
	return symbols, true
}

// scanNewSymbolToken matches one NS_ token. NS_ tokens (BA_DEF_, CM_, and
// so on) are always identifier-shaped in practice, but kept as a distinct
// recognizer since they are never cross-referenced like other identifiers.
func scanNewSymbolToken(s []byte, pos int) (string, int, bool) {
	return scanIdentifier(s, pos)
}
