// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseValueTable recognizes `VAL_TABLE_ <name> (<int> "<label>")* ;`.
func parseValueTable(text []byte) (*ValueTable, bool) {
	pos, ok := expectKeyword(text, 0, "VAL_TABLE_")
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	name, pos, ok := scanIdentifier(text, pos)
	if !ok {
		return nil, false
	}
	entries, pos, ok := parseValueDescriptionEntries(text, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return nil, false
	}
	if !isTrailingBlank(text, pos) {
		return nil, false
	}
	return &ValueTable{Name: name, Values: entries}, true
}

// parseValueDescriptionEntries recognizes the `(<i64> "<string>")*` body
// shared by VAL_TABLE_ and VAL_.
func parseValueDescriptionEntries(s []byte, pos int) ([]ValueDescription, int, bool) {
	var entries []ValueDescription
	for {
		save := pos
		pos = skipSpaceAndNewlines(s, pos)
		v, next, ok := scanSigned(s, pos)
		if !ok {
			pos = save
			break
		}
		pos = skipSpace(s, next)
		label, next, ok := scanQuotedString(s, pos)
		if !ok {
			pos = save
			break
		}
		entries = append(entries, ValueDescription{Value: v, Label: label})
		pos = next
	}
	return entries, pos, true
}
