// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// signalValueTypeStmt is a parsed SIG_VALTYPE_ statement.
type signalValueTypeStmt struct {
	MessageID uint32
	Signal    string
	Type      ExtendedValueType
}

// parseSignalValueType recognizes `SIG_VALTYPE_ <id> <signal> : <0|1|2> ;`.
func parseSignalValueType(text []byte) (signalValueTypeStmt, bool) {
	pos, ok := expectKeyword(text, 0, "SIG_VALTYPE_")
	if !ok {
		return signalValueTypeStmt{}, false
	}
	pos = skipSpace(text, pos)
	id, pos, ok := scanUnsigned(text, pos)
	if !ok {
		return signalValueTypeStmt{}, false
	}
	pos = skipSpace(text, pos)
	name, pos, ok := scanIdentifier(text, pos)
	if !ok {
		return signalValueTypeStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ':')
	if !ok {
		return signalValueTypeStmt{}, false
	}
	pos = skipSpace(text, pos)
	if pos >= len(text) {
		return signalValueTypeStmt{}, false
	}
	var t ExtendedValueType
	switch text[pos] {
	case '0':
		t = ValueTypeInt
	case '1':
		t = ValueTypeFloat32
	case '2':
		t = ValueTypeFloat64
	default:
		return signalValueTypeStmt{}, false
	}
	pos++
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return signalValueTypeStmt{}, false
	}
	if !isTrailingBlank(text, pos) {
		return signalValueTypeStmt{}, false
	}
	return signalValueTypeStmt{MessageID: uint32(id), Signal: name, Type: t}, true
}
