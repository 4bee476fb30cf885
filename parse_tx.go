// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// transmittersStmt is a parsed BO_TX_BU_ statement.
type transmittersStmt struct {
	MessageID uint32
	Nodes     []string
}

// parseMessageTransmitters recognizes `BO_TX_BU_ <id> : n1,n2,... ;`.
func parseMessageTransmitters(text []byte) (transmittersStmt, bool) {
	pos, ok := expectKeyword(text, 0, "BO_TX_BU_")
	if !ok {
		return transmittersStmt{}, false
	}
	pos = skipSpace(text, pos)
	id, pos, ok := scanUnsigned(text, pos)
	if !ok {
		return transmittersStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ':')
	if !ok {
		return transmittersStmt{}, false
	}
	pos = skipSpace(text, pos)
	nodes, pos, ok := scanIdentifierList(text, pos)
	if !ok {
		return transmittersStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return transmittersStmt{}, false
	}
	if !isTrailingBlank(text, pos) {
		return transmittersStmt{}, false
	}
	return transmittersStmt{MessageID: uint32(id), Nodes: nodes}, true
}
