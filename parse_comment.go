// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// commentStmt is a parsed CM_ statement, not yet attached to its target.
type commentStmt struct {
	Target targetRef
	Text   string
}

// parseComment recognizes:
//
//	CM_ [BU_ <ident>|BO_ <u32>|SG_ <u32> <ident>|EV_ <ident>] "<text>" ;
func parseComment(text []byte) (commentStmt, bool) {
	pos, ok := expectKeyword(text, 0, "CM_")
	if !ok {
		return commentStmt{}, false
	}
	pos = skipSpace(text, pos)
	target, pos, ok := parseAnnotationTarget(text, pos)
	if !ok {
		return commentStmt{}, false
	}
	pos = skipSpace(text, pos)
	body, pos, ok := scanQuotedString(text, pos)
	if !ok {
		return commentStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return commentStmt{}, false
	}
	pos = skipSpace(text, pos)
	if !isTrailingBlank(text, pos) {
		return commentStmt{}, false
	}
	return commentStmt{Target: target, Text: body}, true
}
