// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// valueDescriptionStmt is a parsed VAL_ statement, not yet attached.
type valueDescriptionStmt struct {
	Target  targetRef
	Entries []ValueDescription
}

// parseValueDescription recognizes:
//
//	VAL_ (<u32> <ident>|<ident>) (<i64> "<string>")* ;
//
// The single-identifier form names an environment variable, per spec's
// frozen Open Question (several real-world DBC sources disagree; this
// library follows the documented resolution).
func parseValueDescription(text []byte) (valueDescriptionStmt, bool) {
	pos, ok := expectKeyword(text, 0, "VAL_")
	if !ok {
		return valueDescriptionStmt{}, false
	}
	pos = skipSpace(text, pos)

	var target targetRef
	save := pos
	if id, next, ok := scanUnsigned(text, pos); ok {
		p := skipSpace(text, next)
		if name, next2, ok := scanIdentifier(text, p); ok {
			target = targetRef{Kind: targetSignal, MessageID: uint32(id), Signal: name}
			pos = next2
		} else {
			pos = save
		}
	}
	if target.Kind != targetSignal {
		name, next, ok := scanIdentifier(text, pos)
		if !ok {
			return valueDescriptionStmt{}, false
		}
		target = targetRef{Kind: targetEnvVar, EnvVar: name}
		pos = next
	}

	entries, pos, ok := parseValueDescriptionEntries(text, pos)
	if !ok {
		return valueDescriptionStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return valueDescriptionStmt{}, false
	}
	if !isTrailingBlank(text, pos) {
		return valueDescriptionStmt{}, false
	}
	return valueDescriptionStmt{Target: target, Entries: entries}, true
}
