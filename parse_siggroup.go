// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseSignalGroup recognizes `SIG_GROUP_ <id> <name> <repetitions> : s1,s2,... ;`,
// requiring at least one signal name (spec §4.2).
func parseSignalGroup(text []byte) (*SignalGroup, bool) {
	pos, ok := expectKeyword(text, 0, "SIG_GROUP_")
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	id, pos, ok := scanUnsigned(text, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	name, pos, ok := scanIdentifier(text, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	reps, pos, ok := scanUnsigned(text, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ':')
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	signals, pos, ok := scanIdentifierList(text, pos)
	if !ok || len(signals) == 0 {
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
	return &SignalGroup{
		MessageID:   uint32(id),
		Name:        name,
		Repetitions: uint32(reps),
		SignalNames: signals,
	}, true
}
