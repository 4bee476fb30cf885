// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseEnvVar recognizes:
//
//	EV_ <name> <0|1|2> [<min> <max>] "<unit>" <initial> <ev_id> <access_type> <access_nodes> ;
func parseEnvVar(text []byte) (*EnvironmentVariable, bool) {
	pos, ok := expectKeyword(text, 0, "EV_")
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	name, pos, ok := scanIdentifier(text, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	if pos >= len(text) {
		return nil, false
	}
	var typ EnvVarType
	switch text[pos] {
	case '0':
		typ = EnvInteger
	case '1':
		typ = EnvFloat
	case '2':
		typ = EnvString
	default:
		return nil, false
	}
	pos++
	pos = skipSpace(text, pos)

	ev := &EnvironmentVariable{Name: name, Type: typ}

	if min, next, ok := scanFloat(text, pos); ok {
		p := skipSpace(text, next)
		if max, next2, ok := scanFloat(text, p); ok {
			ev.Min, ev.Max = min, max
			pos = skipSpace(text, next2)
		}
	}

	unit, pos2, ok := scanQuotedString(text, pos)
	if !ok {
		return nil, false
	}
	ev.Unit = unit
	pos = skipSpace(text, pos2)

	initial, pos2, ok := scanFloat(text, pos)
	if !ok {
		return nil, false
	}
	ev.InitialValue = initial
	pos = skipSpace(text, pos2)

	evID, pos2, ok := scanUnsigned(text, pos)
	if !ok {
		return nil, false
	}
	ev.EVID = uint32(evID)
	pos = skipSpace(text, pos2)

	accessType, pos2, ok := scanIdentifier(text, pos)
	if !ok {
		return nil, false
	}
	ev.AccessType = accessType
	pos = skipSpace(text, pos2)

	accessNodes, pos2, ok := scanIdentifierList(text, pos)
	if !ok {
		return nil, false
	}
	ev.AccessNodes = accessNodes
	pos = skipSpace(text, pos2)

	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return nil, false
	}
	if !isTrailingBlank(text, pos) {
		return nil, false
	}
	return ev, true
}
