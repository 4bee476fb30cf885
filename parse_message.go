// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "bytes"

// parseMessage recognizes a BO_ header line plus its following SG_ lines:
//
//	BO_ <id> <name>: <dlc> <sender>
//	 SG_ ...
//	 SG_ ...
//
// This is the only section parser that splits its statement into lines and
// parses each line separately; NS_ and BU_ bodies may also continue onto
// indented lines, but their parsers scan them as one token stream (spec
// §4.2, "Message header").
func parseMessage(text []byte) (*Message, bool) {
	lines := bytes.Split(text, []byte("\n"))
	if len(lines) == 0 {
		return nil, false
	}
	msg, ok := parseMessageHeader(lines[0])
	if !ok {
		return nil, false
	}
	for _, line := range lines[1:] {
		if isTrailingBlank(line, 0) {
			continue
		}
		sig, ok := parseSignalLine(bytes.TrimLeft(line, " \t"))
		if !ok {
			return nil, false
		}
		msg.addSignal(sig)
	}
	return msg, true
}

// parseMessageHeader recognizes `BO_ <id> <name>: <dlc> <sender>`.
func parseMessageHeader(line []byte) (*Message, bool) {
	pos, ok := expectKeyword(line, 0, "BO_")
	if !ok {
		return nil, false
	}
	pos = skipSpace(line, pos)
	id, pos, ok := scanUnsigned(line, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(line, pos)
	name, pos, ok := scanIdentifier(line, pos)
	if !ok {
		return nil, false
	}
	pos, ok = expectByte(line, pos, ':')
	if !ok {
		return nil, false
	}
	pos = skipSpace(line, pos)
	dlc, pos, ok := scanUnsigned(line, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(line, pos)
	sender, pos, ok := scanIdentifier(line, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(line, pos)
	if !isTrailingBlank(line, pos) {
		return nil, false
	}
	return &Message{
		ID:     uint32(id),
		Name:   name,
		Length: uint32(dlc),
		Sender: sender,
	}, true
}
