// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseSignalLine recognizes one SG_ line:
//
//	SG_ <name> [M|m<u32>] : <start>|<len>@<order><sign> (<factor>,<offset>) [<min>|<max>] "<unit>" <recv>(,<recv>)*
//
// It is independently testable from parseMessage, which only supplies the
// already-isolated line text (spec §4.2, "Signal").
func parseSignalLine(line []byte) (*Signal, bool) {
	pos, ok := expectKeyword(line, 0, "SG_")
	if !ok {
		return nil, false
	}
	pos = skipSpace(line, pos)
	name, pos, ok := scanIdentifier(line, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(line, pos)

	sig := &Signal{Name: name}

	// Optional multiplex marker: M or m<u32>.
	if pos < len(line) && line[pos] == 'M' {
		// Must not be the start of a longer identifier.
		if pos+1 >= len(line) || !isIdentByte(line[pos+1]) {
			sig.Multiplex = MultiplexSwitch
			pos++
			pos = skipSpace(line, pos)
		}
	} else if pos < len(line) && line[pos] == 'm' {
		save := pos
		p := pos + 1
		k, next, ok := scanUnsigned(line, p)
		if ok {
			sig.Multiplex = MultiplexedSignal
			sig.MultiplexValue = uint32(k)
			pos = skipSpace(line, next)
		} else {
			pos = save
		}
	}

	pos, ok = expectByte(line, pos, ':')
	if !ok {
		return nil, false
	}
	pos = skipSpace(line, pos)

	start, pos, ok := scanUnsigned(line, pos)
	if !ok {
		return nil, false
	}
	pos, ok = expectByte(line, pos, '|')
	if !ok {
		return nil, false
	}
	length, pos, ok := scanUnsigned(line, pos)
	if !ok {
		return nil, false
	}
	pos, ok = expectByte(line, pos, '@')
	if !ok {
		return nil, false
	}
	if pos >= len(line) {
		return nil, false
	}
	switch line[pos] {
	case '1':
		sig.ByteOrder = Intel
	case '0':
		sig.ByteOrder = Motorola
	default:
		return nil, false
	}
	pos++
	if pos >= len(line) {
		return nil, false
	}
	switch line[pos] {
	case '+':
		sig.Sign = Unsigned
	case '-':
		sig.Sign = Signed
	default:
		return nil, false
	}
	pos++
	sig.StartBit = uint32(start)
	sig.Length = uint32(length)

	pos = skipSpace(line, pos)
	pos, ok = expectByte(line, pos, '(')
	if !ok {
		return nil, false
	}
	factor, pos, ok := scanFloat(line, pos)
	if !ok {
		return nil, false
	}
	pos, ok = expectByte(line, pos, ',')
	if !ok {
		return nil, false
	}
	offset, pos, ok := scanFloat(line, pos)
	if !ok {
		return nil, false
	}
	pos, ok = expectByte(line, pos, ')')
	if !ok {
		return nil, false
	}
	sig.Factor = factor
	sig.Offset = offset

	pos = skipSpace(line, pos)
	pos, ok = expectByte(line, pos, '[')
	if !ok {
		return nil, false
	}
	min, pos, ok := scanFloat(line, pos)
	if !ok {
		return nil, false
	}
	pos, ok = expectByte(line, pos, '|')
	if !ok {
		return nil, false
	}
	max, pos, ok := scanFloat(line, pos)
	if !ok {
		return nil, false
	}
	pos, ok = expectByte(line, pos, ']')
	if !ok {
		return nil, false
	}
	sig.Min = min
	sig.Max = max

	pos = skipSpace(line, pos)
	unit, pos, ok := scanQuotedString(line, pos)
	if !ok {
		return nil, false
	}
	sig.Unit = unit

	pos = skipSpace(line, pos)
	recv, pos, ok := scanIdentifierList(line, pos)
	if !ok {
		return nil, false
	}
	sig.Receivers = recv

	pos = skipSpace(line, pos)
	if !isTrailingBlank(line, pos) {
		return nil, false
	}
	return sig, true
}
