// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseBitTiming recognizes `BS_: <baudrate> : <btr1>,<btr2>` or the
// degenerate `BS_:` with no fields, which yields all-zero defaults
// (spec §4.2, "Bit timing").
func parseBitTiming(text []byte) (BitTiming, bool) {
	pos, ok := expectKeyword(text, 0, "BS_")
	if !ok {
		return BitTiming{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ':')
	if !ok {
		return BitTiming{}, false
	}

	bt := BitTiming{}
	save := pos
	pos = skipSpace(text, pos)
	baud, next, ok := scanUnsigned(text, pos)
	if !ok {
		// Degenerate form: no fields at all.
		if !isTrailingBlank(text, save) {
			return BitTiming{}, false
		}
		return bt, true
	}
	pos = next
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ':')
	if !ok {
		return BitTiming{}, false
	}
	pos = skipSpace(text, pos)
	btr1, pos, ok := scanUnsigned(text, pos)
	if !ok {
		return BitTiming{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ',')
	if !ok {
		return BitTiming{}, false
	}
	pos = skipSpace(text, pos)
	btr2, pos, ok := scanUnsigned(text, pos)
	if !ok {
		return BitTiming{}, false
	}
	pos = skipSpace(text, pos)
	if !isTrailingBlank(text, pos) {
		return BitTiming{}, false
	}

	bt.Baudrate = uint32(baud)
	bt.BTR1 = uint32(btr1)
	bt.BTR2 = uint32(btr2)
	return bt, true
}
