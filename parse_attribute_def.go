// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// parseAttributeObjectType recognizes the bare `BU_|BO_|SG_|EV_` object-kind
// marker used by BA_DEF_ (unlike CM_/BA_'s targets, it names no specific
// instance — it scopes the whole definition to a kind of entity). Absence
// means AttrNetwork.
func parseAttributeObjectType(s []byte, pos int) (AttributeObjectType, int) {
	for _, c := range []struct {
		kw string
		ot AttributeObjectType
	}{
		{"BU_", AttrNode},
		{"BO_", AttrMessage},
		{"SG_", AttrSignal},
		{"EV_", AttrEnvVar},
	} {
		if p, ok := expectKeyword(s, pos, c.kw); ok {
			return c.ot, skipSpace(s, p)
		}
	}
	return AttrNetwork, pos
}

// parseAttributeDefinition recognizes:
//
//	BA_DEF_ [BU_|BO_|SG_|EV_] "<name>" (INT|HEX) <i64> <i64>;
//	BA_DEF_ [BU_|BO_|SG_|EV_] "<name>" FLOAT <float> <float>;
//	BA_DEF_ [BU_|BO_|SG_|EV_] "<name>" STRING ;
//	BA_DEF_ [BU_|BO_|SG_|EV_] "<name>" ENUM "<string>"(,"<string>")* ;
func parseAttributeDefinition(text []byte) (*AttributeDefinition, bool) {
	pos, ok := expectKeyword(text, 0, "BA_DEF_")
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)
	objType, pos := parseAttributeObjectType(text, pos)
	pos = skipSpace(text, pos)

	name, pos, ok := scanQuotedString(text, pos)
	if !ok {
		return nil, false
	}
	pos = skipSpace(text, pos)

	def := &AttributeDefinition{Name: name, ObjectType: objType}

	switch {
	case matchWord(text, pos, "INT"), matchWord(text, pos, "HEX"):
		if matchWord(text, pos, "INT") {
			def.ValueType = AttrInt
			pos += len("INT")
		} else {
			def.ValueType = AttrHex
			pos += len("HEX")
		}
		pos = skipSpace(text, pos)
		lo, pos2, ok := scanSigned(text, pos)
		if !ok {
			return nil, false
		}
		pos = skipSpace(text, pos2)
		hi, pos2, ok := scanSigned(text, pos)
		if !ok {
			return nil, false
		}
		pos = pos2
		def.HasBounds = true
		def.Min, def.Max = float64(lo), float64(hi)

	case matchWord(text, pos, "FLOAT"):
		pos += len("FLOAT")
		pos = skipSpace(text, pos)
		lo, pos2, ok := scanFloat(text, pos)
		if !ok {
			return nil, false
		}
		pos = skipSpace(text, pos2)
		hi, pos2, ok := scanFloat(text, pos)
		if !ok {
			return nil, false
		}
		pos = pos2
		def.ValueType = AttrFloat
		def.HasBounds = true
		def.Min, def.Max = lo, hi

	case matchWord(text, pos, "STRING"):
		pos += len("STRING")
		def.ValueType = AttrString

	case matchWord(text, pos, "ENUM"):
		pos += len("ENUM")
		pos = skipSpace(text, pos)
		var labels []string
		label, next, ok := scanQuotedString(text, pos)
		if !ok {
			return nil, false
		}
		labels = append(labels, label)
		pos = next
		for {
			p := skipSpace(text, pos)
			p, ok = expectByte(text, p, ',')
			if !ok {
				break
			}
			p = skipSpace(text, p)
			label, next, ok := scanQuotedString(text, p)
			if !ok {
				break
			}
			labels = append(labels, label)
			pos = next
		}
		def.ValueType = AttrEnum
		def.EnumValues = labels

	default:
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
	return def, true
}

// matchWord reports whether s[pos:] begins with the whole word w, per the
// keyword boundary rule of spec §4.1.
func matchWord(s []byte, pos int, w string) bool {
	_, ok := expectKeyword(s, pos, w)
	return ok
}
