// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// rawAttrValue is a BA_DEF_DEF_/BA_ value before it's coerced against its
// AttributeDefinition's declared kind (spec §4.4). NumIsInt records whether
// the numeral token had neither a '.' nor an exponent, which attribute.go
// uses to reject a float
// literal stored against an INT/HEX definition (spec's frozen Open
// Question: no silent coercion).
type rawAttrValue struct {
	IsString bool
	Str      string
	Num      float64
	NumIsInt bool
}

// attributeDefaultStmt is a parsed BA_DEF_DEF_ statement.
type attributeDefaultStmt struct {
	Name  string
	Value rawAttrValue
}

// parseAttributeDefault recognizes `BA_DEF_DEF_ "<name>" (<number>|"<string>") ;`.
func parseAttributeDefault(text []byte) (attributeDefaultStmt, bool) {
	pos, ok := expectKeyword(text, 0, "BA_DEF_DEF_")
	if !ok {
		return attributeDefaultStmt{}, false
	}
	pos = skipSpace(text, pos)
	name, pos, ok := scanQuotedString(text, pos)
	if !ok {
		return attributeDefaultStmt{}, false
	}
	pos = skipSpace(text, pos)
	val, pos, ok := scanRawAttrValue(text, pos)
	if !ok {
		return attributeDefaultStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return attributeDefaultStmt{}, false
	}
	if !isTrailingBlank(text, pos) {
		return attributeDefaultStmt{}, false
	}
	return attributeDefaultStmt{Name: name, Value: val}, true
}

// scanRawAttrValue recognizes a number or a quoted string, whichever is
// present, without yet knowing which an attribute definition expects.
func scanRawAttrValue(s []byte, pos int) (rawAttrValue, int, bool) {
	if str, next, ok := scanQuotedString(s, pos); ok {
		return rawAttrValue{IsString: true, Str: str}, next, true
	}
	start := pos
	if num, next, ok := scanFloat(s, pos); ok {
		isInt := true
		for i := start; i < next; i++ {
			if s[i] == '.' || s[i] == 'e' || s[i] == 'E' {
				isInt = false
				break
			}
		}
		return rawAttrValue{Num: num, NumIsInt: isInt}, next, true
	}
	return rawAttrValue{}, pos, false
}
