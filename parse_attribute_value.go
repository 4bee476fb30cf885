// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// attributeValueStmt is a parsed BA_ statement, not yet type-checked
// against its AttributeDefinition (attribute.go does that while folding).
type attributeValueStmt struct {
	Name   string
	Target targetRef
	Value  rawAttrValue
}

// parseAttributeValue recognizes:
//
//	BA_ "<name>" [BU_ <ident>|BO_ <u32>|SG_ <u32> <ident>|EV_ <ident>] (<number>|"<string>") ;
func parseAttributeValue(text []byte) (attributeValueStmt, bool) {
	pos, ok := expectKeyword(text, 0, "BA_")
	if !ok {
		return attributeValueStmt{}, false
	}
	pos = skipSpace(text, pos)
	name, pos, ok := scanQuotedString(text, pos)
	if !ok {
		return attributeValueStmt{}, false
	}
	pos = skipSpace(text, pos)
	target, pos, ok := parseAnnotationTarget(text, pos)
	if !ok {
		return attributeValueStmt{}, false
	}
	pos = skipSpace(text, pos)
	val, pos, ok := scanRawAttrValue(text, pos)
	if !ok {
		return attributeValueStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return attributeValueStmt{}, false
	}
	if !isTrailingBlank(text, pos) {
		return attributeValueStmt{}, false
	}
	return attributeValueStmt{Name: name, Target: target, Value: val}, true
}
