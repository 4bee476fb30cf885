// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "testing"

func TestCoerceAttributeValue(t *testing.T) {
	intDef := &AttributeDefinition{Name: "GenMsgCycleTime", ValueType: AttrInt, HasBounds: true, Min: 0, Max: 10000}
	enumDef := &AttributeDefinition{Name: "NmMessage", ValueType: AttrEnum, EnumValues: []string{"no", "yes", "maybe"}}
	strDef := &AttributeDefinition{Name: "Description", ValueType: AttrString}
	floatDef := &AttributeDefinition{Name: "Gain", ValueType: AttrFloat, HasBounds: true, Min: 0, Max: 1}

	tests := []struct {
		name    string
		def     *AttributeDefinition
		raw     rawAttrValue
		wantOK  bool
		wantInt int64
		wantStr string
	}{
		{"int in range", intDef, rawAttrValue{Num: 250, NumIsInt: true}, true, 250, ""},
		{"int out of range", intDef, rawAttrValue{Num: 20000, NumIsInt: true}, false, 0, ""},
		{"int rejects float literal", intDef, rawAttrValue{Num: 250.5, NumIsInt: false}, false, 0, ""},
		{"enum by label", enumDef, rawAttrValue{IsString: true, Str: "yes"}, true, 1, ""},
		{"enum by index", enumDef, rawAttrValue{Num: 2, NumIsInt: true}, true, 2, ""},
		{"enum index out of range", enumDef, rawAttrValue{Num: 5, NumIsInt: true}, false, 0, ""},
		{"enum unknown label", enumDef, rawAttrValue{IsString: true, Str: "nope"}, false, 0, ""},
		{"string ok", strDef, rawAttrValue{IsString: true, Str: "hello"}, true, 0, "hello"},
		{"string rejects number", strDef, rawAttrValue{Num: 1, NumIsInt: true}, false, 0, ""},
		{"float in bounds", floatDef, rawAttrValue{Num: 0.5}, true, 0, ""},
		{"float out of bounds", floatDef, rawAttrValue{Num: 1.5}, false, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, reason, ok := coerceAttributeValue(tt.def, tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("coerceAttributeValue(%s) ok = %v (%s), want %v", tt.name, ok, reason, tt.wantOK)
			}
			if !ok {
				return
			}
			if tt.wantStr != "" && val.Str != tt.wantStr {
				t.Errorf("coerceAttributeValue(%s).Str = %q, want %q", tt.name, val.Str, tt.wantStr)
			}
			if tt.def.ValueType != AttrString && val.Int != tt.wantInt {
				t.Errorf("coerceAttributeValue(%s).Int = %d, want %d", tt.name, val.Int, tt.wantInt)
			}
		})
	}
}
