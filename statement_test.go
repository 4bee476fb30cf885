// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "testing"

func TestSplitStatements(t *testing.T) {
	src := []byte(`VERSION "1.0"
NS_ :
	BA_DEF_

BS_:
BU_: ECU1 ECU2
BO_ 100 EngineData: 8 ECU1
 SG_ EngineSpeed : 0|16@1+ (0.1,0) [0|6500] "rpm" ECU2
SOME_FUTURE_SECTION_ abc def
`)
	stmts := splitStatements(src)

	wantKeywords := []string{"VERSION", "NS_", "BS_", "BU_", "BO_", "SOME_FUTURE_SECTION_"}
	if len(stmts) != len(wantKeywords) {
		t.Fatalf("splitStatements returned %d statements, want %d: %+v", len(stmts), len(wantKeywords), stmts)
	}
	for i, want := range wantKeywords {
		if stmts[i].Keyword != want {
			t.Errorf("statement %d keyword = %q, want %q", i, stmts[i].Keyword, want)
		}
	}

	bo := stmts[4]
	if bo.Pos.Line != 7 {
		t.Errorf("BO_ statement line = %d, want 7", bo.Pos.Line)
	}
	wantText := "BO_ 100 EngineData: 8 ECU1\n SG_ EngineSpeed : 0|16@1+ (0.1,0) [0|6500] \"rpm\" ECU2"
	if string(bo.Text) != wantText {
		t.Errorf("BO_ statement text = %q, want %q", bo.Text, wantText)
	}
}

func TestExtractLeadingKeyword(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantOK  bool
	}{
		{"BO_ 100 Foo: 8 ECU1", "BO_", true},
		{" SG_ Foo : 0|1@1+ (1,0) [0|0] \"\" X", "", false},
		{"", "", false},
		{"123abc", "", false},
		{"UNKNOWN_KEYWORD_ x", "UNKNOWN_KEYWORD_", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := extractLeadingKeyword([]byte(tt.in))
			if ok != tt.wantOK {
				t.Fatalf("extractLeadingKeyword(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("extractLeadingKeyword(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
