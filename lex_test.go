// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "testing"

func TestScanIdentifier(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantPos int
		wantOK  bool
	}{
		{"EngineSpeed : 0", "EngineSpeed", 11, true},
		{"_Private", "_Private", 8, true},
		{"1abc", "", 0, false},
		{"", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, pos, ok := scanIdentifier([]byte(tt.in), 0)
			if ok != tt.wantOK {
				t.Fatalf("scanIdentifier(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want || pos != tt.wantPos {
				t.Errorf("scanIdentifier(%q) = (%q, %d), want (%q, %d)", tt.in, got, pos, tt.want, tt.wantPos)
			}
		})
	}
}

func TestScanFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"0.1,0", 0.1, true},
		{"-40", -40, true},
		{"1e3", 1000, true},
		{"1.5e-2", 0.015, true},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, _, ok := scanFloat([]byte(tt.in), 0)
			if ok != tt.wantOK {
				t.Fatalf("scanFloat(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("scanFloat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScanQuotedString(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{`"rpm"`, "rpm", true},
		{`"a\"b"`, `a"b`, true},
		{`"a\\b"`, `a\b`, true},
		{`"unterminated`, "", false},
		{`"bad\escape"`, "", false},
		{"noquote", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, _, ok := scanQuotedString([]byte(tt.in), 0)
			if ok != tt.wantOK {
				t.Fatalf("scanQuotedString(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("scanQuotedString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpectKeyword(t *testing.T) {
	tests := []struct {
		in     string
		kw     string
		wantOK bool
	}{
		{"BO_ 100", "BO_", true},
		{"BO_TX_BU_ 100", "BO_", false},
		{"BA_DEF_ BU_", "BA_DEF_", true},
		{"BA_ \"x\"", "BA_DEF_", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, ok := expectKeyword([]byte(tt.in), 0, tt.kw)
			if ok != tt.wantOK {
				t.Errorf("expectKeyword(%q, %q) = %v, want %v", tt.in, tt.kw, ok, tt.wantOK)
			}
		})
	}
}

func TestScanIdentifierList(t *testing.T) {
	tests := []struct {
		in     string
		want   []string
		wantOK bool
	}{
		{"ECU1,ECU2,ECU3", []string{"ECU1", "ECU2", "ECU3"}, true},
		{"ECU1, ECU2 , ECU3", []string{"ECU1", "ECU2", "ECU3"}, true},
		{"ECU1", []string{"ECU1"}, true},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, _, ok := scanIdentifierList([]byte(tt.in), 0)
			if ok != tt.wantOK {
				t.Fatalf("scanIdentifierList(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("scanIdentifierList(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("scanIdentifierList(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
