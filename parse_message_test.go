// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "testing"

func TestParseMessage(t *testing.T) {
	text := []byte("BO_ 100 EngineData: 8 ECU1\n SG_ EngineSpeed : 0|16@1+ (0.1,0) [0|6500] \"rpm\" ECU2\n SG_ EngineTemp : 16|8@1- (1,-40) [-40|215] \"degC\" ECU2")

	msg, ok := parseMessage(text)
	if !ok {
		t.Fatalf("parseMessage(%q) failed", text)
	}
	if msg.ID != 100 || msg.Name != "EngineData" || msg.Length != 8 || msg.Sender != "ECU1" {
		t.Errorf("parseMessage header = %+v, want id=100 name=EngineData length=8 sender=ECU1", msg)
	}
	if len(msg.Signals) != 2 {
		t.Fatalf("parseMessage signal count = %d, want 2", len(msg.Signals))
	}
	if msg.SignalByName("EngineSpeed") == nil {
		t.Errorf("SignalByName(EngineSpeed) = nil")
	}
	if msg.SignalByName("EngineTemp") == nil {
		t.Errorf("SignalByName(EngineTemp) = nil")
	}
}

func TestParseMessageHeader(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"BO_ 100 EngineData: 8 ECU1", true},
		{"BO_TX_BU_ 100 : ECU1", false},
		{"BO_ abc Foo: 8 ECU1", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, ok := parseMessageHeader([]byte(tt.in))
			if ok != tt.wantOK {
				t.Errorf("parseMessageHeader(%q) = %v, want %v", tt.in, ok, tt.wantOK)
			}
		})
	}
}
