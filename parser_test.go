// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"strings"
	"testing"
)

func TestParseEmptyInput(t *testing.T) {
	_, _, err := Parse(nil, nil)
	if err != ErrEmptyInput {
		t.Fatalf("Parse(nil) err = %v, want ErrEmptyInput", err)
	}
}

func TestParseMalformedVersion(t *testing.T) {
	_, _, err := Parse([]byte("VERSION garbage\n"), nil)
	if err != ErrMalformedVersion {
		t.Fatalf("Parse(malformed VERSION) err = %v, want ErrMalformedVersion", err)
	}
}

func TestParseNoDeclarations(t *testing.T) {
	_, _, err := Parse([]byte("VERSION \"1.0\"\nNS_ :\nBS_:\n"), nil)
	if err != ErrNoDeclarations {
		t.Fatalf("Parse(no declarations) err = %v, want ErrNoDeclarations", err)
	}
}

func TestParseBasicNetwork(t *testing.T) {
	src := []byte(`VERSION "1.0"
NS_ :
	BA_DEF_

BS_:
BU_: ECU1 ECU2
BO_ 100 EngineData: 8 ECU1
 SG_ EngineSpeed : 0|16@1+ (0.1,0) [0|6500] "rpm" ECU2
`)
	db, diags, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v (%v)", err, diags)
	}
	if db.Version == nil || db.Version.Text != "1.0" {
		t.Errorf("db.Version = %+v, want Text=1.0", db.Version)
	}
	if len(db.Nodes) != 2 {
		t.Fatalf("len(db.Nodes) = %d, want 2", len(db.Nodes))
	}
	if db.NodeByName("ECU1") == nil || db.NodeByName("ECU2") == nil {
		t.Errorf("expected both ECU1 and ECU2 to be registered")
	}
	msg := db.MessageByID(100)
	if msg == nil {
		t.Fatalf("MessageByID(100) = nil")
	}
	if msg.SignalByName("EngineSpeed") == nil {
		t.Errorf("message 100 missing signal EngineSpeed")
	}
	for _, d := range diags {
		if d.Severity == SeverityError {
			t.Errorf("unexpected error diagnostic: %v", d)
		}
	}
}

func TestParseDuplicateMessageID(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1
BO_ 100 A: 8 ECU1
BO_ 100 B: 8 ECU1
`)
	db, diags, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(db.Messages) != 1 {
		t.Fatalf("len(db.Messages) = %d, want 1", len(db.Messages))
	}
	if !anyDiagContains(diags, "duplicate message id") {
		t.Errorf("expected a duplicate-message-id diagnostic, got %v", diags)
	}
}

func TestParseCommentTargeting(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1
BO_ 100 EngineData: 8 ECU1
 SG_ EngineSpeed : 0|16@1+ (0.1,0) [0|6500] "rpm" ECU1
CM_ SG_ 100 EngineSpeed "engine rotational speed";
CM_ SG_ 999 NoSuchSignal "dangling";
`)
	db, diags, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sig := db.SignalByName(100, "EngineSpeed")
	if sig == nil || sig.Comment != "engine rotational speed" {
		t.Errorf("EngineSpeed.Comment = %q, want %q", sig.Comment, "engine rotational speed")
	}
	if !anyDiagContains(diags, "unknown signal") {
		t.Errorf("expected a dangling-target diagnostic for the second CM_, got %v", diags)
	}
}

func TestParseAttributeDefaultFallback(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1
BO_ 100 A: 8 ECU1
BO_ 200 B: 8 ECU1
BA_DEF_ BO_ "GenMsgCycleTime" INT 0 10000;
BA_DEF_DEF_ "GenMsgCycleTime" 100;
BA_ "GenMsgCycleTime" BO_ 100 250;
`)
	db, _, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v, ok := db.MessageAttribute(100, "GenMsgCycleTime")
	if !ok || v.Int != 250 {
		t.Errorf("MessageAttribute(100) = %+v, ok=%v, want Int=250", v, ok)
	}
	v, ok = db.MessageAttribute(200, "GenMsgCycleTime")
	if !ok || v.Int != 100 {
		t.Errorf("MessageAttribute(200) (default) = %+v, ok=%v, want Int=100", v, ok)
	}
}

func TestParseUnknownSectionIsSkippedWithWarning(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1
BO_ 100 A: 8 ECU1
SOME_FUTURE_SECTION_ whatever here
`)
	db, diags, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if db.MessageByID(100) == nil {
		t.Fatalf("expected message 100 to still be parsed")
	}
	if !anyDiagContains(diags, "unrecognized section") {
		t.Errorf("expected an unrecognized-section warning, got %v", diags)
	}
}

func TestParseMultiplexGrouping(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU2
BO_ 200 Trans: 6 ECU2
 SG_ Mode M : 4|2@1+ (1,0) [0|3] "" ECU2
 SG_ InfoA m0 : 32|8@1+ (1,0) [0|255] "" ECU2
 SG_ InfoB m1 : 32|8@1+ (1,0) [0|255] "kPa" ECU2
`)
	db, _, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	msg := db.MessageByID(200)
	mx := msg.Multiplexor()
	if mx == nil || mx.Name != "Mode" {
		t.Fatalf("Multiplexor() = %v, want signal Mode", mx)
	}
}

func TestParseValueDescriptionTargetsEnvVar(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1
BO_ 100 A: 8 ECU1
EV_ Gear 0 0 5 "" 0 1 DUMMY_NODE_VECTOR0 ECU1;
VAL_ Gear 0 "Park" 1 "Drive";
`)
	db, _, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ev := db.EnvVarByName("Gear")
	if ev == nil || len(ev.ValueDescriptions) != 2 {
		t.Fatalf("EnvVarByName(Gear) = %+v", ev)
	}
	if label, ok := func() (string, bool) {
		for _, d := range ev.ValueDescriptions {
			if d.Value == 1 {
				return d.Label, true
			}
		}
		return "", false
	}(); !ok || label != "Drive" {
		t.Errorf("Gear value 1 label = %q, ok=%v, want Drive", label, ok)
	}
}

func TestParseMessageTransmitters(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1 ECU2
BO_ 100 A: 8 ECU1
BO_TX_BU_ 100 : ECU1,ECU2;
`)
	db, _, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	msg := db.MessageByID(100)
	if len(msg.Transmitters) != 2 || msg.Transmitters[0] != "ECU1" || msg.Transmitters[1] != "ECU2" {
		t.Errorf("Transmitters = %v, want [ECU1 ECU2]", msg.Transmitters)
	}
}

func TestParseEnvVarData(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1
BO_ 100 A: 8 ECU1
EV_ Blob 2 0 0 "" 0 1 DUMMY_NODE_VECTOR0 ECU1;
ENVVAR_DATA_ Blob: 16;
`)
	db, _, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ev := db.EnvVarByName("Blob")
	if ev.DataSize == nil || *ev.DataSize != 16 {
		t.Errorf("Blob.DataSize = %v, want 16", ev.DataSize)
	}
}

func TestParseSignalGroupDanglingSignalWarns(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1
BO_ 100 A: 8 ECU1
 SG_ First : 0|8@1+ (1,0) [0|0] "" ECU1
SIG_GROUP_ 100 Group1 1 : First,Missing;
`)
	db, diags, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	msg := db.MessageByID(100)
	if len(msg.SignalGroups) != 1 {
		t.Fatalf("len(SignalGroups) = %d, want 1", len(msg.SignalGroups))
	}
	if !anyDiagContains(diags, "unknown signal") {
		t.Errorf("expected a dangling-signal diagnostic, got %v", diags)
	}
}

func TestParseSignalValueType(t *testing.T) {
	src := []byte(`VERSION "1.0"
BU_: ECU1
BO_ 100 A: 8 ECU1
 SG_ Value : 0|32@1+ (1,0) [0|0] "" ECU1
SIG_VALTYPE_ 100 Value : 1;
`)
	db, _, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sig := db.SignalByName(100, "Value")
	if sig.ExtendedValueType != ValueTypeFloat32 {
		t.Errorf("ExtendedValueType = %v, want ValueTypeFloat32", sig.ExtendedValueType)
	}
}

func anyDiagContains(diags []Diagnostic, substr string) bool {
	for _, d := range diags {
		if strings.Contains(d.Message, substr) {
			return true
		}
	}
	return false
}
