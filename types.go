// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// ByteOrder is the bit layout a signal uses within its frame.
type ByteOrder int

const (
	// Intel is little-endian: bit 0 is the LSB of the first byte.
	Intel ByteOrder = iota
	// Motorola is big-endian: the start bit is the MSB of the first byte.
	Motorola
)

// Sign is whether a signal's raw value is interpreted as two's-complement.
type Sign int

const (
	Unsigned Sign = iota
	Signed
)

// Multiplex describes a signal's role in a multiplexed message.
type Multiplex int

const (
	// MultiplexNone means the signal is always present.
	MultiplexNone Multiplex = iota
	// MultiplexSwitch means the signal selects which Multiplexed signals apply.
	MultiplexSwitch
	// MultiplexedSignal means the signal is only present when the switch
	// equals MultiplexValue.
	MultiplexedSignal
)

// ExtendedValueType overrides factor/offset scaling with an IEEE-754
// reinterpretation of the raw bits (SIG_VALTYPE_).
type ExtendedValueType int

const (
	ValueTypeInt ExtendedValueType = iota
	ValueTypeFloat32
	ValueTypeFloat64
)

// AttributeObjectType is the kind of entity an attribute definition applies to.
type AttributeObjectType int

const (
	AttrNetwork AttributeObjectType = iota
	AttrNode
	AttrMessage
	AttrSignal
	AttrEnvVar
)

// AttributeValueKind is the declared type of an attribute definition/value.
type AttributeValueKind int

const (
	AttrInt AttributeValueKind = iota
	AttrHex
	AttrFloat
	AttrString
	AttrEnum
)

// EnvVarType is an environment variable's declared data type.
type EnvVarType int

const (
	EnvInteger EnvVarType = iota
	EnvFloat
	EnvString
)

// VectorXXX is the reserved placeholder node name meaning "no real node".
const VectorXXX = "Vector__XXX"

// Version is the DBC file's VERSION statement.
type Version struct {
	Text string
}

// BitTiming is the (largely vestigial) BS_ statement.
type BitTiming struct {
	Baudrate uint32
	BTR1     uint32
	BTR2     uint32
}

// Node is a CAN network participant (an ECU).
type Node struct {
	Name       string
	Comment    string
	Attributes map[string]AttributeValue
}

// ValueDescription is one entry of an enumeration: an integer and its label.
type ValueDescription struct {
	Value int64
	Label string
}

// ValueTable is a reusable, named integer-to-label enumeration (VAL_TABLE_).
type ValueTable struct {
	Name   string
	Values []ValueDescription
}

// Lookup returns the label for v, if one is defined.
func (vt *ValueTable) Lookup(v int64) (string, bool) {
	for _, d := range vt.Values {
		if d.Value == v {
			return d.Label, true
		}
	}
	return "", false
}

// Signal is a bit-field within a Message.
type Signal struct {
	Name      string
	StartBit  uint32
	Length    uint32
	ByteOrder ByteOrder
	Sign      Sign
	Factor    float64
	Offset    float64
	Min       float64
	Max       float64
	Unit      string
	Receivers []string

	Multiplex      Multiplex
	MultiplexValue uint32 // valid only when Multiplex == MultiplexedSignal

	ValueTableRef     string // name of a VAL_TABLE_, if any
	ValueDescriptions []ValueDescription
	ExtendedValueType ExtendedValueType

	Comment    string
	Attributes map[string]AttributeValue
}

// describe returns the label for the integer part of a physical value,
// preferring an inline VAL_ description over a referenced VAL_TABLE_.
func (s *Signal) describe(db *Database, raw int64) (string, bool) {
	for _, d := range s.ValueDescriptions {
		if d.Value == raw {
			return d.Label, true
		}
	}
	if s.ValueTableRef != "" {
		if vt := db.ValueTableByName(s.ValueTableRef); vt != nil {
			return vt.Lookup(raw)
		}
	}
	return "", false
}

// SignalGroup ties a set of signals in one message together (SIG_GROUP_).
type SignalGroup struct {
	MessageID   uint32
	Name        string
	Repetitions uint32
	SignalNames []string
}

// Message is a CAN frame definition (BO_), owning its signals.
type Message struct {
	ID           uint32
	Name         string
	Length       uint32 // DLC, in bytes
	Sender       string
	Signals      []*Signal
	signalIdx    map[string]*Signal
	Comment      string
	Transmitters []string
	SignalGroups []*SignalGroup
	Attributes   map[string]AttributeValue
}

// SignalByName returns the named signal, or nil.
func (m *Message) SignalByName(name string) *Signal {
	return m.signalIdx[name]
}

// Multiplexor returns the message's M signal, if it has one.
func (m *Message) Multiplexor() *Signal {
	for _, s := range m.Signals {
		if s.Multiplex == MultiplexSwitch {
			return s
		}
	}
	return nil
}

func (m *Message) addSignal(s *Signal) {
	if m.signalIdx == nil {
		m.signalIdx = make(map[string]*Signal)
	}
	m.Signals = append(m.Signals, s)
	m.signalIdx[s.Name] = s
}

// EnvironmentVariable is an out-of-band simulation variable (EV_).
type EnvironmentVariable struct {
	Name              string
	Type              EnvVarType
	Min               float64
	Max               float64
	Unit              string
	InitialValue      float64
	EVID              uint32
	AccessType        string
	AccessNodes       []string
	DataSize          *uint32 // set by ENVVAR_DATA_
	ValueDescriptions []ValueDescription
	Comment           string
	Attributes        map[string]AttributeValue
}

// AttributeDefinition declares a typed, targetable annotation (BA_DEF_).
type AttributeDefinition struct {
	Name       string
	ObjectType AttributeObjectType
	ValueType  AttributeValueKind
	HasBounds  bool
	Min        float64
	Max        float64
	EnumValues []string
}

// AttributeValue is a typed value carried by a BA_ or BA_DEF_DEF_ statement.
// Only the field matching Kind is meaningful; for AttrEnum, Int holds the
// resolved index into the definition's EnumValues.
type AttributeValue struct {
	Name  string
	Kind  AttributeValueKind
	Int   int64
	Float float64
	Str   string
}
