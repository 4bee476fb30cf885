// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// Database is the root of the in-memory model produced by Parse. It owns
// every Node, Message (and its Signals), ValueTable, EnvironmentVariable,
// and AttributeDefinition exclusively; cross-references between them
// (a signal's receivers, a signal group's members, an attribute value's
// target) are stored by name/id and resolved through the lookup methods
// below, never by back-pointer (spec §9).
type Database struct {
	Version   *Version
	BitTiming *BitTiming
	Comment   string

	NewSymbols []string

	Nodes   []*Node
	nodeIdx map[string]*Node

	Messages   []*Message
	messageIdx map[uint32]*Message

	ValueTables   []*ValueTable
	valueTableIdx map[string]*ValueTable

	EnvVars   []*EnvironmentVariable
	envVarIdx map[string]*EnvironmentVariable

	AttributeDefs     []*AttributeDefinition
	attributeDefIdx   map[string]*AttributeDefinition
	AttributeDefaults map[string]AttributeValue

	NetworkAttributes map[string]AttributeValue

	// decodePlans caches the per-message decodePlan built by planFor, since
	// a Database is immutable after construction and the same messages are
	// typically decoded many times over a frame stream.
	decodePlans *lru.Cache
}

// decodePlanCacheSize bounds decodePlans; a network's message count rarely
// exceeds a few hundred entries in practice.
const decodePlanCacheSize = 256

func newDatabase() *Database {
	cache, _ := lru.New(decodePlanCacheSize)
	return &Database{
		nodeIdx:           make(map[string]*Node),
		messageIdx:        make(map[uint32]*Message),
		valueTableIdx:     make(map[string]*ValueTable),
		envVarIdx:         make(map[string]*EnvironmentVariable),
		attributeDefIdx:   make(map[string]*AttributeDefinition),
		AttributeDefaults: make(map[string]AttributeValue),
		NetworkAttributes: make(map[string]AttributeValue),
		decodePlans:       cache,
	}
}

// NodeByName returns the named node, or nil.
func (db *Database) NodeByName(name string) *Node { return db.nodeIdx[name] }

// MessageByID returns the message with the given frame id, or nil.
func (db *Database) MessageByID(id uint32) *Message { return db.messageIdx[id] }

// ValueTableByName returns the named value table, or nil.
func (db *Database) ValueTableByName(name string) *ValueTable { return db.valueTableIdx[name] }

// EnvVarByName returns the named environment variable, or nil.
func (db *Database) EnvVarByName(name string) *EnvironmentVariable { return db.envVarIdx[name] }

// AttributeDefinitionByName returns the named attribute definition, or nil.
func (db *Database) AttributeDefinitionByName(name string) *AttributeDefinition {
	return db.attributeDefIdx[name]
}

// SignalByName returns the named signal of the named message, or nil.
func (db *Database) SignalByName(messageID uint32, name string) *Signal {
	m := db.MessageByID(messageID)
	if m == nil {
		return nil
	}
	return m.SignalByName(name)
}

// AttributeDefault returns the declared default for a named attribute
// definition, if any (spec §4.4).
func (db *Database) AttributeDefault(name string) (AttributeValue, bool) {
	v, ok := db.AttributeDefaults[name]
	return v, ok
}

// NetworkAttribute returns a network-scoped attribute value, falling back
// to its declared default.
func (db *Database) NetworkAttribute(name string) (AttributeValue, bool) {
	if v, ok := db.NetworkAttributes[name]; ok {
		return v, true
	}
	return db.AttributeDefault(name)
}

// NodeAttribute returns a node-scoped attribute value, falling back to its
// declared default.
func (db *Database) NodeAttribute(node, name string) (AttributeValue, bool) {
	if n := db.NodeByName(node); n != nil {
		if v, ok := n.Attributes[name]; ok {
			return v, true
		}
	}
	return db.AttributeDefault(name)
}

// MessageAttribute returns a message-scoped attribute value, falling back
// to its declared default.
func (db *Database) MessageAttribute(id uint32, name string) (AttributeValue, bool) {
	if m := db.MessageByID(id); m != nil {
		if v, ok := m.Attributes[name]; ok {
			return v, true
		}
	}
	return db.AttributeDefault(name)
}

// SignalAttribute returns a signal-scoped attribute value, falling back to
// its declared default.
func (db *Database) SignalAttribute(id uint32, signal, name string) (AttributeValue, bool) {
	if s := db.SignalByName(id, signal); s != nil {
		if v, ok := s.Attributes[name]; ok {
			return v, true
		}
	}
	return db.AttributeDefault(name)
}

// EnvVarAttribute returns an environment-variable-scoped attribute value,
// falling back to its declared default.
func (db *Database) EnvVarAttribute(ev, name string) (AttributeValue, bool) {
	if e := db.EnvVarByName(ev); e != nil {
		if v, ok := e.Attributes[name]; ok {
			return v, true
		}
	}
	return db.AttributeDefault(name)
}

// ValueDescription looks up the label for a signal's raw integer value
// (spec §6.2, "Value description lookup").
func (db *Database) ValueDescription(id uint32, signal string, raw int64) (string, bool) {
	s := db.SignalByName(id, signal)
	if s == nil {
		return "", false
	}
	return s.describe(db, raw)
}

func (db *Database) addNode(n *Node) error {
	if _, exists := db.nodeIdx[n.Name]; exists {
		return fmt.Errorf("duplicate node %q", n.Name)
	}
	n.Attributes = make(map[string]AttributeValue)
	db.nodeIdx[n.Name] = n
	db.Nodes = append(db.Nodes, n)
	return nil
}

func (db *Database) addMessage(m *Message) error {
	if _, exists := db.messageIdx[m.ID]; exists {
		return fmt.Errorf("duplicate message id %d", m.ID)
	}
	m.Attributes = make(map[string]AttributeValue)
	for _, s := range m.Signals {
		s.Attributes = make(map[string]AttributeValue)
	}
	db.messageIdx[m.ID] = m
	db.Messages = append(db.Messages, m)
	return nil
}

func (db *Database) addValueTable(vt *ValueTable) error {
	if _, exists := db.valueTableIdx[vt.Name]; exists {
		return fmt.Errorf("duplicate value table %q", vt.Name)
	}
	db.valueTableIdx[vt.Name] = vt
	db.ValueTables = append(db.ValueTables, vt)
	return nil
}

func (db *Database) addEnvVar(ev *EnvironmentVariable) error {
	if _, exists := db.envVarIdx[ev.Name]; exists {
		return fmt.Errorf("duplicate environment variable %q", ev.Name)
	}
	ev.Attributes = make(map[string]AttributeValue)
	db.envVarIdx[ev.Name] = ev
	db.EnvVars = append(db.EnvVars, ev)
	return nil
}

func (db *Database) addAttributeDefinition(def *AttributeDefinition) error {
	if _, exists := db.attributeDefIdx[def.Name]; exists {
		return fmt.Errorf("duplicate attribute definition %q", def.Name)
	}
	db.attributeDefIdx[def.Name] = def
	db.AttributeDefs = append(db.AttributeDefs, def)
	return nil
}
