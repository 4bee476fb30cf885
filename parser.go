// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// ParseOptions configures Parse. The zero value is a usable default.
type ParseOptions struct {
	// MaxDiagnostics caps the number of Diagnostics collected, guarding
	// against unbounded memory use on a pathological document. Zero means
	// unlimited.
	MaxDiagnostics int
}

// DefaultParseOptions returns the options Parse uses when given nil.
func DefaultParseOptions() *ParseOptions {
	return &ParseOptions{}
}

// Parse builds a Database from a complete DBC document. Most problems are
// reported as Diagnostics and do not stop the parse; only the handful of
// structural failures named by ErrEmptyInput, ErrNoDeclarations, and
// ErrMalformedVersion are returned as an error (spec §4.3, §7).
func Parse(src []byte, opts *ParseOptions) (*Database, []Diagnostic, error) {
	if opts == nil {
		opts = DefaultParseOptions()
	}
	if len(src) == 0 {
		return nil, nil, ErrEmptyInput
	}

	db := newDatabase()
	var diags []Diagnostic

	addDiag := func(d Diagnostic) {
		if opts.MaxDiagnostics > 0 && len(diags) >= opts.MaxDiagnostics {
			return
		}
		diags = append(diags, d)
	}
	warn := func(pos Position, stmt, format string, args ...interface{}) {
		addDiag(newWarning(pos, stmt, format, args...))
	}
	fail := func(pos Position, stmt, format string, args ...interface{}) {
		addDiag(newError(pos, stmt, format, args...))
	}

	stmts := splitStatements(src)
	var deferred []rawStatement

	for _, st := range stmts {
		switch st.Keyword {
		case "VERSION":
			v, ok := parseVersion(st.Text)
			if !ok {
				return nil, diags, ErrMalformedVersion
			}
			db.Version = &v

		case "NS_":
			syms, ok := parseNewSymbols(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed NS_ statement")
				continue
			}
			db.NewSymbols = syms

		case "BS_":
			bt, ok := parseBitTiming(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed BS_ statement")
				continue
			}
			db.BitTiming = &bt

		case "BU_":
			names, ok := parseNodes(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed BU_ statement")
				continue
			}
			for _, n := range names {
				if err := db.addNode(&Node{Name: n}); err != nil {
					warn(st.Pos, st.Keyword, "%s", err)
				}
			}

		case "BO_":
			msg, ok := parseMessage(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed BO_ statement")
				continue
			}
			if err := db.addMessage(msg); err != nil {
				warn(st.Pos, st.Keyword, "%s", err)
			}

		case "VAL_TABLE_":
			vt, ok := parseValueTable(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed VAL_TABLE_ statement")
				continue
			}
			if err := db.addValueTable(vt); err != nil {
				warn(st.Pos, st.Keyword, "%s", err)
			}

		case "EV_":
			ev, ok := parseEnvVar(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed EV_ statement")
				continue
			}
			if err := db.addEnvVar(ev); err != nil {
				warn(st.Pos, st.Keyword, "%s", err)
			}

		case "BA_DEF_":
			def, ok := parseAttributeDefinition(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed BA_DEF_ statement")
				continue
			}
			if err := db.addAttributeDefinition(def); err != nil {
				warn(st.Pos, st.Keyword, "%s", err)
			}

		case "BO_TX_BU_", "CM_", "VAL_", "BA_DEF_DEF_", "BA_", "ENVVAR_DATA_", "SIG_GROUP_", "SIG_VALTYPE_":
			// These annotate declarations that may not have been seen yet,
			// so they're resolved in a second pass once every declaration
			// is in the Database.
			deferred = append(deferred, st)

		default:
			warn(st.Pos, st.Keyword, "unrecognized section %q, skipped", st.Keyword)
		}
	}

	for _, st := range deferred {
		switch st.Keyword {
		case "BO_TX_BU_":
			tx, ok := parseMessageTransmitters(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed BO_TX_BU_ statement")
				continue
			}
			msg := db.MessageByID(tx.MessageID)
			if msg == nil {
				warn(st.Pos, st.Keyword, "BO_TX_BU_ references unknown message %d", tx.MessageID)
				continue
			}
			msg.Transmitters = tx.Nodes

		case "CM_":
			c, ok := parseComment(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed CM_ statement")
				continue
			}
			applyComment(db, c, warn, st.Pos, st.Keyword)

		case "VAL_":
			v, ok := parseValueDescription(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed VAL_ statement")
				continue
			}
			applyValueDescription(db, v, warn, st.Pos, st.Keyword)

		case "BA_DEF_DEF_":
			d, ok := parseAttributeDefault(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed BA_DEF_DEF_ statement")
				continue
			}
			def := db.AttributeDefinitionByName(d.Name)
			if def == nil {
				warn(st.Pos, st.Keyword, "BA_DEF_DEF_ references unknown attribute %q", d.Name)
				continue
			}
			val, reason, ok := coerceAttributeValue(def, d.Value)
			if !ok {
				warn(st.Pos, st.Keyword, "%s", reason)
				continue
			}
			db.AttributeDefaults[d.Name] = val

		case "BA_":
			a, ok := parseAttributeValue(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed BA_ statement")
				continue
			}
			def := db.AttributeDefinitionByName(a.Name)
			if def == nil {
				warn(st.Pos, st.Keyword, "BA_ references unknown attribute %q", a.Name)
				continue
			}
			val, reason, ok := coerceAttributeValue(def, a.Value)
			if !ok {
				warn(st.Pos, st.Keyword, "%s", reason)
				continue
			}
			applyAttributeValue(db, a.Target, val, warn, st.Pos, st.Keyword)

		case "ENVVAR_DATA_":
			d, ok := parseEnvVarData(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed ENVVAR_DATA_ statement")
				continue
			}
			ev := db.EnvVarByName(d.Name)
			if ev == nil {
				warn(st.Pos, st.Keyword, "ENVVAR_DATA_ references unknown environment variable %q", d.Name)
				continue
			}
			size := d.DataSize
			ev.DataSize = &size

		case "SIG_GROUP_":
			sg, ok := parseSignalGroup(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed SIG_GROUP_ statement")
				continue
			}
			msg := db.MessageByID(sg.MessageID)
			if msg == nil {
				warn(st.Pos, st.Keyword, "SIG_GROUP_ references unknown message %d", sg.MessageID)
				continue
			}
			for _, name := range sg.SignalNames {
				if msg.SignalByName(name) == nil {
					warn(st.Pos, st.Keyword, "SIG_GROUP_ references unknown signal %q", name)
				}
			}
			msg.SignalGroups = append(msg.SignalGroups, sg)

		case "SIG_VALTYPE_":
			t, ok := parseSignalValueType(st.Text)
			if !ok {
				fail(st.Pos, st.Keyword, "malformed SIG_VALTYPE_ statement")
				continue
			}
			sig := db.SignalByName(t.MessageID, t.Signal)
			if sig == nil {
				warn(st.Pos, st.Keyword, "SIG_VALTYPE_ references unknown signal %q", t.Signal)
				continue
			}
			sig.ExtendedValueType = t.Type
		}
	}

	for _, m := range db.Messages {
		checkMultiplexing(db, m, warn)
		frame := make([]byte, m.Length)
		for _, s := range m.Signals {
			if _, err := extractBits(frame, s.StartBit, s.Length, s.ByteOrder); err != nil {
				warn(Position{}, "BO_", "signal %q of message %q exceeds its %d-byte length", s.Name, m.Name, m.Length)
			}
		}
	}

	if len(db.Nodes) == 0 && len(db.Messages) == 0 && len(db.ValueTables) == 0 && len(db.EnvVars) == 0 {
		return db, diags, ErrNoDeclarations
	}
	return db, diags, nil
}

func checkMultiplexing(db *Database, m *Message, warn func(Position, string, string, ...interface{})) {
	switches := 0
	multiplexed := false
	for _, s := range m.Signals {
		switch s.Multiplex {
		case MultiplexSwitch:
			switches++
		case MultiplexedSignal:
			multiplexed = true
		}
	}
	if switches > 1 {
		warn(Position{}, "BO_", "message %q declares %d multiplexors, at most one is allowed", m.Name, switches)
	}
	if multiplexed && switches == 0 {
		warn(Position{}, "BO_", "message %q has multiplexed signals but no multiplexor", m.Name)
	}
}

func applyComment(db *Database, c commentStmt, warn func(Position, string, string, ...interface{}), pos Position, kw string) {
	switch c.Target.Kind {
	case targetNetwork:
		db.Comment = c.Text
	case targetNode:
		n := db.NodeByName(c.Target.Node)
		if n == nil {
			warn(pos, kw, "CM_ references unknown node %q", c.Target.Node)
			return
		}
		n.Comment = c.Text
	case targetMessage:
		m := db.MessageByID(c.Target.MessageID)
		if m == nil {
			warn(pos, kw, "CM_ references unknown message %d", c.Target.MessageID)
			return
		}
		m.Comment = c.Text
	case targetSignal:
		s := db.SignalByName(c.Target.MessageID, c.Target.Signal)
		if s == nil {
			warn(pos, kw, "CM_ references unknown signal %q", c.Target.Signal)
			return
		}
		s.Comment = c.Text
	case targetEnvVar:
		e := db.EnvVarByName(c.Target.EnvVar)
		if e == nil {
			warn(pos, kw, "CM_ references unknown environment variable %q", c.Target.EnvVar)
			return
		}
		e.Comment = c.Text
	}
}

func applyValueDescription(db *Database, v valueDescriptionStmt, warn func(Position, string, string, ...interface{}), pos Position, kw string) {
	switch v.Target.Kind {
	case targetSignal:
		s := db.SignalByName(v.Target.MessageID, v.Target.Signal)
		if s == nil {
			warn(pos, kw, "VAL_ references unknown signal %q", v.Target.Signal)
			return
		}
		s.ValueDescriptions = v.Entries
	case targetEnvVar:
		e := db.EnvVarByName(v.Target.EnvVar)
		if e == nil {
			warn(pos, kw, "VAL_ references unknown environment variable %q", v.Target.EnvVar)
			return
		}
		e.ValueDescriptions = v.Entries
	default:
		warn(pos, kw, "VAL_ has an unsupported target")
	}
}

func applyAttributeValue(db *Database, target targetRef, val AttributeValue, warn func(Position, string, string, ...interface{}), pos Position, kw string) {
	switch target.Kind {
	case targetNetwork:
		db.NetworkAttributes[val.Name] = val
	case targetNode:
		n := db.NodeByName(target.Node)
		if n == nil {
			warn(pos, kw, "BA_ references unknown node %q", target.Node)
			return
		}
		n.Attributes[val.Name] = val
	case targetMessage:
		m := db.MessageByID(target.MessageID)
		if m == nil {
			warn(pos, kw, "BA_ references unknown message %d", target.MessageID)
			return
		}
		m.Attributes[val.Name] = val
	case targetSignal:
		s := db.SignalByName(target.MessageID, target.Signal)
		if s == nil {
			warn(pos, kw, "BA_ references unknown signal %q", target.Signal)
			return
		}
		s.Attributes[val.Name] = val
	case targetEnvVar:
		e := db.EnvVarByName(target.EnvVar)
		if e == nil {
			warn(pos, kw, "BA_ references unknown environment variable %q", target.EnvVar)
			return
		}
		e.Attributes[val.Name] = val
	}
}
