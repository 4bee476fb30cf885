// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import (
	"fmt"
	"math"
)

// DecodeOptions configures DecodeFrame and DecodeSignal.
type DecodeOptions struct {
	// IgnoreUnknownIDs, when true, makes an unrecognized frame id decode to
	// a placeholder record instead of failing (spec §4.6, §8 S6).
	IgnoreUnknownIDs bool
	// Verbose controls diagnostic emission only; it never changes what a
	// frame decodes to.
	Verbose bool
}

// DefaultDecodeOptions returns the options DecodeFrame/DecodeSignal use
// when given nil: strict unknown-id handling, no verbose diagnostics.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{}
}

// DecodedSignal is one signal's decoded value within a DecodedMessage.
type DecodedSignal struct {
	Name           string
	Value          float64
	Unit           string
	Description    string
	HasDescription bool
}

// DecodedMessage is the result of decoding one CAN frame.
type DecodedMessage struct {
	ID      uint32
	Name    string
	Signals map[string]DecodedSignal
}

// decodePlan is the precomputed shape of a message's signals, built once
// per message and cached on the Database since decoding is typically
// repeated many times over a stream of frames against the same message.
type decodePlan struct {
	message     *Message
	multiplexor *Signal
}

func planFor(db *Database, m *Message) *decodePlan {
	if v, ok := db.decodePlans.Get(m.ID); ok {
		return v.(*decodePlan)
	}
	p := &decodePlan{message: m, multiplexor: m.Multiplexor()}
	db.decodePlans.Add(m.ID, p)
	return p
}

// DecodeFrame decodes one CAN frame against the messages known to db (spec
// §4.6). A structural violation (a signal declared past the message's own
// length) fails the whole frame; a buffer shorter than the actual data
// degrades by omitting the affected signal and recording a diagnostic.
func DecodeFrame(db *Database, id uint32, data []byte, opts *DecodeOptions) (*DecodedMessage, []Diagnostic, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	msg := db.MessageByID(id)
	if msg == nil {
		if opts.IgnoreUnknownIDs {
			return &DecodedMessage{
				ID:      id,
				Name:    fmt.Sprintf("UNKNOWN_%d", id),
				Signals: map[string]DecodedSignal{},
			}, nil, nil
		}
		return nil, nil, ErrUnknownMessage
	}

	frame := make([]byte, msg.Length)
	for _, s := range msg.Signals {
		if _, err := extractBits(frame, s.StartBit, s.Length, s.ByteOrder); err != nil {
			return nil, nil, ErrMessageTooShort
		}
	}

	var diags []Diagnostic
	plan := planFor(db, msg)
	out := &DecodedMessage{ID: msg.ID, Name: msg.Name, Signals: make(map[string]DecodedSignal, len(msg.Signals))}

	var multiplexorValue uint32
	haveMultiplexor := false
	if plan.multiplexor != nil {
		raw, err := extractBits(data, plan.multiplexor.StartBit, plan.multiplexor.Length, plan.multiplexor.ByteOrder)
		if err != nil {
			if opts.Verbose {
				diags = append(diags, newWarning(Position{}, "BO_",
					"multiplexor %q of message %q does not fit the supplied buffer", plan.multiplexor.Name, msg.Name))
			}
		} else {
			multiplexorValue = uint32(raw)
			haveMultiplexor = true
		}
	}

	for _, s := range msg.Signals {
		if s.Multiplex == MultiplexedSignal {
			if !haveMultiplexor || s.MultiplexValue != multiplexorValue {
				continue
			}
		}
		ds, err := decodeOneSignal(db, s, data)
		if err != nil {
			if opts.Verbose {
				diags = append(diags, newWarning(Position{}, "SG_",
					"signal %q of message %q does not fit the supplied buffer", s.Name, msg.Name))
			}
			continue
		}
		out.Signals[s.Name] = ds
	}

	return out, diags, nil
}

// DecodeSignal decodes a single named signal of a single message (spec
// §6.2, "Decode signal").
func DecodeSignal(db *Database, id uint32, signalName string, data []byte) (*DecodedSignal, error) {
	s := db.SignalByName(id, signalName)
	if s == nil {
		return nil, ErrUnknownMessage
	}
	ds, err := decodeOneSignal(db, s, data)
	if err != nil {
		return nil, err
	}
	return &ds, nil
}

func decodeOneSignal(db *Database, s *Signal, data []byte) (DecodedSignal, error) {
	raw, err := extractBits(data, s.StartBit, s.Length, s.ByteOrder)
	if err != nil {
		return DecodedSignal{}, err
	}
	phys := rawToPhysical(s, raw)
	ds := DecodedSignal{Name: s.Name, Value: phys, Unit: s.Unit}
	if label, ok := s.describe(db, int64(math.Trunc(phys))); ok {
		ds.Description = label
		ds.HasDescription = true
	}
	return ds, nil
}
