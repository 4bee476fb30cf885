// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// targetKind is what kind of entity an annotation statement (CM_, BA_)
// names as its target.
type targetKind int

const (
	targetNetwork targetKind = iota
	targetNode
	targetMessage
	targetSignal
	targetEnvVar
)

// targetRef is a parsed, not-yet-resolved annotation target. Resolution
// against a Database happens later, by name/id lookup (spec §9, "cyclic
// structures": targets are stored by name, never by back-pointer).
type targetRef struct {
	Kind      targetKind
	Node      string
	MessageID uint32
	Signal    string
	EnvVar    string
}

// parseAnnotationTarget recognizes the shared `[BU_ <ident>|BO_ <u32>|SG_
// <u32> <ident>|EV_ <ident>]` prefix used by CM_ and BA_. Absence of any
// prefix is a valid match: the target is the network itself.
func parseAnnotationTarget(s []byte, pos int) (targetRef, int, bool) {
	if p, ok := expectKeyword(s, pos, "BU_"); ok {
		p = skipSpace(s, p)
		node, p, ok := scanIdentifier(s, p)
		if !ok {
			return targetRef{}, pos, false
		}
		return targetRef{Kind: targetNode, Node: node}, p, true
	}
	if p, ok := expectKeyword(s, pos, "BO_"); ok {
		p = skipSpace(s, p)
		id, p, ok := scanUnsigned(s, p)
		if !ok {
			return targetRef{}, pos, false
		}
		return targetRef{Kind: targetMessage, MessageID: uint32(id)}, p, true
	}
	if p, ok := expectKeyword(s, pos, "SG_"); ok {
		p = skipSpace(s, p)
		id, p, ok := scanUnsigned(s, p)
		if !ok {
			return targetRef{}, pos, false
		}
		p = skipSpace(s, p)
		name, p, ok := scanIdentifier(s, p)
		if !ok {
			return targetRef{}, pos, false
		}
		return targetRef{Kind: targetSignal, MessageID: uint32(id), Signal: name}, p, true
	}
	if p, ok := expectKeyword(s, pos, "EV_"); ok {
		p = skipSpace(s, p)
		name, p, ok := scanIdentifier(s, p)
		if !ok {
			return targetRef{}, pos, false
		}
		return targetRef{Kind: targetEnvVar, EnvVar: name}, p, true
	}
	return targetRef{Kind: targetNetwork}, pos, true
}
