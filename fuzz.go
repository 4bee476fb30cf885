// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

//go:build gofuzz

package dbc

// Fuzz is the entry point for github.com/dvyukov/go-fuzz. It exercises
// Parse against arbitrary input and never panics on malformed data; input
// that Parse rejects with an error (ErrNoDeclarations included), or that
// yields no messages, is not interesting.
func Fuzz(data []byte) int {
	db, _, err := Parse(data, nil)
	if err != nil {
		return 0
	}
	if len(db.Messages) == 0 {
		return 0
	}
	return 1
}
