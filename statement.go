// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

import "sort"

// rawStatement is one top-level statement: its keyword, its full source
// text (spanning any SG_ continuation lines for BO_, or any other
// continuation lines), and its start position for diagnostics.
type rawStatement struct {
	Keyword string
	Text    []byte
	Pos     Position
}

// lineIndex maps byte offsets to 1-based line/column, built once per
// document so diagnostics don't re-scan from the start every time.
type lineIndex struct {
	starts []int // byte offset of the start of each line
}

func newLineIndex(src []byte) *lineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (li *lineIndex) position(offset int) Position {
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return Position{Line: line + 1, Col: offset - li.starts[line] + 1}
}

// extractLeadingKeyword returns the identifier-shaped token starting a line
// at column 0. A line that starts with whitespace is always a continuation
// of the previous statement (this is how SG_ rides along under BO_, and how
// NS_'s/BU_'s multi-line bodies work), so it never starts a new statement.
func extractLeadingKeyword(line []byte) (string, bool) {
	if len(line) == 0 || isSpace(line[0]) || !isLetter(line[0]) {
		return "", false
	}
	end := 0
	for end < len(line) && isIdentByte(line[end]) {
		end++
	}
	return string(line[:end]), true
}

// splitStatements scans src line by line. Whenever a line starts (at
// column 0) with an identifier-shaped token, a new statement begins and
// runs until the next such line or end of input; every indented line in
// between rides along as part of that statement's Text.
func splitStatements(src []byte) []rawStatement {
	li := newLineIndex(src)

	var starts []int
	var keywords []string
	lineStart := 0
	for i := 0; i <= len(src); i++ {
		if i == len(src) || src[i] == '\n' {
			line := src[lineStart:i]
			if kw, ok := extractLeadingKeyword(line); ok {
				starts = append(starts, lineStart)
				keywords = append(keywords, kw)
			}
			lineStart = i + 1
		}
	}

	stmts := make([]rawStatement, 0, len(starts))
	for i, start := range starts {
		end := len(src)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		text := src[start:end]
		for len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
			text = text[:len(text)-1]
		}
		stmts = append(stmts, rawStatement{
			Keyword: keywords[i],
			Text:    text,
			Pos:     li.position(start),
		})
	}
	return stmts
}
