// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log provides the small leveled-logging interface used by the
// command-line wrapper. Core library code never logs; every recoverable
// problem travels back to the caller as a Diagnostic instead.
package log

import (
	"fmt"
	"io"
	"os"
)

// FilterLevel is the minimum severity a Filter lets through.
type FilterLevel int

const (
	LevelDebug FilterLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l FilterLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the sink every level eventually writes through.
type Logger interface {
	Log(level FilterLevel, keyvals ...interface{}) error
}

// stdLogger writes "LEVEL key=val key=val" lines to an io.Writer.
type stdLogger struct {
	w io.Writer
}

// NewStdLogger returns a Logger that writes to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

func (l *stdLogger) Log(level FilterLevel, keyvals ...interface{}) error {
	msg := fmt.Sprintf("%s", level)
	for i := 0; i+1 < len(keyvals); i += 2 {
		msg += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	_, err := fmt.Fprintln(l.w, msg)
	return err
}

// filter wraps a Logger and drops records below its configured level.
type filter struct {
	next  Logger
	level FilterLevel
}

// NewFilter returns a Logger that discards records below level.
func NewFilter(next Logger, level FilterLevel) Logger {
	return &filter{next: next, level: level}
}

func (f *filter) Log(level FilterLevel, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.next.Log(level, keyvals...)
}

// Helper gives call sites leveled *f-style methods over a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger with Debugf/Infof/Warnf/Errorf convenience methods.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) Debugf(format string, args ...interface{}) {
	h.logger.Log(LevelDebug, "msg", fmt.Sprintf(format, args...))
}

func (h *Helper) Infof(format string, args ...interface{}) {
	h.logger.Log(LevelInfo, "msg", fmt.Sprintf(format, args...))
}

func (h *Helper) Warnf(format string, args ...interface{}) {
	h.logger.Log(LevelWarn, "msg", fmt.Sprintf(format, args...))
}

func (h *Helper) Errorf(format string, args ...interface{}) {
	h.logger.Log(LevelError, "msg", fmt.Sprintf(format, args...))
}

// Default is a ready-to-use Helper writing warnings and above to stderr.
var Default = NewHelper(NewFilter(NewStdLogger(os.Stderr), LevelWarn))
