// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Command dbcdump is a thin wrapper around the dbc package: it loads a
// network description and prints messages, signals, and decoded frames.
// It defines no stable machine-parseable output (spec §6.3).
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/saferwall/dbc"
	dbclog "github.com/saferwall/dbc/log"
)

var (
	input        string
	listMessages bool
	message      string
	decodeArgs   []string
	verbose      bool
)

func main() {
	root := &cobra.Command{
		Use:          "dbcdump",
		Short:        "Inspect and decode CAN network description files",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVar(&input, "input", "", "path to a .dbc file (required)")
	root.Flags().BoolVar(&listMessages, "list-messages", false, "list every message in the file")
	root.Flags().StringVar(&message, "message", "", "print one message by id or name")
	root.Flags().StringSliceVar(&decodeArgs, "decode", nil, "decode a frame: --decode <id>,<hex bytes>")
	root.Flags().BoolVar(&verbose, "verbose", false, "emit warnings in addition to errors")
	root.MarkFlagRequired("input")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

var logger = dbclog.NewHelper(dbclog.NewFilter(dbclog.NewStdLogger(os.Stderr), dbclog.LevelWarn))

func run(cmd *cobra.Command, args []string) error {
	colorable := term.IsTerminal(int(os.Stdout.Fd()))
	color.NoColor = !colorable

	data, err := readFile(input)
	if err != nil {
		logger.Errorf("%v", err)
		return err
	}

	db, diags, err := dbc.Parse(data, nil)
	if err != nil {
		logger.Errorf("%v", err)
		return err
	}
	printDiagnostics(diags)

	switch {
	case len(decodeArgs) > 0:
		return runDecode(db)
	case message != "":
		return runMessage(db)
	case listMessages:
		runListMessages(db)
		return nil
	default:
		pp.Println(db.Version)
		fmt.Printf("%d nodes, %d messages, %d value tables, %d environment variables\n",
			len(db.Nodes), len(db.Messages), len(db.ValueTables), len(db.EnvVars))
		return nil
	}
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	buf := make([]byte, len(m))
	copy(buf, m)
	return buf, nil
}

func printDiagnostics(diags []dbc.Diagnostic) {
	for _, d := range diags {
		if d.Severity == dbc.SeverityWarning && !verbose {
			continue
		}
		line := d.String()
		if d.Severity == dbc.SeverityError {
			color.New(color.FgRed).Fprintln(os.Stderr, line)
		} else {
			color.New(color.FgYellow).Fprintln(os.Stderr, line)
		}
	}
}

func runListMessages(db *dbc.Database) {
	for _, m := range db.Messages {
		fmt.Printf("%5d  %-32s  %d bytes  %d signals\n", m.ID, m.Name, m.Length, len(m.Signals))
	}
}

func runMessage(db *dbc.Database) error {
	m := lookupMessage(db, message)
	if m == nil {
		err := fmt.Errorf("no such message %q", message)
		logger.Errorf("%v", err)
		return err
	}
	pp.Println(m)
	return nil
}

func runDecode(db *dbc.Database) error {
	if len(decodeArgs) != 2 {
		err := fmt.Errorf("--decode expects <id>,<hex bytes>")
		logger.Errorf("%v", err)
		return err
	}
	id, err := strconv.ParseUint(decodeArgs[0], 10, 32)
	if err != nil {
		logger.Errorf("invalid message id %q", decodeArgs[0])
		return err
	}
	raw, err := hex.DecodeString(strings.ReplaceAll(decodeArgs[1], " ", ""))
	if err != nil {
		logger.Errorf("invalid hex payload %q", decodeArgs[1])
		return err
	}

	opts := &dbc.DecodeOptions{Verbose: verbose}
	decoded, diags, err := dbc.DecodeFrame(db, uint32(id), raw, opts)
	printDiagnostics(diags)
	if err != nil {
		logger.Errorf("%v", err)
		return err
	}
	pp.Println(decoded)
	return nil
}

func lookupMessage(db *dbc.Database, ref string) *dbc.Message {
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		return db.MessageByID(uint32(id))
	}
	for _, m := range db.Messages {
		if m.Name == ref {
			return m
		}
	}
	return nil
}
