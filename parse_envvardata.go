// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dbc

// envVarDataStmt is a parsed ENVVAR_DATA_ statement.
type envVarDataStmt struct {
	Name     string
	DataSize uint32
}

// parseEnvVarData recognizes `ENVVAR_DATA_ <name> : <data_size> ;`.
func parseEnvVarData(text []byte) (envVarDataStmt, bool) {
	pos, ok := expectKeyword(text, 0, "ENVVAR_DATA_")
	if !ok {
		return envVarDataStmt{}, false
	}
	pos = skipSpace(text, pos)
	name, pos, ok := scanIdentifier(text, pos)
	if !ok {
		return envVarDataStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ':')
	if !ok {
		return envVarDataStmt{}, false
	}
	pos = skipSpace(text, pos)
	size, pos, ok := scanUnsigned(text, pos)
	if !ok {
		return envVarDataStmt{}, false
	}
	pos = skipSpace(text, pos)
	pos, ok = expectByte(text, pos, ';')
	if !ok {
		return envVarDataStmt{}, false
	}
	if !isTrailingBlank(text, pos) {
		return envVarDataStmt{}, false
	}
	return envVarDataStmt{Name: name, DataSize: uint32(size)}, true
}
