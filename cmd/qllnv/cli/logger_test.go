// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestCommandLogger_JSONWhenPiped(t *testing.T) {
	var buffer bytes.Buffer
	logger := newCommandLogger(&buffer, false)

	logger.With("command", "admin/departments").Info("created department", "id", "d1")

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("piped output is not JSON: %v\n%s", err, buffer.String())
	}
	if record["msg"] != "created department" {
		t.Errorf("msg = %q, want %q", record["msg"], "created department")
	}
	if record["id"] != "d1" {
		t.Errorf("id = %q, want %q", record["id"], "d1")
	}
	if record["command"] != "admin/departments" {
		t.Errorf("command = %q, want %q", record["command"], "admin/departments")
	}
}

func TestCommandLogger_TextOnTerminal(t *testing.T) {
	var buffer bytes.Buffer
	logger := newCommandLogger(&buffer, true)

	logger.Info("updated employee", "id", "e7")

	output := buffer.String()
	if json.Valid([]byte(output)) {
		t.Errorf("terminal output is JSON, want text: %s", output)
	}
	if !strings.Contains(output, `msg="updated employee"`) || !strings.Contains(output, "id=e7") {
		t.Errorf("text output missing message or attribute: %s", output)
	}
}
