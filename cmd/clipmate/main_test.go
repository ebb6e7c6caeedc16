package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleHistory = `{"items":[` +
	`{"time":1,"item_type":"TEXT","data":"alpha"},` +
	`{"time":2,"item_type":"IMAGE","data":"img.png"},` +
	`{"time":3,"item_type":"TEXT","data":"gamma"}],` +
	`"image_counter":1,"text_counter":2}`

func writeHistory(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte(sampleHistory), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLIPMATE_SOCKET", filepath.Join(t.TempDir(), "none.sock"))
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHistoryCmd(t *testing.T) {
	path := writeHistory(t)
	out, err := execute(t, "history", "--history-file", path)
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	want := "1: alpha TEXT\n2: img.png IMAGE\n3: gamma TEXT\n"
	if out != want {
		t.Errorf("history output:\n%s\nwant:\n%s", out, want)
	}
}

func TestHistoryCmd_JSON(t *testing.T) {
	path := writeHistory(t)
	out, err := execute(t, "history", "--json", "--history-file", path)
	if err != nil {
		t.Fatalf("history --json error = %v", err)
	}
	var items []map[string]any
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(items) != 3 || items[1]["item_type"] != "IMAGE" {
		t.Errorf("items = %v", items)
	}
}

func TestHistoryCmd_Empty(t *testing.T) {
	out, err := execute(t, "history", "--history-file", filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestHistoryCmd_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("[[["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "history", "--history-file", path); err == nil {
		t.Fatal("history of corrupt file returned nil error")
	}
}

func TestRestore_NotFound(t *testing.T) {
	path := writeHistory(t)
	before, _ := os.ReadFile(path)

	out, err := execute(t, "4", "--history-file", path)
	if err != nil {
		t.Fatalf("restore error = %v", err)
	}
	if !strings.Contains(out, "Item 4 not found in clipboard history") {
		t.Errorf("output = %q", out)
	}
	after, _ := os.ReadFile(path)
	if !bytes.Equal(before, after) {
		t.Error("history file changed")
	}
}

func TestRestore_InvalidNumber(t *testing.T) {
	if _, err := execute(t, "two", "--history-file", writeHistory(t)); err == nil {
		t.Fatal("restore of non-number returned nil error")
	}
}

func TestStatusCmd(t *testing.T) {
	path := writeHistory(t)
	out, err := execute(t, "status", "--json", "--history-file", path)
	if err != nil {
		t.Fatalf("status error = %v", err)
	}
	var r statusReport
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if r.Items != 3 || r.TextCounter != 2 || r.ImageCounter != 1 {
		t.Errorf("report = %+v", r)
	}
	if r.Daemon {
		t.Error("daemon reported running")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "clipmate dev\n" {
		t.Errorf("version output = %q", out)
	}
}
