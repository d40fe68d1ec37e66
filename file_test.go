// Copyright (C) 2024 M. J. Felder. All Rights Reserved.

package qjson_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mfelder/qjson"
)

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	const doc = `{"planets": ["mercury", "venus", "earth"]}`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatalf("Writing test input: %v", err)
	}

	root, err := qjson.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	planets, err := root.Key("planets")
	if err != nil {
		t.Fatalf(`Key "planets": %v`, err)
	}
	third, err := planets.Index(2)
	if err != nil {
		t.Fatalf("Index 2: %v", err)
	}
	if text, _ := third.Text(); text != "earth" {
		t.Errorf("Text: got %q, want %q", text, "earth")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := qjson.ParseFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ParseFile: got nil, want error")
	}
}
