package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToJSON(t *testing.T) {
	v := map[string]any{"a": 1, "b": "<x>"}

	compact, err := ToJSON(v, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(compact) != "{\"a\":1,\"b\":\"<x>\"}\n" {
		t.Errorf("compact = %q", compact)
	}

	pretty, err := ToJSON(v, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(pretty) != "{\n  \"a\": 1,\n  \"b\": \"<x>\"\n}\n" {
		t.Errorf("pretty = %q", pretty)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("previous content that is longer"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, []int{1, 2}, false); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[1,2]\n" {
		t.Errorf("file = %q, expected [1,2]", data)
	}
}
