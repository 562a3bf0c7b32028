package jsonutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	v := map[string]int{"keep": 1}
	ok, err := ReadFile(filepath.Join(t.TempDir(), "none.json"), &v)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing file")
	}
	if v["keep"] != 1 {
		t.Error("value should be untouched for missing file")
	}
}

func TestWriteFile_ReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	in := map[string]int{"a": 1, "b": 2}
	if err := WriteFile(path, in); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out map[string]int
	ok, err := ReadFile(path, &out)
	if err != nil || !ok {
		t.Fatalf("ReadFile: ok=%v err=%v", ok, err)
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Errorf("round trip: got %v", out)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestReadFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	var v map[string]int
	if _, err := ReadFile(path, &v); err == nil {
		t.Error("expected parse error")
	}
}
