package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CoEDL", "settings.toml")

	if err := WriteFileAtomic(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello world" {
		t.Fatalf("content mismatch: got %q", got)
	}
}

func TestWriteFileAtomicReplacesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("old contents that are longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(path, []byte("new"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("content mismatch: got %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, got %d entries", len(entries))
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Fatalf("mode mismatch: got %o, want %o", info.Mode().Perm(), 0o600)
		}
	}
}

func TestReadFileIfExists(t *testing.T) {
	dir := t.TempDir()

	if _, ok, err := ReadFileIfExists(filepath.Join(dir, "missing")); err != nil || ok {
		t.Fatalf("expected missing file to report ok=false, got ok=%v err=%v", ok, err)
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, ok, err := ReadFileIfExists(path)
	if err != nil || !ok || string(data) != "data" {
		t.Fatalf("unexpected result data=%q ok=%v err=%v", data, ok, err)
	}
}
