package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boardmirror/boardmirror/pkg/logging"
)

func TestWriteFileAtomicCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFileAtomic(path, []byte("hello"), 0644, logging.RootLogger); err != nil {
		t.Fatal("WriteFileAtomic failed:", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("unable to read written file:", err)
	}
	if string(content) != "hello" {
		t.Errorf("content = %q, want %q", content, "hello")
	}
}

func TestWriteFileAtomicReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal("unable to seed existing file:", err)
	}

	if err := WriteFileAtomic(path, []byte("new"), 0644, logging.RootLogger); err != nil {
		t.Fatal("WriteFileAtomic failed:", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("unable to read written file:", err)
	}
	if string(content) != "new" {
		t.Errorf("content = %q, want %q", content, "new")
	}
}

func TestWriteFileAtomicLeavesNoTemporaryBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := WriteFileAtomic(path, []byte("hello"), 0644, logging.RootLogger); err != nil {
		t.Fatal("WriteFileAtomic failed:", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal("unable to list directory:", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.txt" {
		t.Errorf("directory entries = %v, want exactly [out.txt]", entries)
	}
}
