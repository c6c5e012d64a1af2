package persist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSave_WritesFile(t *testing.T) {
	dir := t.TempDir()
	s := &Saver{Dir: dir}
	s.Save("improved_doc_1.md", "# Improved Documentation\n\nbody")

	b, err := os.ReadFile(filepath.Join(dir, "improved_doc_1.md"))
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if string(b) != "# Improved Documentation\n\nbody" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}

func TestSave_TruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	s := &Saver{Dir: dir}
	s.Save("doc.md", "long old content that should vanish")
	s.Save("doc.md", "new")

	b, err := os.ReadFile(filepath.Join(dir, "doc.md"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "new" {
		t.Fatalf("expected truncated rewrite, got %q", string(b))
	}
}

func TestSave_SwallowsErrors(t *testing.T) {
	// Target directory does not exist; Save must log and move on, not panic
	// or surface an error.
	s := &Saver{Dir: filepath.Join(t.TempDir(), "missing")}
	s.Save("doc.md", "content")
}

func TestDocumentName(t *testing.T) {
	if got := DocumentName(1); got != "improved_doc_1.md" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := DocumentName(12); got != "improved_doc_12.md" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := PDFName(3); got != "improved_doc_3.pdf" {
		t.Fatalf("unexpected pdf name: %q", got)
	}
}
