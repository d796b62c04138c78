package docindex

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFileText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("stacks are LIFO\nqueues are FIFO"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := loadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("loadFile() returned error: %v", err)
	}
	if !strings.Contains(text, "stacks are LIFO") {
		t.Errorf("loaded text missing file content, got %q", text)
	}
}

func TestLoadFileUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.docx")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFile(context.Background(), path); err == nil {
		t.Fatal("loadFile() should reject unsupported file types")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := loadFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("loadFile() should error on a missing file")
	}
}

func TestSplitText(t *testing.T) {
	paragraph := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 10)
	text := paragraph + "\n\n" + paragraph + "\n\n" + paragraph

	chunks, err := splitText(text)
	if err != nil {
		t.Fatalf("splitText() returned error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want the text split into several", len(chunks))
	}
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			t.Errorf("chunk %d is empty", i)
		}
		if len(chunk) > chunkSize+chunkOverlap {
			t.Errorf("chunk %d is %d chars, exceeds size plus overlap", i, len(chunk))
		}
	}
}

func TestSplitTextEmpty(t *testing.T) {
	chunks, err := splitText("   \n\n  ")
	if err != nil {
		t.Fatalf("splitText() returned error: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("got %d chunks from whitespace input, want 0", len(chunks))
	}
}

func TestVectorIDs(t *testing.T) {
	if got := chunkID(7, 3); got != "doc_7_chunk_3" {
		t.Errorf("chunkID = %q", got)
	}
	if got := vectorPrefix(7); got != "doc_7_" {
		t.Errorf("vectorPrefix = %q", got)
	}
	if !strings.HasPrefix(chunkID(7, 3), vectorPrefix(7)) {
		t.Error("chunk ids must carry the document prefix used for deletion")
	}
}
