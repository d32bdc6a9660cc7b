package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Logger.Printf("hello from test")
	if err := Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if !strings.Contains(string(content), "[discard] ") {
		t.Errorf("expected prefix in log, got %q", content)
	}
	if !strings.Contains(string(content), "hello from test") {
		t.Errorf("expected message in log, got %q", content)
	}
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
