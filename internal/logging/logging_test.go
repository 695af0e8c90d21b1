package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/sankalan/internal/config"
)

func TestNewDiscardsWithoutFile(t *testing.T) {
	logger, closer, err := New(config.LogConfig{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer closer.Close()
	logger.Info("dropped")
}

func TestNewWritesFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sankalan.log")
	logger, closer, err := New(config.LogConfig{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud", "roadmap", "os-01")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "quiet") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=loud") || !strings.Contains(out, "roadmap=os-01") {
		t.Errorf("missing warn line: %q", out)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	if _, _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
