package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Spooler writes uploaded document bytes to a uniquely named file scoped to
// one extraction call. The PDF, DOCX and rasterization libraries all want a
// path on disk, so the in-memory upload is spooled out and removed again on
// every exit path.
type Spooler interface {
	Spool(filename string, content []byte) (path string, cleanup func(), err error)
}

type spooler struct {
	tmpDir string
}

func NewSpooler(tmpDir string) Spooler {
	return &spooler{tmpDir: tmpDir}
}

func (s *spooler) Spool(filename string, content []byte) (string, func(), error) {
	if err := os.MkdirAll(s.tmpDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create spool directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(s.tmpDir, fmt.Sprintf("resume_%s%s", uuid.New().String(), ext))

	if err := os.WriteFile(path, content, 0600); err != nil {
		return "", nil, fmt.Errorf("failed to spool upload: %w", err)
	}

	cleanup := func() {
		os.Remove(path)
	}
	return path, cleanup, nil
}
