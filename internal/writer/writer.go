package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// dirPerm and filePerm are the permissions for created directories and files.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer writes one Markdown file per URL into an output directory.
type Writer struct {
	// dir is the output directory, created by New.
	dir string
}

// New creates a Writer, creating the output directory recursively if it is
// missing. Creation happens here, once, so the batch never races on it.
func New(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory path.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteMarkdown writes UTF-8 Markdown content to {dir}/{name}.md,
// unconditionally overwriting any existing file at that path.
func (w *Writer) WriteMarkdown(name, content string) error {
	path := filepath.Join(w.dir, name+".md")
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
