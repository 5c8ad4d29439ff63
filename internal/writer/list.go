package writer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/mapdown/internal/model"
)

// WriteTextList writes one URL per line, in order, to the given path.
// Parent directories are created as needed.
func WriteTextList(path string, urls []string) error {
	if err := ensureParent(path); err != nil {
		return err
	}

	content := strings.Join(urls, "\n")
	if len(urls) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteJSONList writes the list document as pretty-printed JSON to the given
// path, carrying through any passthrough fields read from a JSON input.
func WriteJSONList(path string, doc model.ListDocument) error {
	if err := ensureParent(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode url list: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ensureParent creates the parent directory of path if missing.
func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
