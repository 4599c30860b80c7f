package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// DirMarker is the snapshot value recorded for a directory.
const DirMarker = "<dir>"

// SnapshotTree walks root and returns every entry below it keyed by its
// slash-separated relative path. Files map to their content, directories to
// DirMarker.
func SnapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()

	snapshot := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			snapshot[rel] = DirMarker
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snapshot[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	return snapshot
}
