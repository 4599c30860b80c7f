// Package scaffold materializes a template: it ensures the directory set
// exists under a root and writes every file group into it.
package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"coursegen/pkg/template"
)

const (
	DefaultDirPerm  os.FileMode = 0755
	DefaultFilePerm os.FileMode = 0644
)

// Materializer creates directories and writes files relative to Root.
type Materializer struct {
	Root     string
	FS       FS
	Out      io.Writer
	DirPerm  os.FileMode
	FilePerm os.FileMode
	DryRun   bool
}

func NewMaterializer(root string) *Materializer {
	if root == "" {
		root = "."
	}
	return &Materializer{
		Root:     root,
		FS:       OSFS{},
		Out:      os.Stdout,
		DirPerm:  DefaultDirPerm,
		FilePerm: DefaultFilePerm,
	}
}

// EnsureDirectories creates every directory in dirs, including missing
// ancestors. Directories that already exist are left alone, so running it
// again over the same set is a no-op. The first failure aborts.
func (m *Materializer) EnsureDirectories(dirs []string) error {
	for _, dir := range dirs {
		target := m.target(dir)

		if m.DryRun {
			m.printf("Would create directory: %s", dir)
			continue
		}

		if err := m.FS.MkdirAll(target, m.DirPerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		m.printf("Created directory: %s", dir)
	}
	return nil
}

// WriteFiles writes each file's content as the complete content of its path,
// replacing whatever was there. Parent directories must already exist.
func (m *Materializer) WriteFiles(files []template.File) error {
	for _, f := range files {
		target := m.target(f.Path)

		if m.DryRun {
			m.printf("Would write %s (%d bytes)", f.Path, len(f.Content))
			continue
		}

		if err := m.FS.WriteFile(target, []byte(f.Content), m.FilePerm); err != nil {
			return fmt.Errorf("failed to write file %s: %w", f.Path, err)
		}

		notice := f.Notice
		if notice == "" {
			notice = "Created " + f.Path
		}
		m.printf("%s", notice)
	}
	return nil
}

func (m *Materializer) target(p string) string {
	return filepath.Join(m.Root, filepath.FromSlash(p))
}

func (m *Materializer) printf(format string, args ...interface{}) {
	if m.Out == nil {
		return
	}
	fmt.Fprintf(m.Out, format+"\n", args...)
}
