package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"coursegen/pkg/template"
)

const bannerWidth = 60

// Result summarizes a completed run.
type Result struct {
	Template    string
	Root        string
	Directories int
	Files       int
	DryRun      bool
	Duration    time.Duration
}

// Run materializes t under m.Root: the directory set first, then each file
// group in order. Nothing is touched if t fails validation. A filesystem
// error stops the run where it happened; earlier steps are not undone.
func Run(m *Materializer, t *template.Template) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	title := t.Title
	if title == "" {
		title = fmt.Sprintf("Setting up %s", t.Name)
	}
	m.printf("🚀 %s", title)
	m.printf("%s", strings.Repeat("=", bannerWidth))

	if err := m.ensureRoot(); err != nil {
		return nil, err
	}

	m.printf("\n1. Creating directory structure...")
	if err := m.EnsureDirectories(t.Directories); err != nil {
		return nil, err
	}

	files := 0
	for i, g := range t.Groups {
		m.printf("\n%d. Creating %s...", i+2, g.Title)
		if err := m.WriteFiles(g.Files); err != nil {
			return nil, err
		}
		files += len(g.Files)
	}

	m.printf("\n%s", strings.Repeat("=", bannerWidth))
	if m.DryRun {
		m.printf("Dry run complete, nothing was written.")
	} else {
		printCompletion(m, t)
	}

	return &Result{
		Template:    t.Name,
		Root:        m.Root,
		Directories: len(t.Directories),
		Files:       files,
		DryRun:      m.DryRun,
		Duration:    time.Since(start),
	}, nil
}

func printCompletion(m *Materializer, t *template.Template) {
	completion := t.Completion
	if completion == "" {
		completion = "Repository setup complete!"
	}
	m.printf("✅ %s", completion)

	if len(t.NextSteps) > 0 {
		m.printf("\nNext steps:")
		for i, step := range t.NextSteps {
			m.printf("%d. %s", i+1, step)
		}
	}

	if t.Farewell != "" {
		m.printf("\n🌟 %s", t.Farewell)
	}
}

// ensureRoot creates the root directory when it does not exist yet.
func (m *Materializer) ensureRoot() error {
	info, err := m.FS.Stat(m.Root)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("failed to use %s as root: not a directory", m.Root)
	case errors.Is(err, fs.ErrNotExist):
		if m.DryRun {
			m.printf("Would create root directory: %s", m.Root)
			return nil
		}
		if err := m.FS.MkdirAll(m.Root, m.DirPerm); err != nil {
			return fmt.Errorf("failed to create root directory %s: %w", m.Root, err)
		}
		return nil
	default:
		return fmt.Errorf("failed to stat root %s: %w", m.Root, err)
	}
}
