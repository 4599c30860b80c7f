package template

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound        = errors.New("template not found")
	ErrInvalidTemplate = errors.New("invalid template")
)

// Validate checks that every path stays under the target root, that no file
// is listed twice, and that every file's parent directory is either the root
// or created by the directory set.
func (t *Template) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil template", ErrInvalidTemplate)
	}

	dirs := make(map[string]bool)
	for _, d := range t.Directories {
		clean, err := CleanPath(d)
		if err != nil {
			return fmt.Errorf("%w: directory %q: %v", ErrInvalidTemplate, d, err)
		}
		for p := clean; p != "."; p = path.Dir(p) {
			dirs[p] = true
		}
	}

	seen := make(map[string]bool)
	for _, g := range t.Groups {
		for _, f := range g.Files {
			clean, err := CleanPath(f.Path)
			if err != nil {
				return fmt.Errorf("%w: file %q: %v", ErrInvalidTemplate, f.Path, err)
			}
			if seen[clean] {
				return fmt.Errorf("%w: file %q listed more than once", ErrInvalidTemplate, f.Path)
			}
			seen[clean] = true

			if dirs[clean] {
				return fmt.Errorf("%w: %q is both a directory and a file", ErrInvalidTemplate, f.Path)
			}
			if parent := path.Dir(clean); parent != "." && !dirs[parent] {
				return fmt.Errorf("%w: parent directory %q of %q is not in the directory set",
					ErrInvalidTemplate, parent, f.Path)
			}
		}
	}
	return nil
}

// CleanPath validates a slash-separated relative path and returns its clean
// form. Empty segments, "." and ".." are rejected so the result can never
// escape the root it is joined to.
func CleanPath(p string) (string, error) {
	if p == "" {
		return "", errors.New("empty path")
	}
	if strings.Contains(p, `\`) {
		return "", errors.New("path must use forward slashes")
	}
	if path.IsAbs(p) || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return "", errors.New("absolute paths are not allowed")
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".", "..":
			return "", fmt.Errorf("invalid path segment %q", seg)
		}
	}
	return path.Clean(p), nil
}
